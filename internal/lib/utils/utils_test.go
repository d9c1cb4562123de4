package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, map[string]int64{"jobs": 2}))
	assert.Equal(t, "{\n  \"jobs\": 2\n}\n", buf.String())

	assert.Error(t, WriteJSON(&buf, func() {}))
}
