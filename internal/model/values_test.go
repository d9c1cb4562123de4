package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-14")
	require.NoError(t, err)
	assert.True(t, d.Valid)
	assert.Equal(t, "2025-03-14", d.String())
	assert.Equal(t, NewDate(2025, time.March, 14), d)

	_, err = ParseDate("14/03/2025")
	assert.ErrorContains(t, err, "expected YYYY-MM-DD")
}

func TestDateText(t *testing.T) {
	var d Date
	require.NoError(t, d.UnmarshalText([]byte("2024-12-01")))
	assert.Equal(t, "2024-12-01", d.String())

	require.NoError(t, d.UnmarshalText([]byte("  ")))
	assert.False(t, d.Valid)
	assert.Equal(t, "", d.String())
}

func TestDateJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		On Date `json:"on"`
	}{On: NewDate(2024, time.January, 2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"on":"2024-01-02"}`, string(b))
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:30", "09:30:00"},
		{"9:05", "09:05:00"},
		{"18:45:10", "18:45:10"},
	}
	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got.String())
	}

	_, err := ParseTimeOfDay("half past nine")
	assert.Error(t, err)
}

func TestTimeOfDayJSON(t *testing.T) {
	b, err := json.Marshal(NewTimeOfDay(14, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, `"14:00:00"`, string(b))

	b, err = json.Marshal(TimeOfDay{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}
