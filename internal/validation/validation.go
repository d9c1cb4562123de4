// Package validation is the typed-decoding boundary: string-keyed form and
// path values are decoded into payload structs, then checked with
// go-playground/validator. Every failure comes back as a 400 errs.HTTPError
// listing the offending fields.
package validation

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/labstack/echo/v4"

	"github.com/GenghisKhal/assignment3/internal/errs"
	"github.com/GenghisKhal/assignment3/internal/model"
)

// TagName is the struct tag naming the form field of a payload field.
const TagName = "form"

// Validatable payloads run extra checks after the struct tags pass.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a field error raised by a Validate method.
type CustomValidationError struct {
	Field   string
	Message string
}

type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator. Field names in its errors are form
// names, and unset dates and times count as missing.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get(TagName), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})

		validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
			if d := v.Interface().(model.Date); d.Valid {
				return d.Time
			}
			return nil
		}, model.Date{})

		validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
			if t := v.Interface().(model.TimeOfDay); t.Valid {
				return t.Microseconds
			}
			return nil
		}, model.TimeOfDay{})
	})
	return validate
}

// Decode fills dst (a pointer to a payload struct) from values and validates
// it. Keys without a matching field are ignored.
func Decode(values map[string]string, dst any) error {
	var fieldErrors []errs.FieldError

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// One key at a time so a decode failure names its field.
	for _, key := range keys {
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				trimSpaceHook,
				mapstructure.TextUnmarshallerHookFunc(),
			),
			WeaklyTypedInput: true,
			TagName:          TagName,
			Result:           dst,
		})
		if err != nil {
			return errs.NewInternalServerError().WithCause(err)
		}

		if err := decoder.Decode(map[string]any{key: values[key]}); err != nil {
			fieldErrors = append(fieldErrors, errs.FieldError{Field: key, Error: malformed(err)})
		}
	}

	if len(fieldErrors) > 0 {
		return errs.NewBadRequestError("Malformed input", true, nil, fieldErrors)
	}

	return Struct(dst)
}

// Struct validates v with its struct tags and, when it implements
// Validatable, its own checks.
func Struct(v any) error {
	if err := Validator().Struct(v); err != nil {
		return validationError(err)
	}

	if custom, ok := v.(Validatable); ok {
		if err := custom.Validate(); err != nil {
			return validationError(err)
		}
	}
	return nil
}

// BindAndValidate decodes path parameters, query parameters and form fields
// of the request into payload. Path parameters win over the others.
func BindAndValidate(c echo.Context, payload any) error {
	values := map[string]string{}

	for k, v := range c.QueryParams() {
		if len(v) > 0 {
			values[k] = v[0]
		}
	}

	if c.Request().ContentLength != 0 {
		form, err := c.FormParams()
		if err != nil {
			return errs.NewBadRequestError("Malformed form body", true, nil, nil).WithCause(err)
		}
		for k, v := range form {
			if len(v) > 0 {
				values[k] = v[0]
			}
		}
	}

	for i, name := range c.ParamNames() {
		values[name] = c.ParamValues()[i]
	}

	return Decode(values, payload)
}

func trimSpaceHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if s, ok := data.(string); ok && from.Kind() == reflect.String && to.Kind() != reflect.String {
		return strings.TrimSpace(s), nil
	}
	return data, nil
}

// malformed turns a decoder error into the message shown for the field.
func malformed(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "expected YYYY-MM-DD"):
		return "must be a date (YYYY-MM-DD)"
	case strings.Contains(msg, "expected HH:MM"):
		return "must be a time (HH:MM)"
	case strings.Contains(msg, "float"):
		return "must be a number"
	case strings.Contains(msg, "int"):
		return "must be a whole number"
	}
	return "is malformed"
}
