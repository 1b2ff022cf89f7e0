// Package jsonutil provides shared helpers for decoding planning service
// responses: error context, the error envelope, and number formatting.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// ErrorMessage returns the "error" field of a response body, or "" if the
// body is not a JSON object or carries no error. The planning service reports
// failures as HTTP 200 with {"error": "..."}.
func ErrorMessage(data []byte) string {
	if !gjson.ValidBytes(data) {
		return ""
	}
	r := gjson.GetBytes(data, "error")
	if !r.Exists() || r.Type == gjson.Null {
		return ""
	}
	if r.String() == "" {
		return r.Raw
	}
	return r.String()
}

// FormatNumber renders whole numbers without a fractional part and other
// values in their shortest form.
func FormatNumber(val float64) string {
	if val == float64(int64(val)) {
		return fmt.Sprintf("%.0f", val)
	}
	return strconv.FormatFloat(val, 'f', -1, 64)
}

// ToString converts a gjson value to a display string. Numbers go through
// FormatNumber; strings are returned as-is; null and missing values are "".
func ToString(r gjson.Result) string {
	switch r.Type {
	case gjson.Null:
		return ""
	case gjson.Number:
		return FormatNumber(r.Float())
	case gjson.True, gjson.False:
		return fmt.Sprintf("%t", r.Bool())
	case gjson.String:
		return r.String()
	default:
		return r.Raw
	}
}
