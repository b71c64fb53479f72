// Package must contains functions that panic on error.
package must

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ooni/checkinv2/internal/runtimex"
)

// Fprintf is like [fmt.Fprintf] but calls
// [runtimex.PanicOnError] on failure.
func Fprintf(w io.Writer, format string, v ...any) {
	_, err := fmt.Fprintf(w, format, v...)
	runtimex.PanicOnError(err, "fmt.Fprintf failed")
}

// MarshalJSON is like [json.Marshal] but calls
// [runtimex.PanicOnError] on failure.
func MarshalJSON(v any) []byte {
	data, err := json.Marshal(v)
	runtimex.PanicOnError(err, "json.Marshal failed")
	return data
}

// MarshalAndIndentJSON is like [json.MarshalIndent] but calls
// [runtimex.PanicOnError] on failure.
func MarshalAndIndentJSON(v any, prefix string, indent string) []byte {
	data, err := json.MarshalIndent(v, prefix, indent)
	runtimex.PanicOnError(err, "json.MarshalIndent failed")
	return data
}

// UnmarshalJSON is like [json.Unmarshal] but calls
// [runtimex.PanicOnError] on failure.
func UnmarshalJSON(data []byte, v any) {
	err := json.Unmarshal(data, v)
	runtimex.PanicOnError(err, "json.Unmarshal failed")
}
