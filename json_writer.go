package biashara

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// recordWriter builds a JSON object whose keys keep the order they were
// written in. Its zero value is an empty object.
type recordWriter struct {
	buf bytes.Buffer
	err error
}

// field writes key with value marshaled by encoding/json.
func (w *recordWriter) field(key string, value any) {
	if w.err != nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("cannot encode %q: %w", key, err)
		return
	}
	if w.buf.Len() > 0 {
		w.buf.WriteByte(',')
	}
	w.buf.WriteString(strconv.Quote(key))
	w.buf.WriteByte(':')
	w.buf.Write(data)
}

// text writes key only when value is not blank.
func (w *recordWriter) text(key, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	w.field(key, value)
}

// object returns the complete JSON object, or the first error met.
func (w *recordWriter) object() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	out := make([]byte, 0, w.buf.Len()+2)
	out = append(out, '{')
	out = append(out, w.buf.Bytes()...)
	return append(out, '}'), nil
}
