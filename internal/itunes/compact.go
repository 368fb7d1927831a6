package itunes

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/tdewolff/minify/v2"
	minjson "github.com/tdewolff/minify/v2/json"
)

// Numbers are logged as the API sent them.
var minifier = func() *minify.M {
	m := minify.New()
	m.Add("application/json", &minjson.Minifier{KeepNumbers: true})
	return m
}()

// Compact strips insignificant whitespace from raw JSON so it fits on one
// log line. Key order and number literals are kept. Input the minifier
// rejects comes back unchanged.
func Compact(raw []byte) string {
	var buf bytes.Buffer
	if err := minifier.Minify("application/json", &buf, bytes.NewReader(raw)); err != nil {
		return string(raw)
	}
	return buf.String()
}

// Compact renders the result as one line of JSON, from the response bytes
// when they are known.
func (r Result) Compact() string {
	if len(r.Raw) > 0 {
		return Compact(r.Raw)
	}
	data, err := json.Marshal(r.Record)
	if err != nil {
		return err.Error()
	}
	return string(data)
}
