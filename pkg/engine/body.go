package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// MaxBodySize is the request body cap. Declaring a larger Content-Length
// fails with 413 before any of the body is read.
const MaxBodySize = 5 << 20 // 5 MiB

// readJSONBody reads exactly Content-Length bytes and parses them as JSON.
// A missing or zero Content-Length yields an empty object; the handlers
// decide whether that shape is acceptable for their endpoint.
func readJSONBody(r *http.Request) (any, error) {
	length := r.ContentLength
	if length > MaxBodySize {
		return nil, ErrPayloadTooLarge
	}
	if length <= 0 {
		return map[string]any{}, nil
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(r.Body, buf); err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}

	var v any
	if err := json.Unmarshal(buf, &v); err != nil {
		return nil, ErrMalformedBody
	}
	return v, nil
}

// asObject narrows a parsed JSON value to an object. Arrays, strings, and
// numbers are valid JSON but not valid request bodies for this API.
func asObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}
