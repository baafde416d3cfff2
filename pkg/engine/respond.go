package engine

import (
	"encoding/json"
	"net/http"
)

// allowedMethods is every verb the server answers, in the order advertised
// by the Allow and CORS headers.
const allowedMethods = "GET, POST, PUT, DELETE, PATCH, HEAD, OPTIONS, TRACE, CONNECT"

// errorResponse is the uniform error payload.
type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// setHeaders applies the standard response headers: JSON content type, the
// permissive CORS triad, and any handler-supplied extras.
func setHeaders(w http.ResponseWriter, extra map[string]string) {
	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", allowedMethods)
	h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
	for k, v := range extra {
		h.Set(k, v)
	}
}

// writeJSON serializes data as pretty-printed JSON with standard headers.
// A nil data writes headers only, which is how HEAD responses are produced.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any, extra map[string]string) {
	setHeaders(w, extra)

	if data == nil {
		w.WriteHeader(status)
		return
	}

	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		// Serialization of our own response types failing is a server bug;
		// degrade to a plain 500 without recursing into writeJSON.
		h.log.Error("failed to encode response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.log.Debug("failed to write response body", "error", err)
	}
}

// writeError writes the uniform error payload with the given status.
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Error: message}, nil)
}

// writeInternalError writes a 500. The underlying error lands in "detail"
// only when debug mode is on; otherwise clients get a generic pointer.
func (h *Handler) writeInternalError(w http.ResponseWriter, err error) {
	detail := msgContactAdmin
	if h.debug && err != nil {
		detail = err.Error()
	}
	h.log.Error("internal server error", "error", err)
	h.writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error:  msgInternalError,
		Detail: detail,
	}, nil)
}
