package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/imitatus/imitatus/pkg/auth"
	"github.com/imitatus/imitatus/pkg/config"
	"github.com/imitatus/imitatus/pkg/requestlog"
	"github.com/imitatus/imitatus/pkg/store"
)

// Handler routes incoming requests to the per-method state transitions.
// It is stateless itself; all mutable state lives in the store.
type Handler struct {
	store *store.Store
	gate  *auth.Gate
	creds config.LoginConfig
	debug bool
	log   *slog.Logger
}

// NewHandler creates a Handler over the given store.
func NewHandler(st *store.Store, cfg *config.ServerConfig, log *slog.Logger) *Handler {
	return &Handler{
		store: st,
		gate:  auth.NewGate(st.Tokens),
		creds: cfg.Login,
		debug: cfg.Debug,
		log:   log,
	}
}

// ServeHTTP implements http.Handler. Every request is appended to the
// request log before routing, whatever its outcome, and no failure in a
// single request may escape the request cycle.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	h.logRequest(r)

	rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	defer func() {
		if rec := recover(); rec != nil {
			h.writeInternalError(rw, panicError(rec))
		}
		h.log.Debug("request handled",
			"method", r.Method,
			"path", r.RequestURI,
			"status", rw.status,
			"duration", time.Since(start),
		)
	}()

	switch r.Method {
	case http.MethodGet:
		h.handleGet(rw, r)
	case http.MethodPost:
		h.handlePost(rw, r)
	case http.MethodPut:
		h.handlePut(rw, r)
	case http.MethodPatch:
		h.handlePatch(rw, r)
	case http.MethodDelete:
		h.handleDelete(rw, r)
	case http.MethodHead:
		h.handleHead(rw, r)
	case http.MethodOptions:
		h.handleOptions(rw, r)
	case http.MethodTrace:
		h.handleTrace(rw, r)
	case http.MethodConnect:
		h.handleConnect(rw, r)
	default:
		h.writeError(rw, http.StatusNotFound, msgEndpointNotFound)
	}
}

// authenticate runs the auth gate and writes the 401 response on failure.
// Returns true when the request may proceed.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) bool {
	if _, err := h.gate.Authenticate(r.Header); err != nil {
		msg := msgInvalidToken
		if errors.Is(err, auth.ErrMissingToken) {
			msg = msgMissingToken
		}
		h.writeError(w, http.StatusUnauthorized, msg)
		return false
	}
	return true
}

// readBody parses the request body, writing the error response on failure.
// Returns the parsed JSON value and true when the request may proceed.
func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) (any, bool) {
	v, err := readJSONBody(r)
	if err == nil {
		return v, true
	}
	switch {
	case errors.Is(err, ErrPayloadTooLarge):
		h.writeError(w, http.StatusRequestEntityTooLarge, msgPayloadTooLarge)
	case errors.Is(err, ErrMalformedBody):
		h.writeError(w, http.StatusBadRequest, msgMalformedBody)
	default:
		h.writeInternalError(w, err)
	}
	return nil, false
}

// itemIDFromPath extracts the item ID when the path has exactly the shape
// /api/items/{id}. Anything else is not an item sub-resource.
func itemIDFromPath(path string) (string, bool) {
	parts := strings.Split(path, "/")
	if len(parts) != 4 || parts[0] != "" || parts[1] != "api" || parts[2] != "items" || parts[3] == "" {
		return "", false
	}
	return parts[3], true
}

// logRequest appends the request to the store's request history.
func (h *Handler) logRequest(r *http.Request) {
	h.store.Requests.Log(requestlog.FromRequest(r))
}

// panicError converts a recovered panic value into an error.
func panicError(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", rec)
}

// statusRecorder captures the response status for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

// WriteHeader captures the status code and writes the header.
func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
