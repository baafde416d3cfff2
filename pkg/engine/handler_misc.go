// HEAD, OPTIONS, TRACE, and CONNECT handlers.

package engine

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/imitatus/imitatus/pkg/requestlog"
)

// availableEndpoints is the capability list advertised by OPTIONS.
var availableEndpoints = []string{
	"/api/login",
	"/api/items",
	"/api/items/{id}",
	"/debug/vars",
}

// handleHead answers collection metadata for /api/items: counters in
// headers, no body. HEAD responses never carry a payload, including errors.
func (h *Handler) handleHead(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/api/items" {
		h.writeJSON(w, http.StatusNotFound, nil, nil)
		return
	}
	if _, err := h.gate.Authenticate(r.Header); err != nil {
		h.writeJSON(w, http.StatusUnauthorized, nil, nil)
		return
	}
	h.writeJSON(w, http.StatusOK, nil, map[string]string{
		"X-Total-Items":   strconv.Itoa(h.store.Items.Count()),
		"X-Active-Tokens": strconv.Itoa(h.store.Tokens.Count()),
	})
}

// handleOptions advertises the API surface for any path.
func (h *Handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	extra := map[string]string{
		"Allow":         allowedMethods,
		"X-API-Version": APIVersion,
		"X-Server-Time": time.Now().UTC().Format(time.RFC3339Nano),
	}
	h.writeJSON(w, http.StatusOK, capabilitiesResponse{
		AvailableEndpoints: availableEndpoints,
		SupportedMethods:   strings.Split(allowedMethods, ", "),
	}, extra)
}

// handleTrace echoes the request back to the client.
func (h *Handler) handleTrace(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, traceResponse{
		Headers:         map[string][]string(r.Header),
		Method:          r.Method,
		Path:            r.RequestURI,
		ProtocolVersion: r.Proto,
		ClientAddress:   requestlog.ClientIP(r.RemoteAddr),
	}, nil)
}

// handleConnect simulates tunnel establishment. CONNECT targets arrive in
// authority form (host:port), so the check runs against the request target
// rather than a URL path. Only port 443 is accepted.
func (h *Handler) handleConnect(w http.ResponseWriter, r *http.Request) {
	target := r.Host
	if target == "" {
		target = r.RequestURI
	}
	if !strings.HasSuffix(target, ":443") {
		h.writeError(w, http.StatusBadRequest, "Can only establish CONNECT tunnel to port 443")
		return
	}
	h.writeJSON(w, http.StatusOK, connectResponse{
		Message:  "CONNECT tunnel established",
		Endpoint: target,
		Status:   "connected",
	}, nil)
}
