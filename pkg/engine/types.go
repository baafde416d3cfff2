package engine

import (
	"github.com/imitatus/imitatus/pkg/requestlog"
	"github.com/imitatus/imitatus/pkg/store"
)

// APIVersion is reported in the X-API-Version header on OPTIONS responses.
const APIVersion = "1.0"

// loginResponse is returned by POST /api/login on success.
type loginResponse struct {
	Token   string `json:"token"`
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// itemResponse is returned by the single-item mutations (create, update,
// patch, delete). Item carries the full stored record after the operation,
// or the removed record for deletes.
type itemResponse struct {
	ID      string     `json:"id"`
	Item    store.Item `json:"item"`
	Message string     `json:"message"`
}

// singleItemResponse is returned by GET /api/items/{id}.
type singleItemResponse struct {
	Item store.Item `json:"item"`
}

// itemListResponse is returned by GET /api/items. Items are in insertion
// order so repeated listings are deterministic.
type itemListResponse struct {
	Items []store.Item `json:"items"`
}

// debugVarsResponse is returned by GET /debug/vars.
type debugVarsResponse struct {
	ActiveTokensCount int                 `json:"active_tokens_count"`
	ItemsCount        int                 `json:"items_count"`
	RecentRequests    []*requestlog.Entry `json:"recent_requests"`
}

// capabilitiesResponse is returned by OPTIONS requests.
type capabilitiesResponse struct {
	AvailableEndpoints []string `json:"available_endpoints"`
	SupportedMethods   []string `json:"supported_methods"`
}

// traceResponse echoes the request back for TRACE.
type traceResponse struct {
	Headers         map[string][]string `json:"headers"`
	Method          string              `json:"method"`
	Path            string              `json:"path"`
	ProtocolVersion string              `json:"protocol_version"`
	ClientAddress   string              `json:"client_address"`
}

// connectResponse is returned by a simulated CONNECT tunnel.
type connectResponse struct {
	Message  string `json:"message"`
	Endpoint string `json:"endpoint"`
	Status   string `json:"status"`
}
