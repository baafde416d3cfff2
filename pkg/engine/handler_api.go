// Login, item CRUD, and introspection handlers for the mock API.

package engine

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/imitatus/imitatus/pkg/store"
)

// handleGet routes GET requests: /debug/vars introspection (public),
// item listing and single-item lookup (protected).
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if path == "/debug/vars" {
		h.handleDebugVars(w)
		return
	}

	if path == "/api/items" || strings.HasPrefix(path, "/api/items/") {
		if !h.authenticate(w, r) {
			return
		}
		if path == "/api/items" {
			h.writeJSON(w, http.StatusOK, itemListResponse{Items: h.store.Items.List()}, nil)
			return
		}
		id, ok := itemIDFromPath(path)
		if !ok {
			h.writeError(w, http.StatusNotFound, msgEndpointNotFound)
			return
		}
		item, found := h.store.Items.Get(id)
		if !found {
			h.writeError(w, http.StatusNotFound, msgItemNotFound)
			return
		}
		h.writeJSON(w, http.StatusOK, singleItemResponse{Item: item}, nil)
		return
	}

	h.writeError(w, http.StatusNotFound, msgEndpointNotFound)
}

// handlePost routes POST requests: login (public) and item creation
// (protected).
func (h *Handler) handlePost(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/login":
		h.handleLogin(w, r)
	case "/api/items":
		h.handleCreateItem(w, r)
	default:
		h.writeError(w, http.StatusNotFound, msgEndpointNotFound)
	}
}

// handleLogin checks the fixed credential pair and mints a fresh token.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}
	obj, isObj := asObject(body)
	if !isObj {
		h.writeError(w, http.StatusBadRequest, msgMissingLoginFields)
		return
	}
	if _, has := obj["username"]; !has {
		h.writeError(w, http.StatusBadRequest, msgMissingLoginFields)
		return
	}
	if _, has := obj["password"]; !has {
		h.writeError(w, http.StatusBadRequest, msgMissingLoginFields)
		return
	}

	username, _ := obj["username"].(string)
	password, _ := obj["password"].(string)
	if username != h.creds.Username || password != h.creds.Password {
		h.writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	token, rec := h.gate.Issue()
	h.writeJSON(w, http.StatusOK, loginResponse{
		Token:   token,
		UserID:  rec.UserID,
		Message: "Login successful",
	}, nil)
}

// handleCreateItem stores a new item under a generated ID. Client fields
// never override the generated id or created_at.
func (h *Handler) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	if !h.authenticate(w, r) {
		return
	}
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}
	obj, isObj := asObject(body)
	if !isObj {
		h.writeError(w, http.StatusBadRequest, msgInvalidItemFormat)
		return
	}

	id := uuid.NewString()
	item := make(store.Item, len(obj)+2)
	for k, v := range obj {
		item[k] = v
	}
	item["id"] = id
	item["created_at"] = time.Now()

	h.store.Items.Set(id, item)
	h.writeJSON(w, http.StatusOK, itemResponse{
		ID:      id,
		Item:    item,
		Message: "Item created successfully",
	}, nil)
}

// handlePut replaces an item's fields. Merge order is existing then body,
// so a body that names id or created_at overwrites them.
func (h *Handler) handlePut(w http.ResponseWriter, r *http.Request) {
	h.handleItemMerge(w, r, "updated_at", "Item updated successfully")
}

// handlePatch shallow-merges the body into an existing item.
func (h *Handler) handlePatch(w http.ResponseWriter, r *http.Request) {
	h.handleItemMerge(w, r, "patched_at", "Item patched successfully")
}

// handleItemMerge implements the shared PUT/PATCH transition: both merge
// the body over the stored record; they differ only in the timestamp field
// stamped on the result.
func (h *Handler) handleItemMerge(w http.ResponseWriter, r *http.Request, stamp, message string) {
	if !h.authenticate(w, r) {
		return
	}
	id, ok := itemIDFromPath(r.URL.Path)
	if !ok {
		h.writeError(w, http.StatusNotFound, msgInvalidEndpoint)
		return
	}
	if !h.store.Items.Exists(id) {
		h.writeError(w, http.StatusNotFound, msgItemNotFound)
		return
	}

	body, ok := h.readBody(w, r)
	if !ok {
		return
	}
	obj, isObj := asObject(body)
	if !isObj {
		h.writeError(w, http.StatusBadRequest, msgInvalidItemFormat)
		return
	}

	updated, found := h.store.Items.Update(id, func(existing store.Item) store.Item {
		for k, v := range obj {
			existing[k] = v
		}
		existing[stamp] = time.Now()
		return existing
	})
	if !found {
		// Deleted between the existence check and the merge.
		h.writeError(w, http.StatusNotFound, msgItemNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, itemResponse{ID: id, Item: updated, Message: message}, nil)
}

// handleDelete removes an item and returns the removed record.
func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !h.authenticate(w, r) {
		return
	}
	id, ok := itemIDFromPath(r.URL.Path)
	if !ok {
		h.writeError(w, http.StatusNotFound, msgInvalidEndpoint)
		return
	}
	item, found := h.store.Items.Delete(id)
	if !found {
		h.writeError(w, http.StatusNotFound, msgItemNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, itemResponse{
		ID:      id,
		Item:    item,
		Message: "Item deleted successfully",
	}, nil)
}

// handleDebugVars reports store counters and the five most recent requests
// in arrival order.
func (h *Handler) handleDebugVars(w http.ResponseWriter) {
	h.writeJSON(w, http.StatusOK, debugVarsResponse{
		ActiveTokensCount: h.store.Tokens.Count(),
		ItemsCount:        h.store.Items.Count(),
		RecentRequests:    h.store.Requests.Recent(5),
	}, nil)
}
