package engine

import "errors"

// Request-cycle failures surfaced by the body parser. Handlers map each to
// exactly one HTTP status at the response boundary.
var (
	// ErrPayloadTooLarge means the declared Content-Length exceeds the
	// body size cap. The body is not read.
	ErrPayloadTooLarge = errors.New("request entity too large")

	// ErrMalformedBody means the body was read but is not valid JSON.
	ErrMalformedBody = errors.New("invalid JSON format")
)

// Canonical error messages, matching what clients of the mock API assert on.
const (
	msgMissingToken       = "No token provided"
	msgInvalidToken       = "Invalid token"
	msgInvalidCredentials = "Invalid credentials"
	msgMissingLoginFields = "Missing required fields: username and password"
	msgInvalidItemFormat  = "Invalid item format - expected object"
	msgItemNotFound       = "Item not found"
	msgEndpointNotFound   = "Endpoint not found"
	msgInvalidEndpoint    = "Invalid endpoint"
	msgPayloadTooLarge    = "Request entity too large"
	msgMalformedBody      = "Invalid JSON format"
	msgInternalError      = "Internal server error"
	msgContactAdmin       = "Contact administrator"
)
