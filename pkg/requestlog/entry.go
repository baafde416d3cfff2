package requestlog

import (
	"net"
	"net/http"
	"time"
)

// Entry captures the details of a single received request. One entry is
// recorded per request regardless of how the request is ultimately handled.
type Entry struct {
	// Timestamp is when the request was received.
	Timestamp time.Time `json:"timestamp"`

	// Method is the HTTP method.
	Method string `json:"method"`

	// Path is the raw request target as sent by the client.
	Path string `json:"path"`

	// Headers are the request headers (multi-value).
	Headers map[string][]string `json:"headers"`

	// ClientAddress is the client IP address, without the port.
	ClientAddress string `json:"client_address"`
}

// FromRequest builds an Entry from an incoming HTTP request.
func FromRequest(r *http.Request) *Entry {
	return &Entry{
		Timestamp:     time.Now(),
		Method:        r.Method,
		Path:          r.RequestURI,
		Headers:       map[string][]string(r.Header),
		ClientAddress: ClientIP(r.RemoteAddr),
	}
}

// ClientIP strips the port from a net/http RemoteAddr. The raw value is
// returned when it does not have the host:port shape.
func ClientIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
