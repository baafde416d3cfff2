// Package config provides the server configuration type and file loader.
package config

// ServerConfig holds everything the engine needs to run. Zero values fall
// back to the defaults from DefaultConfig at server construction.
type ServerConfig struct {
	// Host is the interface to bind. Empty binds all interfaces.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`

	// Port is the HTTP listen port.
	Port int `json:"port,omitempty" yaml:"port,omitempty"`

	// Debug controls whether 500 responses include the underlying error
	// in the "detail" field. Off by default.
	Debug bool `json:"debug,omitempty" yaml:"debug,omitempty"`

	// MaxLogEntries bounds the in-memory request history.
	MaxLogEntries int `json:"maxLogEntries,omitempty" yaml:"maxLogEntries,omitempty"`

	// ReadTimeout is the HTTP read timeout in seconds.
	ReadTimeout int `json:"readTimeout,omitempty" yaml:"readTimeout,omitempty"`

	// WriteTimeout is the HTTP write timeout in seconds.
	WriteTimeout int `json:"writeTimeout,omitempty" yaml:"writeTimeout,omitempty"`

	// Login carries the accepted credentials for /api/login.
	Login LoginConfig `json:"login,omitempty" yaml:"login,omitempty"`

	// SeedItems are loaded into the item store at startup. Each entry is
	// an arbitrary JSON object; IDs and creation timestamps are generated.
	SeedItems []map[string]any `json:"seedItems,omitempty" yaml:"seedItems,omitempty"`
}

// LoginConfig is the single fixed-credential pair accepted by the login
// endpoint. This is a test double: there is exactly one implicit user and
// no password hashing.
type LoginConfig struct {
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
}

// Defaults.
const (
	DefaultPort          = 8000
	DefaultReadTimeout   = 30
	DefaultWriteTimeout  = 30
	DefaultMaxLogEntries = 1000
	DefaultUsername      = "admin"
	DefaultPassword      = "password"
)

// DefaultConfig returns the configuration the server runs with when no file
// or flags are given.
func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		Port:          DefaultPort,
		ReadTimeout:   DefaultReadTimeout,
		WriteTimeout:  DefaultWriteTimeout,
		MaxLogEntries: DefaultMaxLogEntries,
		Login: LoginConfig{
			Username: DefaultUsername,
			Password: DefaultPassword,
		},
	}
}

// ApplyDefaults fills zero-valued fields with defaults.
func (c *ServerConfig) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.MaxLogEntries == 0 {
		c.MaxLogEntries = DefaultMaxLogEntries
	}
	if c.Login.Username == "" {
		c.Login.Username = DefaultUsername
	}
	if c.Login.Password == "" {
		c.Login.Password = DefaultPassword
	}
}
