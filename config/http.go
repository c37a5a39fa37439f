package config

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the base URL of the application (e.g., "https://booking.example.com").
	// Used when generating absolute URLs in responses.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// MaxPageSize caps the limit query parameter on list endpoints.
	MaxPageSize int `env:"HTTP_MAX_PAGE_SIZE" envDefault:"100"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	if h.MaxPageSize < 1 {
		h.MaxPageSize = 1
	}
	const pageSizeCeiling = 500
	if h.MaxPageSize > pageSizeCeiling {
		h.MaxPageSize = pageSizeCeiling
	}
}
