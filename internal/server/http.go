package server

import (
	"time"

	"skilladvisor/internal/advisor"
	"skilladvisor/internal/config"
	advisorErrors "skilladvisor/internal/errors"
)

// AdviseRequest represents the request body for the advise endpoint.
// Resume content and manual skills are both optional; when neither is
// provided the response reflects an empty profile. Resume carries a
// base64-encoded document (PDF/DOCX/plain) with its MIME type in Mime;
// ResumeText is a shortcut for plain text.
type AdviseRequest struct {
	Resume      []byte `json:"resume,omitempty"`
	Mime        string `json:"mime,omitempty"`
	ResumeText  string `json:"resumeText,omitempty"`
	Skills      string `json:"skills"`
	TopRoles    int    `json:"topRoles,omitempty"`
	WeeklyHours int    `json:"weeklyHours,omitempty"`
}

// ExtractRequest represents the request body for the extract endpoint
type ExtractRequest struct {
	Resume     []byte `json:"resume,omitempty"`
	Mime       string `json:"mime,omitempty"`
	ResumeText string `json:"resumeText,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// Advisory pipeline
	Advisor *advisor.Service

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Logger
	Logger *advisorErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, svc *advisor.Service, cfg ServerConfig, logger *advisorErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		Advisor:        svc,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Logger:         logger,
	}
}
