package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	Token     TokenConfig
	Payment   PaymentConfig
	Authority AuthorityConfig
	Device    DeviceConfig
	Admin     AdminConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT session token configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// TokenConfig controls access code generation and binding policy
type TokenConfig struct {
	Prefix              string // access code prefix, e.g. "ACE"
	BindingValidityDays int    // expiry horizon applied at first binding
}

// PaymentConfig contains payment gateway client configuration
type PaymentConfig struct {
	GatewayURL     string
	APIKey         string
	MinimumAmount  float64
	RequestTimeout time.Duration
}

// AuthorityConfig contains remote token authority client configuration.
// ForceOffline is injected into the reconciliation layer at construction so
// offline behavior is deterministic per instance.
type AuthorityConfig struct {
	BaseURL          string
	RequestTimeout   time.Duration // per HTTP call
	OperationTimeout time.Duration // whole logical operation, device resolution included
	ForceOffline     bool
}

// DeviceConfig contains device identity provider configuration
type DeviceConfig struct {
	ResolveTimeout time.Duration
}

// AdminConfig holds the bootstrap administrator credentials
type AdminConfig struct {
	Username string
	Password string
}

// LoggerConfig contains logger output configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
