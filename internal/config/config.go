package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Engine   EngineConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
	MinConns int
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// EngineConfig holds the attendance-engine knobs: pool lookbacks, role
// exemption lists, masked IDs, and the dashboard refresh cadence.
type EngineConfig struct {
	RegularLookback  time.Duration
	TeamLeadLookback time.Duration
	AdminLookback    time.Duration
	SpecialLookback  time.Duration

	ExemptRoles []string
	PooledRoles []string
	AdminRoles  []string
	ExemptIDs   []string
	SpecialIDs  []string
	MaskedIDs   []string
	MaskDisplay string

	// TZOffsetMinutes is the operational zone, minutes east of UTC.
	TZOffsetMinutes int

	RefreshInterval time.Duration
}

func Load() (*Config, error) {
	// A missing .env is fine in deployed environments; variables come
	// from the process environment there.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	dbMinConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: dbMaxConns,
		MinConns: dbMinConns,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Engine configuration
	engine := EngineConfig{
		ExemptRoles: getEnvSlice("EXEMPT_ROLES", "ADMIN,STL,TL,TTL,ASS. TL,CLEANING,JANITOR,ER"),
		PooledRoles: getEnvSlice("POOLED_ROLES", "TL,TTL,ASS. TL"),
		AdminRoles:  getEnvSlice("ADMIN_ROLES", "ADMIN"),
		ExemptIDs:   getEnvSlice("EXEMPT_EMPLOYEE_IDS", "1007"),
		SpecialIDs:  getEnvSlice("SPECIAL_EMPLOYEE_IDS", ""),
		MaskedIDs:   getEnvSlice("MASKED_EMPLOYEE_IDS", "1001,1283"),
		MaskDisplay: getEnv("MASK_DISPLAY_ROLE", "ER"),
	}
	engine.TZOffsetMinutes, err = strconv.Atoi(getEnv("SHIFT_TZ_OFFSET_MINUTES", "330"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHIFT_TZ_OFFSET_MINUTES: %w", err)
	}
	for key, dst := range map[string]*time.Duration{
		"REGULAR_LOOKBACK":   &engine.RegularLookback,
		"TEAM_LEAD_LOOKBACK": &engine.TeamLeadLookback,
		"ADMIN_LOOKBACK":     &engine.AdminLookback,
		"SPECIAL_LOOKBACK":   &engine.SpecialLookback,
		"REFRESH_INTERVAL":   &engine.RefreshInterval,
	} {
		d, err := time.ParseDuration(getEnv(key, engineDefaults[key]))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = d
	}
	config.Engine = engine

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

var engineDefaults = map[string]string{
	"REGULAR_LOOKBACK":   "13h",
	"TEAM_LEAD_LOOKBACK": "24h",
	"ADMIN_LOOKBACK":     "18h",
	"SPECIAL_LOOKBACK":   "18h",
	"REFRESH_INTERVAL":   "5m",
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Engine.RefreshInterval <= 0 {
		return fmt.Errorf("REFRESH_INTERVAL must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
