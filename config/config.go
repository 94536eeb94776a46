// Package config loads service configuration from the environment and
// the optional enums YAML file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// DatabaseConfig holds the connection settings for the document store
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
}

// NewDatabaseConfig builds a DatabaseConfig from environment variables
func NewDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Host:     GetEnvOrDefault("DB_HOST", "localhost"),
		Port:     GetEnvOrDefault("DB_PORT", "5432"),
		User:     GetEnvOrDefault("DB_USER", "user"),
		Password: GetEnvOrDefault("DB_PASSWORD", "password"),
		Database: GetEnvOrDefault("DB_NAME", "barangay_db"),
		SSLMode:  GetEnvOrDefault("DB_SSLMODE", "disable"),
	}
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// AuditEnums represents the enum label sets used by the audit log.
// The labels are configurable via YAML so deployments can rename the
// user-facing action strings without a rebuild.
type AuditEnums struct {
	ActionTypes    []string `yaml:"actionTypes"`
	Statuses       []string `yaml:"statuses"`
	DocumentTypes  []string `yaml:"documentTypes"`
	CheckerMethods []string `yaml:"checkerMethods"`

	actionTypesMap   map[string]struct{}
	statusesMap      map[string]struct{}
	documentTypesMap map[string]struct{}

	initOnce sync.Once
}

// Config holds the full service configuration
type Config struct {
	Enums AuditEnums `yaml:"enums"`
}

// DefaultEnums provides the compiled-in enum values used when no config
// file is present. The strings match the stored audit history.
var DefaultEnums = AuditEnums{
	ActionTypes: []string{
		"Login",
		"Document Issuance",
		"QR Verification",
	},
	Statuses: []string{
		"Success",
		"Failed",
	},
	DocumentTypes: []string{
		"Certificate of Indigency",
		"Barangay Clearance",
		"Business Permit",
	},
	CheckerMethods: []string{
		"System",
		"QR Upload",
	},
}

// LoadEnums loads enum configuration from a YAML file.
// If the file is not found, the compiled-in defaults are returned.
func LoadEnums(configPath string) (*AuditEnums, error) {
	if configPath == "" {
		configPath = "config/enums.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return GetDefaultEnums(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	enums := &cfg.Enums
	if len(enums.ActionTypes) == 0 {
		enums.ActionTypes = DefaultEnums.ActionTypes
	}
	if len(enums.Statuses) == 0 {
		enums.Statuses = DefaultEnums.Statuses
	}
	if len(enums.DocumentTypes) == 0 {
		enums.DocumentTypes = DefaultEnums.DocumentTypes
	}
	if len(enums.CheckerMethods) == 0 {
		enums.CheckerMethods = DefaultEnums.CheckerMethods
	}

	slog.Info("Loaded audit enum configuration", "path", configPath,
		"actionTypes", len(enums.ActionTypes), "documentTypes", len(enums.DocumentTypes))
	return enums, nil
}

// GetDefaultEnums returns a copy of the default enum configuration
func GetDefaultEnums() *AuditEnums {
	return &AuditEnums{
		ActionTypes:    DefaultEnums.ActionTypes,
		Statuses:       DefaultEnums.Statuses,
		DocumentTypes:  DefaultEnums.DocumentTypes,
		CheckerMethods: DefaultEnums.CheckerMethods,
	}
}

func (e *AuditEnums) initMaps() {
	e.initOnce.Do(func() {
		e.actionTypesMap = toSet(e.ActionTypes)
		e.statusesMap = toSet(e.Statuses)
		e.documentTypesMap = toSet(e.DocumentTypes)
	})
}

// IsValidActionType reports whether the given action type is configured
func (e *AuditEnums) IsValidActionType(v string) bool {
	e.initMaps()
	_, ok := e.actionTypesMap[v]
	return ok
}

// IsValidStatus reports whether the given status is configured
func (e *AuditEnums) IsValidStatus(v string) bool {
	e.initMaps()
	_, ok := e.statusesMap[v]
	return ok
}

// IsValidDocumentType reports whether the given document type label is configured
func (e *AuditEnums) IsValidDocumentType(v string) bool {
	e.initMaps()
	_, ok := e.documentTypesMap[v]
	return ok
}

func toSet(values []string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

// GetEnvOrDefault gets an environment variable with a fallback default value
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
