// Package config provides environment-based configuration for the portfolio API.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("PORTFOLIO_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("PORTFOLIO_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("PORTFOLIO_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("PORTFOLIO_PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return 5000
	}
	return port
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("PORTFOLIO_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/portfolio"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("PORTFOLIO_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

// GetJWTSecret returns the token signing secret. It must be configured
// out-of-band; the fallback exists for development only and is not suitable
// for any deployment, since anyone holding it can mint valid tokens.
func GetJWTSecret() string {
	secret := os.Getenv("PORTFOLIO_JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	return secret
}

// GetRedisAddr returns the external redis address. Empty means the embedded
// in-process redis is used.
func GetRedisAddr() string {
	return os.Getenv("PORTFOLIO_REDIS_ADDR")
}
