package util

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// SetLogLevel applies the LOG_LEVEL value to the logger.
// Unknown or empty values fall back to error level to keep CloudWatch volume low.
func SetLogLevel(logger *logrus.Logger, level string) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "info":
		logger.SetLevel(logrus.InfoLevel)
	case "warn", "warning":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.ErrorLevel)
	}
}

// NewLogger builds the JSON logger shared by every Lambda in this repository
func NewLogger(isLocal bool, level string) *logrus.Logger {
	logger := logrus.New()
	SetLogLevel(logger, level)
	logger.SetFormatter(&logrus.JSONFormatter{PrettyPrint: isLocal})
	return logger
}
