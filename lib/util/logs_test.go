package util

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetLogLevel(t *testing.T) {
	cases := map[string]logrus.Level{
		"error":  logrus.ErrorLevel,
		"info":   logrus.InfoLevel,
		"DEBUG":  logrus.DebugLevel,
		"warn":   logrus.WarnLevel,
		" Info ": logrus.InfoLevel,
		"other":  logrus.ErrorLevel,
		"":       logrus.ErrorLevel,
	}

	for input, expected := range cases {
		logger := logrus.New()
		SetLogLevel(logger, input)
		assert.Equal(t, expected, logger.GetLevel(), "level for %q", input)
	}
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(true, "debug")

	formatter, ok := logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
	assert.True(t, formatter.PrettyPrint)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}
