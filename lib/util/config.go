package util

import (
	"os"
	"strconv"

	"compaexpress/lib/constants"
)

// ParamsLoader returns the SSM parameters for the application path.
// It is only called when an environment variable is missing.
type ParamsLoader func() (map[string]string, error)

// Settings resolves configuration values from the process environment first and
// SSM Parameter Store second. SSM is read at most once per execution environment.
type Settings struct {
	Getenv func(string) string
	Load   ParamsLoader

	params map[string]string
	loaded bool
}

// NewSettings creates Settings backed by os.Getenv
func NewSettings(load ParamsLoader) *Settings {
	return &Settings{Getenv: os.Getenv, Load: load}
}

// Lookup returns the first non-empty environment variable in envKeys, falling back to
// the SSM parameter named paramKey. It returns "" when neither source has a value.
func (s *Settings) Lookup(paramKey string, envKeys ...string) (string, error) {
	values := make([]string, 0, len(envKeys))
	for _, key := range envKeys {
		values = append(values, s.Getenv(key))
	}
	if value := FirstNonEmpty(values...); value != "" {
		return value, nil
	}
	if paramKey == "" || s.Load == nil {
		return "", nil
	}

	if !s.loaded {
		params, err := s.Load()
		if err != nil {
			return "", err
		}
		s.params = params
		s.loaded = true
	}
	return s.params[paramKey], nil
}

// IsLocal reports whether IS_LOCAL is set to a true value
func (s *Settings) IsLocal() bool {
	isLocal, _ := strconv.ParseBool(s.Getenv(constants.ENV_IS_LOCAL))
	return isLocal
}

// Region returns the AWS region for SDK clients
func (s *Settings) Region() string {
	return FirstNonEmpty(s.Getenv(constants.ENV_REGION), s.Getenv(constants.ENV_AWS_REGION), constants.DEFAULT_REGION)
}
