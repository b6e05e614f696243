package config

import "errors"

var (
	ErrParsingConfig  = errors.New("config: cannot parse environment")
	ErrLoadingEnvFile = errors.New("config: cannot load env file")
	ErrNilPointer     = errors.New("config: target must be a non-nil pointer")
)
