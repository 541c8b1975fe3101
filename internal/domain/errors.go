package domain

import "errors"

// Domain errors.
var (
	ErrEmptyTargetName     = errors.New("target name cannot be empty")
	ErrEmptyCommand        = errors.New("command cannot be empty")
	ErrUnsupportedPlatform = errors.New("no process commands for this platform (set [commands] in the config file)")
	ErrConfigExists        = errors.New("config file already exists")
	ErrUnknownFormat       = errors.New("unknown output format")
	ErrConfigNil           = errors.New("config is nil")
	ErrNoConfigDir         = errors.New("config directory not available")
)
