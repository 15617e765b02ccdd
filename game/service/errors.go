package service

import "errors"

// Sentinel errors shared by the storage layers so transports can map them
// with errors.Is without importing those packages.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrConfigNotFound  = errors.New("configuration not found")
	ErrInvalidConfig   = errors.New("invalid configuration")
)
