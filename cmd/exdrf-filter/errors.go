package main

import "errors"

// Sentinel errors for command operations
var (
	ErrCheckFailed   = errors.New("some inputs failed the check")
	ErrInvalidFilter = errors.New("invalid filter")
)
