package models

import "errors"

// Sentinel errors for the models package. Check with errors.Is.
var (
	ErrInvalidLevel   = errors.New("models: invalid level")
	ErrInvalidOutcome = errors.New("models: invalid outcome")
)
