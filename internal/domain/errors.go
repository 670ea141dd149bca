package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Skill errors
	ErrMsgUnknownSkill = "unknown skill"

	// Catalog errors
	ErrMsgCatalogInvalid = "invalid ore catalog"

	// Database/System errors
	ErrMsgStorageUnavailable = "storage unavailable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrPlayerNotFound     = errors.New(ErrMsgPlayerNotFound)
	ErrUnknownSkill       = errors.New(ErrMsgUnknownSkill)
	ErrCatalogInvalid     = errors.New(ErrMsgCatalogInvalid)
	ErrStorageUnavailable = errors.New(ErrMsgStorageUnavailable)
	ErrInvalidInput       = errors.New(ErrMsgInvalidInput)
)
