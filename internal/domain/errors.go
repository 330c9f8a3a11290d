package domain

import "errors"

var (
	// ErrUnknownSex is returned for a sex outside the two recognized values
	ErrUnknownSex = errors.New("unknown sex")

	// ErrUnknownActivityLevel is returned for an activity level outside the four recognized levels
	ErrUnknownActivityLevel = errors.New("unknown activity level")

	// ErrUnknownGoal is returned for a goal outside the three recognized goals
	ErrUnknownGoal = errors.New("unknown goal")

	// ErrUnknownUnit is returned for an unsupported conversion unit
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrInvalidFrequency is returned when the weekly workout frequency is below 1
	ErrInvalidFrequency = errors.New("workout frequency must be at least 1")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrProfileNotFound is returned when a profile id has no stored record
	ErrProfileNotFound = errors.New("profile not found")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
