package domain

import "errors"

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidLocation   = errors.New("invalid location")
	ErrNoData            = errors.New("no center data available")
	ErrComputation       = errors.New("ranking computation failed")
	ErrCenterNotFound    = errors.New("center not found")
)
