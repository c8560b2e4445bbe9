package domain

import "errors"

var (
	// ErrNotFound covers both a missing project and a project owned by
	// someone else; callers cannot tell the two apart.
	ErrNotFound = errors.New("project not found")

	// ErrFlowNotSaved means the project exists but no flow was ever saved.
	ErrFlowNotSaved = errors.New("flow not saved")
)
