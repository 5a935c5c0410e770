// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import "errors"

// Query failures are returned as wrapped sentinel values so callers can
// message them distinctly. An empty result set is not a failure: a query
// that resolves but matches nothing returns an empty success.
var (
	// ErrNotFound means a query named an object that does not exist.
	ErrNotFound = errors.New("no such object")

	// ErrNoEvidence means an object exists but has no incident edges.
	// Distinct from ErrNotFound so the shell can tell the user which.
	ErrNoEvidence = errors.New("no recorded evidence")

	// ErrPattern means a lens pattern has the wrong arity or alternation.
	// Rejected before any search begins.
	ErrPattern = errors.New("malformed lens pattern")
)
