package entity

import "github.com/google/uuid"

// Caller is the authenticated identity behind a request. Whether the caller
// is a clinician is decided from their Profile, not from the token.
type Caller struct {
	ID    uuid.UUID
	Email string
}

// ResolvedAccess is the outcome of a successful access check: the caller's own
// profile and every patient profile reachable through their assignments.
type ResolvedAccess struct {
	CallerProfile *Profile
	Patients      []Profile
}
