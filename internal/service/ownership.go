package service

import "github.com/google/uuid"

// CanMutate decides whether the caller may update or delete a resource.
// Strict owner equality; existence must be checked before this so a
// non-owner on an existing resource gets forbidden, never not-found.
func CanMutate(ownerID, callerID uuid.UUID) bool {
	return ownerID == callerID
}
