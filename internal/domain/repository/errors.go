// Package repository defines the interfaces for the persistence layer.
package repository

import "github.com/pkg/errors"

// Errors returned by every adapter. They are decided at the storage boundary
// so callers never inspect driver error codes.
var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrDealershipNotFound = errors.New("dealership not found")
	ErrRequestNotFound    = errors.New("buyer request not found")
	ErrOfferNotFound      = errors.New("offer not found")
	ErrDeviceNotFound     = errors.New("device not found")

	// ErrIdentityNotSynced is a foreign key failure against the identity mirror.
	ErrIdentityNotSynced = errors.New("identity not yet synced")
	// ErrDuplicate is a unique constraint failure.
	ErrDuplicate = errors.New("duplicate record")
	// ErrStatusConflict means a conditional status update matched no row.
	ErrStatusConflict = errors.New("status changed concurrently")
)
