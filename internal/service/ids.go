package service

import "github.com/google/uuid"

// IDGenerator supplies collision-free string identifiers for new entities.
// Post ids and comment ids are drawn from independent namespaces, so the
// same generator may back both stores.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random UUIDv4 identifiers.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }
