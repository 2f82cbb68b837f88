package moneybook

import "github.com/google/uuid"

// IDGenerator mints identifiers for new entities. The default is random
// UUIDs; tests swap in a deterministic one.
type IDGenerator func() string

// NewID is the default IDGenerator.
func NewID() string { return uuid.NewString() }
