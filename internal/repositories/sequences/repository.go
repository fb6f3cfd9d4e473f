package sequences

import "context"

// Repository manages the monotonic per-prefix code counters. Both operations
// are meant to run inside the registration transaction: Current takes a row
// lock so concurrent registrations serialize on the prefix.
type Repository interface {
	// Current returns the counter for prefix, locking the row for the rest
	// of the transaction, or common.ErrNotFound when the prefix has no
	// counter yet.
	Current(ctx context.Context, prefix string) (int64, error)
	// Set writes the counter for prefix, creating the row if needed.
	Set(ctx context.Context, prefix string, value int64) error
}
