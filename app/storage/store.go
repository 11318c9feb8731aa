package storage

import (
	"context"
	"errors"
	"fmt"
)

// The logical keys mirror the original client-side storage schema. Each key
// holds one JSON-encoded document and is overwritten whole on every save,
// last write wins.
const (
	KeyProducts        = "products"
	KeyBundles         = "bundles"
	KeyPurchasedAssets = "purchased_assets"
	KeyPurchaseHistory = "purchase_history"
	KeyLastCustomer    = "last_customer"
)

// SchemaVersion is stamped on every entry. A mismatch on read is corruption,
// not a silent fallback to seed data.
const SchemaVersion = 1

var ErrKeyNotFound = errors.New("storage: key not found")

// CorruptStateError marks a persisted entry that exists but cannot be
// decoded: malformed JSON or an unexpected schema version.
type CorruptStateError struct {
	Key    string
	Schema int
	Err    error
}

func (e *CorruptStateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("storage: corrupt state for key %q (schema %d): %v", e.Key, e.Schema, e.Err)
	}
	return fmt.Sprintf("storage: corrupt state for key %q (schema %d)", e.Key, e.Schema)
}

func (e *CorruptStateError) Unwrap() error {
	return e.Err
}

type Store interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}
