// Package store provides the durable key-value storage the repository
// layer sits on. Two keys exist: the users collection and the records
// collection, each a single JSON document replaced wholesale on write.
package store

import "context"

// Store contract. Get reports absence through the boolean rather than an
// error; a missing key is a normal first-run state.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}
