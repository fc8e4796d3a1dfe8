package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"attendance.service/internal/core/model"
	"attendance.service/internal/ports/store"
)

// Store keys for the two persisted collections.
const (
	UsersKey   = "users"
	RecordsKey = "records"
)

// Repository contract. SaveRecords replaces the whole records collection;
// callers read-modify-write the entire set. There is deliberately no
// partial-update API — see the store for the atomicity tradeoff.
type Repository interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	FindUser(ctx context.Context, id string) (*model.User, error)
	ListRecords(ctx context.Context) ([]model.AttendanceRecord, error)
	FindRecord(ctx context.Context, id string) (*model.AttendanceRecord, error)
	SaveRecords(ctx context.Context, records []model.AttendanceRecord) error
	Seed(ctx context.Context, now time.Time) error
}

// StoreRepository is the concrete implementation over a key-value Store.
type StoreRepository struct {
	store store.Store
}

func NewStoreRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

// ListUsers returns all users in stored order. An absent key yields an
// empty slice; a document that fails to decode is an error, not an empty
// collection — corruption should surface, absence should not.
func (r *StoreRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	raw, ok, err := r.store.Get(ctx, UsersKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.User{}, nil
	}

	var users []model.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("decode %s: %w", UsersKey, err)
	}
	return users, nil
}

// FindUser returns nil when no user has the given id.
func (r *StoreRepository) FindUser(ctx context.Context, id string) (*model.User, error) {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// ListRecords returns all attendance records in stored order.
func (r *StoreRepository) ListRecords(ctx context.Context) ([]model.AttendanceRecord, error) {
	raw, ok, err := r.store.Get(ctx, RecordsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.AttendanceRecord{}, nil
	}

	var records []model.AttendanceRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", RecordsKey, err)
	}
	return records, nil
}

// FindRecord returns nil when no record has the given id.
func (r *StoreRepository) FindRecord(ctx context.Context, id string) (*model.AttendanceRecord, error) {
	records, err := r.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, nil
}

// SaveRecords replaces the records collection wholesale.
func (r *StoreRepository) SaveRecords(ctx context.Context, records []model.AttendanceRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", RecordsKey, err)
	}
	return r.store.Set(ctx, RecordsKey, raw)
}

// Seed writes the fixture collections, each only if its key is absent.
// The checks are independent per key, so a partially seeded store is
// completed rather than overwritten.
func (r *StoreRepository) Seed(ctx context.Context, now time.Time) error {
	if _, ok, err := r.store.Get(ctx, UsersKey); err != nil {
		return err
	} else if !ok {
		raw, err := json.Marshal(fixtureUsers())
		if err != nil {
			return fmt.Errorf("encode %s: %w", UsersKey, err)
		}
		if err := r.store.Set(ctx, UsersKey, raw); err != nil {
			return err
		}
	}

	if _, ok, err := r.store.Get(ctx, RecordsKey); err != nil {
		return err
	} else if !ok {
		raw, err := json.Marshal(fixtureRecords(now))
		if err != nil {
			return fmt.Errorf("encode %s: %w", RecordsKey, err)
		}
		if err := r.store.Set(ctx, RecordsKey, raw); err != nil {
			return err
		}
	}

	return nil
}
