package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"swiftdrive/internal/domain"
)

const ledgerKey = "bookings_ledger"

// LedgerRepository holds the ordered booking ledger, newest first. Every
// append rewrites the full JSON snapshot.
type LedgerRepository struct {
	kv KVStore

	mu       sync.Mutex
	bookings []domain.Booking
}

// NewLedgerRepository rehydrates the ledger from storage. A missing or
// unreadable snapshot initializes an empty ledger instead of failing.
func NewLedgerRepository(ctx context.Context, kv KVStore) *LedgerRepository {
	r := &LedgerRepository{kv: kv}

	raw, err := kv.Get(ctx, ledgerKey)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Printf("ledger: reading snapshot: %v, starting empty", err)
		}
		return r
	}
	if err := json.Unmarshal([]byte(raw), &r.bookings); err != nil {
		log.Printf("ledger: malformed snapshot, starting empty: %v", err)
		r.bookings = nil
	}
	return r
}

// Append prepends the booking and persists the whole ledger. The in-memory
// sequence is only updated once the snapshot write succeeds.
func (r *LedgerRepository) Append(ctx context.Context, b domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]domain.Booking, 0, len(r.bookings)+1)
	updated = append(updated, b)
	updated = append(updated, r.bookings...)

	raw, err := json.Marshal(updated)
	if err != nil {
		return err
	}
	if err := r.kv.Set(ctx, ledgerKey, string(raw)); err != nil {
		return err
	}

	r.bookings = updated
	return nil
}

// List returns a copy of the ledger, newest first.
func (r *LedgerRepository) List(ctx context.Context) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}
