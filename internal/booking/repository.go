package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/nekogravitycat/locker-booking-backend/internal/pkg/storage"
)

// Repository persists the booking collection.
type Repository interface {
	// Load returns every booking in the order it was appended.
	Load(ctx context.Context) ([]*Booking, error)

	// Append adds one booking to the end of the collection.
	Append(ctx context.Context, b *Booking) error
}

// jsonRepository keeps the whole collection in a single indented JSON
// array, rewritten on every append.
type jsonRepository struct {
	store  storage.Storage
	path   string
	logger *zap.Logger

	// mu serializes the read-modify-write in Append.
	mu sync.Mutex
}

// NewJSONRepository stores bookings as a JSON array under path in store.
func NewJSONRepository(store storage.Storage, path string, logger *zap.Logger) Repository {
	return &jsonRepository{
		store:  store,
		path:   path,
		logger: logger,
	}
}

// Load treats a missing or unparsable file as an empty collection.
func (r *jsonRepository) Load(ctx context.Context) ([]*Booking, error) {
	rc, err := r.store.Get(ctx, r.path)
	if err != nil {
		if storage.IsNotFound(err) {
			return []*Booking{}, nil
		}
		return nil, fmt.Errorf("open bookings file: %w", err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read bookings file: %w", err)
	}

	var bookings []*Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		r.logger.Warn("bookings file is not valid JSON, treating as empty",
			zap.String("path", r.path),
			zap.Error(err),
		)
		return []*Booking{}, nil
	}
	if bookings == nil {
		bookings = []*Booking{}
	}
	return bookings, nil
}

func (r *jsonRepository) Append(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.Load(ctx)
	if err != nil {
		return err
	}
	bookings = append(bookings, b)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(bookings); err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}

	if err := r.store.Save(ctx, r.path, &buf); err != nil {
		return fmt.Errorf("save bookings file: %w", err)
	}
	return nil
}
