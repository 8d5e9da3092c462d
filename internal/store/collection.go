package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/palmcar/rentaldesk/internal/logger"
)

// loadCollection decodes the JSON array stored under key into a slice of T.
//
// An absent key yields an empty slice. Malformed JSON also yields an empty
// slice — with a warning — rather than an error: a corrupted collection is
// recoverable by re-entering data, while a hard failure would brick the
// whole application (spec'd degradation behavior).
func loadCollection[T any](ctx context.Context, storage Storage, key string) ([]T, error) {
	log := logger.FromContext(ctx)

	raw, ok, err := storage.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return []T{}, nil
	}

	var items []T
	if err = json.Unmarshal(raw, &items); err != nil {
		log.Warn().
			Str("func", "loadCollection").
			Str("key", key).
			Err(err).
			Msg("stored collection is malformed; starting from an empty collection")
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

// saveCollection encodes items as a JSON array and stores it under key.
func saveCollection[T any](ctx context.Context, storage Storage, key string, items []T) error {
	if items == nil {
		items = []T{}
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err = storage.Set(ctx, key, payload); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}

	return nil
}
