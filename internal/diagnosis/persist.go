package diagnosis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/shindan/internal/store"
)

// ResultKey is the key the latest Result is stored under.
const ResultKey = "diagnosis_result"

// SaveResult stores r as the latest result, replacing any previous one.
func SaveResult(ctx context.Context, kv store.KVRepo, r Result) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	return kv.Set(ctx, ResultKey, string(data))
}

// LoadResult returns the latest stored result, or nil if none is stored.
// A stored value that cannot be decoded is treated as absent.
func LoadResult(ctx context.Context, kv store.KVRepo) (*Result, error) {
	raw, ok, err := kv.Get(ctx, ResultKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	r, err := decodeResult([]byte(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring stored %s: %v\n", ResultKey, err)
		return nil, nil
	}
	return r, nil
}

// ClearResult removes the stored result.
func ClearResult(ctx context.Context, kv store.KVRepo) error {
	return kv.Remove(ctx, ResultKey)
}
