package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// Snapshot collects every namespaced key into a single document. Values that
// are valid JSON are embedded as-is; bare strings are wrapped so the export
// is always one well-formed JSON object.
func (s *Store) Snapshot(ctx context.Context) (map[string]json.RawMessage, error) {
	keys, err := s.Keys(ctx, Namespace)
	if err != nil {
		return nil, err
	}

	out := make(map[string]json.RawMessage, len(keys))
	for _, k := range keys {
		raw, ok, err := s.Get(ctx, k)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if json.Valid([]byte(raw)) {
			out[k] = json.RawMessage(raw)
			continue
		}
		wrapped, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("snapshot wrap %s: %w", k, err)
		}
		out[k] = wrapped
	}
	return out, nil
}

// Export serializes the full namespace snapshot for backup files.
func (s *Store) Export(ctx context.Context) ([]byte, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export marshal: %w", err)
	}
	return data, nil
}

// Import replaces the entire namespace with the contents of a backup
// document. Validation happens before any destructive write; the
// clear-and-restore runs in one transaction. Keys outside the namespace are
// dropped. There is no merge and no partial restore.
func (s *Store) Import(ctx context.Context, data []byte) error {
	var snap map[string]json.RawMessage
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("invalid backup file: %w", err)
	}
	if snap == nil {
		return errors.New("invalid backup file: not a JSON object")
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM kv WHERE key LIKE ? || '%'`, Namespace); err != nil {
			return fmt.Errorf("import clear: %w", err)
		}
		for k, v := range snap {
			if len(k) < len(Namespace) || k[:len(Namespace)] != Namespace {
				continue
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			`, k, string(v)); err != nil {
				return fmt.Errorf("import restore %s: %w", k, err)
			}
		}
		return nil
	})
}
