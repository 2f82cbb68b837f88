package moneybook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidBackup is returned by Import when the document is not a backup
// produced by Export.
var ErrInvalidBackup = errors.New("not a backup file: missing transactions list")

// Export writes the whole document as indented JSON. The output is a valid
// Import input.
func Export(w io.Writer, s AppState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("exporting backup: %w", err)
	}
	return nil
}

// Import reads a backup document and returns it normalized. A document
// qualifies as a backup when it carries a transactions list; anything else
// is rejected with ErrInvalidBackup and the caller's state is untouched.
func Import(r io.Reader) (AppState, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return AppState{}, fmt.Errorf("reading backup: %w", err)
	}

	var probe struct {
		Transactions json.RawMessage `json:"transactions"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return AppState{}, fmt.Errorf("parsing backup: %w", err)
	}
	if !isJSONArray(probe.Transactions) {
		return AppState{}, ErrInvalidBackup
	}

	var s AppState
	if err := json.Unmarshal(raw, &s); err != nil {
		return AppState{}, fmt.Errorf("parsing backup: %w", err)
	}
	return Normalize(s), nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
