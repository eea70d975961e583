package leads

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/zeebo/blake3"
)

// ImportRecord is one completed bulk upload.
type ImportRecord struct {
	// Digest is the hex blake3 hash of the uploaded file's content.
	Digest string `json:"digest"`

	// Filename is the file's base name at import time, for the
	// duplicate warning message.
	Filename string `json:"filename"`

	// ImportedAt is when the upload completed.
	ImportedAt time.Time `json:"imported_at"`

	// Created and Duplicates are the backend's reported counts.
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

// Ledger remembers which files have already been imported, keyed by
// content hash, so renaming a file does not defeat the duplicate
// warning.
type Ledger struct {
	path    string
	records map[string]ImportRecord
}

// LoadLedger reads the ledger at path. A missing ledger is empty.
func LoadLedger(path string) (*Ledger, error) {
	ledger := &Ledger{
		path:    path,
		records: make(map[string]ImportRecord),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ledger, nil
		}
		return nil, fmt.Errorf("read import ledger %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &ledger.records); err != nil {
		return nil, fmt.Errorf("parse import ledger %s: %w", path, err)
	}
	return ledger, nil
}

// Lookup returns the previous import of content with this digest.
func (l *Ledger) Lookup(digest string) (ImportRecord, bool) {
	record, ok := l.records[digest]
	return record, ok
}

// Record adds an import and saves the ledger.
func (l *Ledger) Record(record ImportRecord) error {
	l.records[record.Digest] = record

	if err := os.MkdirAll(filepath.Dir(l.path), 0700); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	data, err := json.MarshalIndent(l.records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal import ledger: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0600); err != nil {
		return fmt.Errorf("write import ledger %s: %w", l.path, err)
	}
	return nil
}

// DigestFile returns the hex blake3 hash of the file's content.
func DigestFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
