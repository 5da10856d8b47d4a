package footprint

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	ledgerFileName = "emissions.json"
	backupFileName = "emissions_backup.json"
)

// Store durably persists a ledger as a single JSON document inside a data
// directory. A backup of the previous state is retained under a fixed
// sibling name before every overwrite, and unparseable content found on
// load is quarantined under a timestamped name.
//
// The store is designed for a single writer: callers embedding it in a
// multi-user context must serialize mutations externally.
type Store struct {
	dir string
}

// NewStore returns a store rooted at the given data directory.
func NewStore(dir string) *Store { return &Store{dir: dir} }

// Path returns the full path of the primary ledger file.
func (s *Store) Path() string { return filepath.Join(s.dir, ledgerFileName) }

// BackupPath returns the full path of the fixed backup file.
func (s *Store) BackupPath() string { return filepath.Join(s.dir, backupFileName) }

func (s *Store) quarantinePath(now time.Time) string {
	return filepath.Join(s.dir, fmt.Sprintf("emissions_backup_%d.json", now.Unix()))
}

// Save serializes the full ledger to the primary file. The previous state
// is first copied to the backup path, best effort: a backup failure never
// blocks the save. The new content is written to a temporary file and
// renamed into place, so the previous durable state stays intact if the
// write itself fails.
func (s *Store) Save(l *Ledger) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", s.dir, err)
	}

	if prev, err := os.ReadFile(s.Path()); err == nil {
		// Keep going even if the backup copy fails.
		_ = os.WriteFile(s.BackupPath(), prev, 0644)
	}

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "emissions-*.json.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary ledger file: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write ledger file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace ledger file %q: %w", s.Path(), err)
	}
	return nil
}

// Load reads the ledger back from the primary file.
//
// A missing store yields an empty ledger. An existing but empty file also
// yields an empty ledger. Unparseable content never reaches the caller as
// an error: the corrupt file is copied to a timestamped quarantine path,
// a warning is logged, and an empty ledger is returned.
func (s *Store) Load() (*Ledger, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read ledger file %q: %w", s.Path(), err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return NewLedger(), nil
	}

	ledger, err := DecodeLedger(bytes.NewReader(data))
	if err != nil {
		quarantine := s.quarantinePath(time.Now())
		if werr := os.WriteFile(quarantine, data, 0644); werr != nil {
			log.Printf("warning: corrupted ledger file %q could not be quarantined: %v", s.Path(), werr)
		} else {
			log.Printf("warning: corrupted ledger file found, a copy has been kept at %q: %v", quarantine, err)
		}
		return NewLedger(), nil
	}
	return ledger, nil
}
