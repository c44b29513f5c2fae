// Package store persists the scorekeeping session between runs.
//
// The session is kept as a single opaque JSON blob under a fixed path,
// the file-backed equivalent of the fixed browser storage key the web
// version of the app used. The blob is written atomically after every
// mutation, so a crash mid-save leaves the previous game intact.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/nertzpro/scorepad/internal/fileutil"
	"github.com/nertzpro/scorepad/internal/game"
)

// DefaultFileName is the session blob's file name under the app's data
// directory.
const DefaultFileName = "scorepad.json"

// Store is the persistence port injected into the UI layer. Load
// reports ok=false when no session has been saved yet; that is not an
// error, the caller starts fresh.
type Store interface {
	Load() (sess *game.Session, ok bool, err error)
	Save(sess *game.Session) error
}

// envelope wraps the session blob with save metadata. The session
// payload stays opaque to this package.
type envelope struct {
	SavedAt time.Time       `json:"saved_at"`
	Session json.RawMessage `json:"session"`
}

// FileStore keeps the session at a fixed path on disk.
type FileStore struct {
	path   string
	clock  quartz.Clock
	logger *log.Logger
}

// NewFileStore creates a store writing to path. A nil clock falls back
// to the real clock; tests inject quartz mocks.
func NewFileStore(path string, clock quartz.Clock, logger *log.Logger) *FileStore {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &FileStore{
		path:   path,
		clock:  clock,
		logger: logger.WithPrefix("store"),
	}
}

// Load reads the saved session. A missing file means no session exists
// yet; a present but unreadable or inconsistent file is an error, which
// callers typically log before starting fresh.
func (fs *FileStore) Load() (*game.Session, bool, error) {
	data, err := os.ReadFile(fs.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read session file: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, false, fmt.Errorf("failed to decode session envelope: %w", err)
	}

	var sess game.Session
	if err := json.Unmarshal(env.Session, &sess); err != nil {
		return nil, false, fmt.Errorf("failed to decode session: %w", err)
	}

	fs.logger.Debug("loaded session", "path", fs.path, "saved_at", env.SavedAt)
	return &sess, true, nil
}

// Save writes the session atomically, creating the data directory on
// first use. Failures surface to the caller; the in-memory session is
// still correct but durability for this mutation is lost.
func (fs *FileStore) Save(sess *game.Session) error {
	blob, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	data, err := json.MarshalIndent(envelope{
		SavedAt: fs.clock.Now(),
		Session: blob,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session envelope: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(fs.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := fileutil.WriteAtomic(fs.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	fs.logger.Debug("saved session", "path", fs.path)
	return nil
}
