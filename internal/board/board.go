// Package board keeps imported student profiles in a local JSON file so they can be
// browsed as a board of cards and reopened later.
package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/student-portfolio/internal/types"
)

// lockRetryDelay is how often a busy board lock is retried
const lockRetryDelay = 50 * time.Millisecond

// ErrNotFound is returned when no entry has the requested profile id
var ErrNotFound = errors.New("profile not found on board")

// Entry is one profile stored on the board
type Entry struct {
	ID         uuid.UUID            `json:"id"`
	ImportedAt time.Time            `json:"importedAt"`
	Source     string               `json:"source,omitempty"`
	Profile    types.StudentProfile `json:"profile"`
}

// document is the on-disk layout
type document struct {
	Students []Entry `json:"students"`
}

// Board is a file-backed collection of profiles, safe to share between goroutines and processes
type Board struct {
	// mu serializes access within the process; the file lock only excludes other processes
	mu     sync.Mutex
	path   string
	lock   *flock.Flock
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Board
type Option func(*Board)

// WithLogger sets the board logger
func WithLogger(logger *zap.Logger) Option {
	return func(b *Board) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithClock sets the clock used for import timestamps
func WithClock(now func() time.Time) Option {
	return func(b *Board) {
		if now != nil {
			b.now = now
		}
	}
}

// Open returns the board stored at path, creating its directory if needed.
// The file itself is created on the first write.
func Open(path string, opts ...Option) (*Board, error) {
	if path == "" {
		return nil, fmt.Errorf("board path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create board directory: %w", err)
	}

	b := &Board{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Path returns the board file location
func (b *Board) Path() string {
	return b.path
}

// List returns every entry in insertion order
func (b *Board) List(ctx context.Context) ([]Entry, error) {
	if err := b.rlock(ctx); err != nil {
		return nil, err
	}
	defer b.unlock()

	doc, err := b.read()
	if err != nil {
		return nil, err
	}
	return doc.Students, nil
}

// Get returns the entry holding profileID
func (b *Board) Get(ctx context.Context, profileID string) (*Entry, error) {
	entries, err := b.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].Profile.ProfileID == profileID {
			return &entries[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, profileID)
}

// Add stores profiles on the board. A profile whose id is already present replaces
// the old entry in place; new profiles are appended.
func (b *Board) Add(ctx context.Context, source string, profiles ...types.StudentProfile) ([]Entry, error) {
	if len(profiles) == 0 {
		return nil, nil
	}
	if err := b.wlock(ctx); err != nil {
		return nil, err
	}
	defer b.unlock()

	doc, err := b.read()
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(doc.Students))
	for i, e := range doc.Students {
		if id := e.Profile.ProfileID; id != "" {
			index[id] = i
		}
	}

	added := make([]Entry, 0, len(profiles))
	now := b.now().UTC()
	for _, p := range profiles {
		entry := Entry{
			ID:         uuid.New(),
			ImportedAt: now,
			Source:     source,
			Profile:    p,
		}
		if i, exists := index[p.ProfileID]; exists && p.ProfileID != "" {
			entry.ID = doc.Students[i].ID
			doc.Students[i] = entry
		} else {
			doc.Students = append(doc.Students, entry)
			if p.ProfileID != "" {
				index[p.ProfileID] = len(doc.Students) - 1
			}
		}
		added = append(added, entry)
	}

	if err := b.write(doc); err != nil {
		return nil, err
	}

	b.logger.Info("added profiles to board",
		zap.String("board", b.path),
		zap.String("source", source),
		zap.Int("count", len(added)),
		zap.Int("total", len(doc.Students)))

	return added, nil
}

// Remove deletes the entry holding profileID
func (b *Board) Remove(ctx context.Context, profileID string) error {
	if err := b.wlock(ctx); err != nil {
		return err
	}
	defer b.unlock()

	doc, err := b.read()
	if err != nil {
		return err
	}

	kept := doc.Students[:0]
	removed := false
	for _, e := range doc.Students {
		if e.Profile.ProfileID == profileID {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return fmt.Errorf("%w: %s", ErrNotFound, profileID)
	}
	doc.Students = kept

	return b.write(doc)
}

func (b *Board) rlock(ctx context.Context) error {
	b.mu.Lock()
	ok, err := b.lock.TryRLockContext(ctx, lockRetryDelay)
	if err != nil || !ok {
		b.mu.Unlock()
		return lockFailure(b.path, "reading", err)
	}
	return nil
}

func (b *Board) wlock(ctx context.Context) error {
	b.mu.Lock()
	ok, err := b.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil || !ok {
		b.mu.Unlock()
		return lockFailure(b.path, "writing", err)
	}
	return nil
}

func (b *Board) unlock() {
	if err := b.lock.Unlock(); err != nil {
		b.logger.Warn("failed to unlock board", zap.String("board", b.path), zap.Error(err))
	}
	b.mu.Unlock()
}

func lockFailure(path, mode string, err error) error {
	if err != nil {
		return fmt.Errorf("failed to lock board for %s: %w", mode, err)
	}
	return fmt.Errorf("board %s is busy", path)
}

// read loads the board; a missing file is an empty board
func (b *Board) read() (*document, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, os.ErrNotExist) {
		return &document{Students: []Entry{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read board %s: %w", b.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse board %s: %w", b.path, err)
	}
	if doc.Students == nil {
		doc.Students = []Entry{}
	}
	return &doc, nil
}

// write replaces the board file atomically
func (b *Board) write(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal board: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(b.path), filepath.Base(b.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp board file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write board: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp board file: %w", err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		return fmt.Errorf("failed to replace board file: %w", err)
	}
	return nil
}
