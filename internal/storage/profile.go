// Package storage remembers the last submitted questionnaire between runs.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rota-carreira/rota/internal/questionnaire"
)

// ErrNoProfile is returned when nothing has been saved yet.
var ErrNoProfile = errors.New("no saved profile")

// Profile is the stored answer record of a submitted session.
type Profile struct {
	SessionID string                `json:"session_id"`
	SavedAt   time.Time             `json:"saved_at"`
	Answers   questionnaire.Answers `json:"answers"`
}

// FileStore keeps a single profile in a JSON file. The last save wins.
type FileStore struct {
	path string
	now  func() time.Time
}

func NewFileStore(path string) (*FileStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("profile file path is required")
	}
	return &FileStore{path: path, now: time.Now}, nil
}

func (s *FileStore) Path() string { return s.path }

// Save replaces the stored profile. The file is written to a temporary file
// first and renamed, so readers never see a partial document.
func (s *FileStore) Save(sessionID string, answers questionnaire.Answers) (*Profile, error) {
	profile := &Profile{
		SessionID: sessionID,
		SavedAt:   s.now().UTC(),
		Answers:   answers.Clone(),
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating profile directory: %w", err)
	}

	file, err := os.CreateTemp(dir, ".profile-*.json")
	if err != nil {
		return nil, err
	}
	tmp := file.Name()
	defer os.Remove(tmp)

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(profile); err != nil {
		file.Close()
		return nil, fmt.Errorf("encoding profile: %w", err)
	}

	if err := file.Close(); err != nil {
		return nil, err
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return nil, fmt.Errorf("writing profile: %w", err)
	}

	return profile, nil
}

// Load returns the stored profile, or ErrNoProfile when the file is missing
// or empty.
func (s *FileStore) Load() (*Profile, error) {
	file, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return nil, ErrNoProfile
	}

	var profile Profile
	if err := json.NewDecoder(file).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decoding profile %q: %w", s.path, err)
	}

	if profile.Answers == nil {
		profile.Answers = questionnaire.Answers{}
	}

	return &profile, nil
}
