// Package progress keeps the user's persisted counters and history. The
// whole record lives in one JSON blob that is rewritten after every
// mutation; a single local writer is assumed.
package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Microcopy styles selecting which phrase dictionary renders insight text.
const (
	StyleSoft = "soft"
	StyleGenZ = "genz"
)

// Entry is one saved journal reading.
type Entry struct {
	ID       string    `json:"id"`
	CardID   string    `json:"cardId"`
	Position string    `json:"position"`
	Date     time.Time `json:"date"`
	Note     string    `json:"note,omitempty"`
}

// Record is the persisted progress state. A missing blob on first launch is
// the zero-value record, not an error.
type Record struct {
	JournalEntries int      `json:"journalEntries"`
	StreakDays     int      `json:"streakDays"`
	DrawHistory    []string `json:"drawHistory"`
	JournalHistory []Entry  `json:"journalHistory"`
	Style          string   `json:"userMicrocopyStyle"`
}

// Store owns the record and its persistence. Mutation happens only through
// the named methods; each one rewrites the blob before returning.
type Store struct {
	path   string
	record Record
}

// DefaultPath returns the progress blob location under XDG_DATA_HOME.
func DefaultPath() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "arcana", "progress.json")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("arcana", "progress.json")
	}
	return filepath.Join(homeDir, ".local", "share", "arcana", "progress.json")
}

// Open loads the record at path, treating a missing file as the zero record.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading progress file: %v", err)
	}

	if err := json.Unmarshal(raw, &s.record); err != nil {
		return nil, fmt.Errorf("error parsing progress file: %v", err)
	}

	return s, nil
}

// Record returns a copy of the current state.
func (s *Store) Record() Record {
	rec := s.record
	rec.DrawHistory = append([]string(nil), s.record.DrawHistory...)
	rec.JournalHistory = append([]Entry(nil), s.record.JournalHistory...)
	return rec
}

// AddJournalEntry increments the journal-entry counter.
func (s *Store) AddJournalEntry() error {
	s.record.JournalEntries++
	return s.save()
}

// IncreaseStreak increments the streak-days counter.
func (s *Store) IncreaseStreak() error {
	s.record.StreakDays++
	return s.save()
}

// ResetStreak zeroes the streak-days counter.
func (s *Store) ResetStreak() error {
	s.record.StreakDays = 0
	return s.save()
}

// AddDraw appends a card id to the draw history.
func (s *Store) AddDraw(cardID string) error {
	s.record.DrawHistory = append(s.record.DrawHistory, cardID)
	return s.save()
}

// AppendJournalHistory appends a saved reading to the journal history.
func (s *Store) AppendJournalHistory(entry Entry) error {
	s.record.JournalHistory = append(s.record.JournalHistory, entry)
	return s.save()
}

// UpdateEntryNote replaces the note of the entry with the given id. An
// unknown id is a no-op, not an error.
func (s *Store) UpdateEntryNote(entryID, note string) error {
	for i := range s.record.JournalHistory {
		if s.record.JournalHistory[i].ID == entryID {
			s.record.JournalHistory[i].Note = note
			return s.save()
		}
	}
	return nil
}

// SetStyle selects the microcopy style used for insight rendering.
func (s *Store) SetStyle(style string) error {
	if style != StyleSoft && style != StyleGenZ {
		return fmt.Errorf("unknown microcopy style: %s", style)
	}
	s.record.Style = style
	return s.save()
}

// save serializes the full record and replaces the blob. The write goes
// through a temp file so a crash mid-write cannot truncate the record.
func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("error creating progress directory: %v", err)
	}

	raw, err := json.MarshalIndent(s.record, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding progress: %v", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("error writing progress file: %v", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("error replacing progress file: %v", err)
	}

	return nil
}
