package game

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const recordsFileName = "records.json"

// Record tracks finished games across sessions.
type Record struct {
	Wins      int `json:"wins"`
	BestTicks int `json:"best_ticks"` // fastest clear, 0 if none yet
	LastScore int `json:"last_score"`
}

// WithWin returns r updated with a game cleared in ticks with score.
func (r Record) WithWin(ticks, score int) Record {
	r.Wins++
	if r.BestTicks == 0 || ticks < r.BestTicks {
		r.BestTicks = ticks
	}
	r.LastScore = score
	return r
}

type RecordStore struct {
	path string
}

func NewRecordStore(dir string) *RecordStore {
	return &RecordStore{path: filepath.Join(dir, recordsFileName)}
}

func (s *RecordStore) Path() string { return s.path }

// Load returns the stored record, or a zero Record if none was saved yet.
func (s *RecordStore) Load() (Record, error) {
	var rec Record
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return rec, nil
	}
	if err != nil {
		return rec, errors.Wrap(err, "read records")
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, errors.Wrapf(err, "decode %s", s.path)
	}
	return rec, nil
}

// Save writes rec atomically through a temp file.
func (s *RecordStore) Save(rec Record) error {
	if rec.Wins < 0 || rec.BestTicks < 0 || rec.LastScore < 0 {
		return errors.New("record fields must be non-negative")
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode records")
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(err, "write records")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(err, "replace records")
	}
	return nil
}
