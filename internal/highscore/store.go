// Package highscore persists the three-slot leaderboard in the device's
// 15-byte non-volatile layout: per slot, three ASCII initials followed by a
// big-endian 16-bit score. Reads validate and coerce every field because a
// write may be interrupted mid-slot; writes are one best-effort attempt.
package highscore

import (
	"sort"
)

const (
	// SlotCount is the fixed number of leaderboard entries.
	SlotCount = 3
	// EntrySize is the packed size of one slot in bytes.
	EntrySize = 5
	// StoreSize is the total packed size of the leaderboard.
	StoreSize = SlotCount * EntrySize

	// MaxScore is the largest representable score; stored values above it
	// are treated as corruption and read back as 0.
	MaxScore = 9999
)

// Entry is one leaderboard slot: three uppercase initials and a score in
// [0, MaxScore].
type Entry struct {
	Initials string
	Score    int
}

// Medium is the raw storage the leaderboard is packed into. Read returns the
// stored bytes (any length; short or missing data reads as corruption),
// Write replaces them.
type Medium interface {
	Read() ([]byte, error)
	Write([]byte) error
}

// Store loads and saves the leaderboard through a Medium.
type Store struct {
	medium Medium
}

// NewStore wraps a medium in a Store.
func NewStore(m Medium) *Store {
	return &Store{medium: m}
}

// Default returns the factory leaderboard: three "AAA" entries with score 0.
func Default() []Entry {
	entries := make([]Entry, SlotCount)
	for i := range entries {
		entries[i] = Entry{Initials: "AAA", Score: 0}
	}
	return entries
}

// Load reads the leaderboard. An unreadable medium yields the default
// entries; individual corrupt fields are coerced, never surfaced.
func (s *Store) Load() []Entry {
	raw, err := s.medium.Read()
	if err != nil {
		return Default()
	}
	return Decode(raw)
}

// Save writes the leaderboard verbatim. Best-effort: write failures are
// swallowed, there is no retry.
func (s *Store) Save(entries []Entry) {
	//nolint:errcheck // one best-effort attempt, failures never surface
	s.medium.Write(Encode(entries))
}

// Decode unpacks the 15-byte layout, coercing each field independently:
// initial bytes outside 'A'..'Z' become 'A', scores above MaxScore become 0.
// Missing bytes read as zero and coerce the same way.
func Decode(raw []byte) []Entry {
	buf := make([]byte, StoreSize)
	copy(buf, raw)

	entries := make([]Entry, SlotCount)
	for i := 0; i < SlotCount; i++ {
		off := i * EntrySize

		initials := make([]byte, 3)
		for j := 0; j < 3; j++ {
			c := buf[off+j]
			if c < 'A' || c > 'Z' {
				c = 'A'
			}
			initials[j] = c
		}

		score := int(buf[off+3])<<8 | int(buf[off+4])
		if score > MaxScore {
			score = 0
		}

		entries[i] = Entry{Initials: string(initials), Score: score}
	}
	return entries
}

// Encode packs up to SlotCount entries into the 15-byte layout. Short
// initials are padded with 'A'.
func Encode(entries []Entry) []byte {
	buf := make([]byte, StoreSize)
	for i := 0; i < SlotCount && i < len(entries); i++ {
		off := i * EntrySize
		e := entries[i]

		for j := 0; j < 3; j++ {
			if j < len(e.Initials) {
				buf[off+j] = e.Initials[j]
			} else {
				buf[off+j] = 'A'
			}
		}

		buf[off+3] = byte(e.Score >> 8)
		buf[off+4] = byte(e.Score)
	}
	return buf
}

// IsHighScore reports whether score qualifies for the board: it must be
// positive and strictly exceed at least one entry's score. Ties never
// qualify.
func IsHighScore(score int, entries []Entry) bool {
	if score <= 0 {
		return false
	}
	for _, e := range entries {
		if score > e.Score {
			return true
		}
	}
	return false
}

// Insert adds an entry, sorts descending by score (stable, so equal scores
// keep their prior relative order), and truncates to SlotCount.
func Insert(initials string, score int, entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, entries...)
	out = append(out, Entry{Initials: initials, Score: score})

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > SlotCount {
		out = out[:SlotCount]
	}
	return out
}
