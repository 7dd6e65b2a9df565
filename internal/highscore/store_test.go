package highscore

import (
	"errors"
	"path/filepath"
	"testing"
)

// memMedium is an in-memory Medium for tests.
type memMedium struct {
	data []byte
	err  error
}

func (m *memMedium) Read() ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.data, nil
}

func (m *memMedium) Write(data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.data = append([]byte(nil), data...)
	return nil
}

func TestRoundTrip(t *testing.T) {
	entries := []Entry{
		{Initials: "ZOE", Score: 9999},
		{Initials: "BOB", Score: 120},
		{Initials: "AAA", Score: 0},
	}

	got := Decode(Encode(entries))
	for i, e := range entries {
		if got[i] != e {
			t.Errorf("slot %d: got %+v, expected %+v", i, got[i], e)
		}
	}
}

func TestDecodeCorruption(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]byte)
		check  func(t *testing.T, entries []Entry)
	}{
		{
			name:   "score 65535 reads as 0",
			mutate: func(b []byte) { b[3] = 0xFF; b[4] = 0xFF },
			check: func(t *testing.T, entries []Entry) {
				if entries[0].Score != 0 {
					t.Errorf("score = %d, expected 0", entries[0].Score)
				}
			},
		},
		{
			name:   "score 10000 reads as 0",
			mutate: func(b []byte) { b[3] = 0x27; b[4] = 0x10 },
			check: func(t *testing.T, entries []Entry) {
				if entries[0].Score != 0 {
					t.Errorf("score = %d, expected 0", entries[0].Score)
				}
			},
		},
		{
			name:   "score 9999 survives",
			mutate: func(b []byte) { b[3] = 0x27; b[4] = 0x0F },
			check: func(t *testing.T, entries []Entry) {
				if entries[0].Score != 9999 {
					t.Errorf("score = %d, expected 9999", entries[0].Score)
				}
			},
		},
		{
			name:   "zero initial byte reads as A",
			mutate: func(b []byte) { b[0] = 0 },
			check: func(t *testing.T, entries []Entry) {
				if entries[0].Initials != "ABC" {
					t.Errorf("initials = %q, expected ABC", entries[0].Initials)
				}
			},
		},
		{
			name:   "lowercase initial reads as A",
			mutate: func(b []byte) { b[1] = 'b' },
			check: func(t *testing.T, entries []Entry) {
				if entries[0].Initials != "XAC" {
					t.Errorf("initials = %q, expected XAC", entries[0].Initials)
				}
			},
		},
		{
			name:   "corruption in one slot leaves the others intact",
			mutate: func(b []byte) { b[5] = 0x01; b[8] = 0xFF; b[9] = 0xFF },
			check: func(t *testing.T, entries []Entry) {
				if entries[1].Initials != "AEF" || entries[1].Score != 0 {
					t.Errorf("slot 1 = %+v", entries[1])
				}
				if entries[0].Initials != "XBC" || entries[0].Score != 42 {
					t.Errorf("slot 0 = %+v, expected untouched", entries[0])
				}
				if entries[2].Initials != "GHI" || entries[2].Score != 1 {
					t.Errorf("slot 2 = %+v, expected untouched", entries[2])
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := Encode([]Entry{
				{Initials: "XBC", Score: 42},
				{Initials: "DEF", Score: 10},
				{Initials: "GHI", Score: 1},
			})
			tc.mutate(raw)
			tc.check(t, Decode(raw))
		})
	}
}

func TestDecodeShortData(t *testing.T) {
	entries := Decode([]byte{'Q'})
	if len(entries) != SlotCount {
		t.Fatalf("got %d entries, expected %d", len(entries), SlotCount)
	}
	if entries[0].Initials != "QAA" || entries[0].Score != 0 {
		t.Errorf("first entry = %+v", entries[0])
	}
	for _, e := range entries[1:] {
		if e.Initials != "AAA" || e.Score != 0 {
			t.Errorf("entry = %+v, expected default", e)
		}
	}
}

func TestLoadFallback(t *testing.T) {
	store := NewStore(&memMedium{err: errors.New("nvm unavailable")})

	entries := store.Load()
	if len(entries) != SlotCount {
		t.Fatalf("got %d entries, expected %d", len(entries), SlotCount)
	}
	for _, e := range entries {
		if e.Initials != "AAA" || e.Score != 0 {
			t.Errorf("entry = %+v, expected default", e)
		}
	}
}

func TestSaveSwallowsErrors(t *testing.T) {
	store := NewStore(&memMedium{err: errors.New("write failed")})
	// Must not panic or surface anything.
	store.Save(Default())
}

func TestSaveLoadThroughMedium(t *testing.T) {
	m := &memMedium{}
	store := NewStore(m)

	entries := []Entry{
		{Initials: "TOP", Score: 500},
		{Initials: "MID", Score: 250},
		{Initials: "LOW", Score: 1},
	}
	store.Save(entries)

	got := store.Load()
	for i, e := range entries {
		if got[i] != e {
			t.Errorf("slot %d: got %+v, expected %+v", i, got[i], e)
		}
	}
	if len(m.data) != StoreSize {
		t.Errorf("stored %d bytes, expected %d", len(m.data), StoreSize)
	}
}

func TestIsHighScore(t *testing.T) {
	board := []Entry{
		{Initials: "AAA", Score: 300},
		{Initials: "BBB", Score: 200},
		{Initials: "CCC", Score: 100},
	}

	tests := []struct {
		score    int
		expected bool
	}{
		{0, false},
		{-5, false},
		{100, false}, // tie with the lowest does not qualify
		{101, true},
		{200, true}, // beats 100
		{301, true},
		{9999, true},
	}

	for _, tc := range tests {
		if got := IsHighScore(tc.score, board); got != tc.expected {
			t.Errorf("IsHighScore(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	// A fresh board with zero scores: any positive score qualifies.
	if !IsHighScore(1, Default()) {
		t.Error("score 1 should beat a default board")
	}
}

func TestInsert(t *testing.T) {
	board := []Entry{
		{Initials: "AAA", Score: 300},
		{Initials: "BBB", Score: 200},
		{Initials: "CCC", Score: 100},
	}

	got := Insert("NEW", 250, board)
	if len(got) != SlotCount {
		t.Fatalf("got %d entries, expected %d", len(got), SlotCount)
	}
	want := []Entry{
		{Initials: "AAA", Score: 300},
		{Initials: "NEW", Score: 250},
		{Initials: "BBB", Score: 200},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d: got %+v, expected %+v", i, got[i], want[i])
		}
	}
}

func TestInsertStableOnTies(t *testing.T) {
	board := []Entry{
		{Initials: "OLD", Score: 200},
		{Initials: "MID", Score: 100},
		{Initials: "LOW", Score: 50},
	}

	got := Insert("TIE", 200, board)
	// Equal scores keep prior relative order: OLD was on the board first.
	if got[0].Initials != "OLD" || got[1].Initials != "TIE" {
		t.Errorf("tie ordering wrong: %+v", got)
	}
}

func TestInsertAlwaysThreeSorted(t *testing.T) {
	boards := [][]Entry{
		Default(),
		{{Initials: "XYZ", Score: 9999}, {Initials: "AAA", Score: 0}, {Initials: "AAA", Score: 0}},
	}

	for _, board := range boards {
		for _, score := range []int{0, 1, 500, 9999} {
			got := Insert("TST", score, board)
			if len(got) != SlotCount {
				t.Fatalf("Insert yielded %d entries", len(got))
			}
			for i := 1; i < len(got); i++ {
				if got[i-1].Score < got[i].Score {
					t.Errorf("not sorted descending: %+v", got)
				}
			}
		}
	}
}

func TestFileMedium(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "nvm.bin")

	m, err := NewFileMedium(path)
	if err != nil {
		t.Fatalf("NewFileMedium failed: %v", err)
	}

	// Missing file reads as an error, which Load turns into defaults.
	store := NewStore(m)
	entries := store.Load()
	if entries[0].Initials != "AAA" {
		t.Errorf("missing file should load defaults, got %+v", entries[0])
	}

	store.Save([]Entry{{Initials: "ONE", Score: 11}, {Initials: "TWO", Score: 7}, {Initials: "SIX", Score: 3}})

	got := store.Load()
	if got[0].Initials != "ONE" || got[0].Score != 11 {
		t.Errorf("round trip through file failed: %+v", got[0])
	}
}
