// Package ranges holds the application state: the typed input, its binary
// expansion, and the committed bit ranges with their derived hex labels.
//
// All mutation goes through Store commands. Views read State snapshots.
package ranges

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/jask/bitbuddy/internal/bits"
)

var (
	ErrNoBinary      = errors.New("no binary value to select from")
	ErrOverlap       = errors.New("range overlaps an existing range")
	ErrOutOfBounds   = errors.New("position out of bounds")
	ErrNotNormalized = errors.New("range start is below range end")
)

// OverlapPolicy decides when AddRange rejects a new range.
type OverlapPolicy int

const (
	// OverlapEndpoints rejects only when the start or end position is
	// already claimed. A range may still cover claimed interior positions.
	OverlapEndpoints OverlapPolicy = iota
	// OverlapSpan rejects any range that shares a position with an
	// existing one.
	OverlapSpan
)

func (p OverlapPolicy) String() string {
	switch p {
	case OverlapSpan:
		return "span"
	default:
		return "endpoints"
	}
}

// ParseOverlapPolicy accepts "endpoints" or "span".
func ParseOverlapPolicy(s string) (OverlapPolicy, error) {
	switch s {
	case "", "endpoints":
		return OverlapEndpoints, nil
	case "span":
		return OverlapSpan, nil
	}
	return OverlapEndpoints, fmt.Errorf("unknown overlap policy %q", s)
}

// Range is a committed span of bits. Display positions count from the
// right of the grid; true positions index into the binary expansion.
type Range struct {
	ID           string
	DisplayStart int
	DisplayEnd   int
	TrueStart    int
	TrueEnd      int
	Hex          string
	Color        string
}

// Label renders the display span as "start-end".
func (r Range) Label() string {
	return fmt.Sprintf("%d-%d", r.DisplayStart, r.DisplayEnd)
}

// State is a snapshot of the store. It shares nothing with the store.
type State struct {
	Input    string
	Binary   string
	Ranges   []Range
	Occupied Occupied
}

type Store struct {
	input    string
	binary   string
	ranges   []Range
	occupied Occupied

	policy  OverlapPolicy
	picker  ColorPicker
	palette []string
	newID   func() string
	log     *slog.Logger
}

type Option func(*Store)

func WithOverlapPolicy(p OverlapPolicy) Option {
	return func(s *Store) { s.policy = p }
}

func WithColorPicker(p ColorPicker) Option {
	return func(s *Store) { s.picker = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithIDs replaces the UUID generator used for range IDs.
func WithIDs(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		picker:  NewRandomPicker(0),
		palette: Palette[:],
		newID:   uuid.NewString,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Policy reports the overlap policy in effect.
func (s *Store) Policy() OverlapPolicy { return s.policy }

func (s *Store) State() State {
	return State{
		Input:    s.input,
		Binary:   s.binary,
		Ranges:   slices.Clone(s.ranges),
		Occupied: s.occupied,
	}
}

// SetInput replaces the raw input. The binary expansion is left alone.
func (s *Store) SetInput(value string) {
	s.input = value
}

// SetBinary replaces the binary expansion. Committed ranges keep the hex
// they were created with.
func (s *Store) SetBinary(value string) {
	s.binary = value
}

// AddRange commits the display span [end,start]. The caller passes the
// larger position as start. On any error the store is unchanged.
func (s *Store) AddRange(start, end int) (Range, error) {
	if start < 0 || start >= bits.Width || end < 0 || end >= bits.Width {
		return Range{}, fmt.Errorf("%w: %d-%d", ErrOutOfBounds, start, end)
	}
	if start < end {
		return Range{}, fmt.Errorf("%w: %d-%d", ErrNotNormalized, start, end)
	}
	if s.binary == "" {
		return Range{}, ErrNoBinary
	}
	if s.overlaps(start, end) {
		s.log.Debug("range rejected", "start", start, "end", end, "policy", s.policy.String())
		return Range{}, fmt.Errorf("%w: %d-%d", ErrOverlap, start, end)
	}

	trueStart := bits.InvertPosition(start)
	trueEnd := bits.InvertPosition(end)
	hex, err := bits.BinaryToHex(s.binary, trueStart, trueEnd)
	if err != nil {
		return Range{}, fmt.Errorf("derive hex: %w", err)
	}

	r := Range{
		ID:           s.newID(),
		DisplayStart: start,
		DisplayEnd:   end,
		TrueStart:    trueStart,
		TrueEnd:      trueEnd,
		Hex:          hex,
		Color:        s.picker.Pick(s.palette),
	}
	s.ranges = append(s.ranges, r)
	s.occupied = s.occupied.with(start, end)
	s.log.Debug("range added", "span", r.Label(), "hex", r.Hex, "color", r.Color)
	return r, nil
}

func (s *Store) overlaps(start, end int) bool {
	if s.policy == OverlapSpan {
		return s.occupied.Intersects(start, end)
	}
	return s.occupied.Has(start) || s.occupied.Has(end)
}

// ResetRanges drops every committed range.
func (s *Store) ResetRanges() {
	s.ranges = nil
	s.occupied = 0
	s.log.Debug("ranges reset")
}

// UndoLastRange removes the most recently committed range and releases its
// positions. It reports false when there is nothing to undo.
func (s *Store) UndoLastRange() (Range, bool) {
	if len(s.ranges) == 0 {
		return Range{}, false
	}
	last := s.ranges[len(s.ranges)-1]
	s.ranges = s.ranges[:len(s.ranges)-1]
	s.occupied = s.occupied.without(last.DisplayStart, last.DisplayEnd)
	// Endpoint-only overlap checks can let spans share interior positions;
	// give back whatever the survivors still cover.
	for _, r := range s.ranges {
		s.occupied = s.occupied.with(r.DisplayStart, r.DisplayEnd)
	}
	s.log.Debug("range undone", "span", last.Label())
	return last, true
}
