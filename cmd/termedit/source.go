package main

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/gridedit/config"
	"github.com/milk9111/gridedit/input"
)

// termSource turns tcell events into trigger state. A terminal only reports
// key presses, so each press keeps its trigger active until the next tick.
type termSource struct {
	runes    map[rune]input.Trigger
	active   map[input.Trigger]bool
	cellSize float64
	col, row int
}

func newTermSource(cfg *config.Config) (*termSource, error) {
	s := &termSource{
		runes:    make(map[rune]input.Trigger, len(input.Precedence)),
		active:   make(map[input.Trigger]bool),
		cellSize: float64(cfg.CellSize),
		col:      -1,
		row:      -1,
	}
	for _, t := range input.Precedence {
		name := cfg.KeyFor(t)
		r, ok := runeForKey(name)
		if !ok {
			return nil, fmt.Errorf("key %q for %s has no terminal equivalent", name, t)
		}
		s.runes[r] = t
	}
	return s, nil
}

// runeForKey maps a key name to the lower-case rune a terminal reports.
func runeForKey(name string) (rune, bool) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "space") {
		return ' ', true
	}
	if strings.HasPrefix(strings.ToLower(name), "digit") {
		name = name[len("digit"):]
	}
	if utf8.RuneCountInString(name) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.ToLower(r), true
}

// Handle records one event.
func (s *termSource) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() != tcell.KeyRune {
			return
		}
		if t, ok := s.runes[unicode.ToLower(ev.Rune())]; ok {
			s.active[t] = true
		}
	case *tcell.EventMouse:
		s.col, s.row = ev.Position()
	}
}

// EndTick clears the presses consumed by the last tick.
func (s *termSource) EndTick() {
	clear(s.active)
}

func (s *termSource) IsTriggerActive(t input.Trigger) bool {
	return s.active[t]
}

// PointerPosition reports the centre of the terminal cell under the mouse,
// in level pixels. Before any mouse event it is off the grid.
func (s *termSource) PointerPosition() (float64, float64) {
	return (float64(s.col) + 0.5) * s.cellSize, (float64(s.row) + 0.5) * s.cellSize
}
