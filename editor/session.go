package editor

import (
	"errors"
	"fmt"
	"log"
	"path"
	"slices"

	"github.com/milk9111/gridedit/input"
	"github.com/milk9111/gridedit/level"
	"github.com/milk9111/gridedit/store"
)

var ErrNoClipboard = errors.New("editor: clipboard unavailable")

// Clipboard receives the encoded level on a copy command.
type Clipboard interface {
	WriteText(text string) error
}

// Session is one editing session over a single level. It applies at most one
// command per tick and is driven from the front-end's update loop.
type Session struct {
	Level *level.Level
	Name  string

	store    store.Store
	clip     Clipboard
	savedRev uint64
	status   string
}

type Option func(*Session)

func WithClipboard(c Clipboard) Option {
	return func(s *Session) {
		s.clip = c
	}
}

// NewSession edits l, saving it as name through st.
func NewSession(l *level.Level, name string, st store.Store, opts ...Option) *Session {
	s := &Session{Level: l, Name: name, store: st}
	for _, opt := range opts {
		opt(s)
	}
	s.savedRev = l.Revision()
	return s
}

// Open replaces the level contents with the stored level name. On failure the
// level is left empty and the session still edits (and will save as) name.
func (s *Session) Open(name string) error {
	s.Name = name
	s.Level.Reset()
	defer func() { s.savedRev = s.Level.Revision() }()

	rows, err := s.store.Load(name)
	if err != nil {
		s.status = fmt.Sprintf("new level %s", name)
		return fmt.Errorf("editor: open %s: %w", name, err)
	}
	level.Load(s.Level, rows)
	s.status = fmt.Sprintf("opened %s", name)
	return nil
}

// Tick samples src and applies the resulting command.
func (s *Session) Tick(src input.Source) (input.Command, error) {
	cmd := input.Translate(src, s.Level.CellSize)
	return cmd, s.Apply(cmd)
}

// Apply executes one command. Placement and removal outside the level bounds
// are ignored, as are rejected placements and removals on empty cells. Only
// save and copy can fail; the level is never changed by a failure.
func (s *Session) Apply(cmd input.Command) error {
	switch cmd.Kind {
	case input.CommandPlace:
		if s.Level.InBounds(cmd.Cell) {
			s.Level.Place(cmd.Tag, cmd.Cell)
		}
	case input.CommandRemove:
		if s.Level.InBounds(cmd.Cell) {
			s.Level.RemoveAt(cmd.Cell)
		}
	case input.CommandSave:
		return s.Save()
	case input.CommandCopy:
		return s.Copy()
	}
	return nil
}

// Save writes the encoded level. There is no retry; the caller may issue
// another save.
func (s *Session) Save() error {
	text := level.EncodeText(s.Level)
	if err := s.store.Save(s.Name, text); err != nil {
		s.status = fmt.Sprintf("save failed: %v", err)
		log.Printf("[editor] save %s failed: %v", s.Name, err)
		return fmt.Errorf("editor: save %s: %w", s.Name, err)
	}
	s.savedRev = s.Level.Revision()
	s.status = fmt.Sprintf("saved %s", s.Name)
	log.Printf("[editor] saved level: %s", s.Name)
	return nil
}

func (s *Session) Copy() error {
	if s.clip == nil {
		s.status = "copy failed: no clipboard"
		return ErrNoClipboard
	}
	if err := s.clip.WriteText(level.EncodeText(s.Level)); err != nil {
		s.status = fmt.Sprintf("copy failed: %v", err)
		return fmt.Errorf("editor: copy: %w", err)
	}
	s.status = "copied level text"
	return nil
}

// Dirty reports unsaved edits.
func (s *Session) Dirty() bool {
	return s.Level.Revision() != s.savedRev
}

// Status is the last user-facing message (open, save or reload result).
func (s *Session) Status() string {
	return s.status
}

// Reload re-reads the level after it changed on disk. It does nothing for
// other levels or when the stored text already matches the level, and
// refuses when there are unsaved edits.
func (s *Session) Reload(name string) (bool, error) {
	want, err := store.CleanName(s.Name)
	if err != nil {
		return false, err
	}
	if got, err := store.CleanName(name); err != nil || path.Base(got) != path.Base(want) {
		return false, nil
	}
	rows, err := s.store.Load(s.Name)
	if err != nil {
		return false, fmt.Errorf("editor: reload %s: %w", s.Name, err)
	}
	if slices.Equal(rows, level.Encode(s.Level)) {
		return false, nil
	}
	if s.Dirty() {
		s.status = fmt.Sprintf("%s changed on disk; save to overwrite", s.Name)
		log.Printf("[editor] %s changed on disk with unsaved edits, not reloading", s.Name)
		return false, nil
	}
	s.Level.Reset()
	level.Load(s.Level, rows)
	s.savedRev = s.Level.Revision()
	s.status = fmt.Sprintf("reloaded %s", s.Name)
	log.Printf("[editor] reloaded %s from disk", s.Name)
	return true, nil
}

// DrainWatcher handles every pending file event without blocking.
func (s *Session) DrainWatcher(w *store.Watcher) {
	if w == nil {
		return
	}
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			if _, err := s.Reload(name); err != nil {
				log.Printf("[editor] %v", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("[editor] watch error: %v", err)
		default:
			return
		}
	}
}
