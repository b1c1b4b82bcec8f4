package editor

import (
	"bytes"
	"errors"
	"io/fs"
	"reflect"
	"strings"
	"testing"

	"github.com/milk9111/gridedit/config"
	"github.com/milk9111/gridedit/input"
	"github.com/milk9111/gridedit/level"
	"github.com/milk9111/gridedit/store"
)

type memStore struct {
	files   map[string]string
	saveErr error
	saves   int
}

func newMemStore() *memStore {
	return &memStore{files: make(map[string]string)}
}

func (m *memStore) Save(name, text string) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	clean, err := store.CleanName(name)
	if err != nil {
		return err
	}
	m.files[clean] = text
	return nil
}

func (m *memStore) Load(name string) ([]string, error) {
	clean, err := store.CleanName(name)
	if err != nil {
		return nil, err
	}
	text, ok := m.files[clean]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return level.SplitRows(text), nil
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteText(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type fakeSource struct {
	active map[input.Trigger]bool
	x, y   float64
}

func (f fakeSource) IsTriggerActive(t input.Trigger) bool { return f.active[t] }

func (f fakeSource) PointerPosition() (float64, float64) { return f.x, f.y }

func newTestSession(st store.Store, opts ...Option) *Session {
	return NewSession(level.New(3, 2, 40), "level1.txt", st, opts...)
}

func TestSessionOpenAndSave(t *testing.T) {
	st := newMemStore()
	st.files["level1.txt"] = "O.P\n..G\n"
	s := newTestSession(st)

	if err := s.Open("level1.txt"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Dirty() {
		t.Fatalf("freshly opened level should be clean")
	}
	if s.Level.Len() != 3 {
		t.Fatalf("expected 3 entities, got %d", s.Level.Len())
	}

	if err := s.Apply(input.Command{Kind: input.CommandRemove, Cell: level.Cell{X: 0, Y: 0}}); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !s.Dirty() {
		t.Fatalf("expected unsaved edits")
	}
	if err := s.Apply(input.Command{Kind: input.CommandSave}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if s.Dirty() {
		t.Fatalf("save should clear dirty state")
	}
	if got := st.files["level1.txt"]; got != "..P\n..G\n" {
		t.Fatalf("saved text = %q", got)
	}
	if !strings.Contains(s.Status(), "saved") {
		t.Fatalf("status = %q", s.Status())
	}
}

func TestSessionOpenMissingStartsEmpty(t *testing.T) {
	s := newTestSession(newMemStore())
	s.Level.Place(level.TagBlock, level.Cell{X: 1, Y: 1})

	err := s.Open("level7")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if s.Level.Len() != 0 || s.Dirty() || s.Name != "level7" {
		t.Fatalf("expected clean empty level named level7, got %d entities dirty=%v name=%q", s.Level.Len(), s.Dirty(), s.Name)
	}
}

func TestSessionSaveFailureKeepsLevel(t *testing.T) {
	st := newMemStore()
	st.saveErr = errors.New("disk full")
	s := newTestSession(st)
	s.Level.Place(level.TagPlayer, level.Cell{X: 1, Y: 0})
	before := level.Encode(s.Level)

	err := s.Apply(input.Command{Kind: input.CommandSave})
	if err == nil || !errors.Is(err, st.saveErr) {
		t.Fatalf("expected wrapped save error, got %v", err)
	}
	if !s.Dirty() {
		t.Fatalf("failed save must leave edits unsaved")
	}
	if got := level.Encode(s.Level); !reflect.DeepEqual(got, before) {
		t.Fatalf("level changed by failed save")
	}
	if st.saves != 1 {
		t.Fatalf("expected a single attempt, got %d", st.saves)
	}
	if !strings.HasPrefix(s.Status(), "save failed") {
		t.Fatalf("status = %q", s.Status())
	}

	// still editable, and a later save can succeed
	st.saveErr = nil
	if err := s.Apply(input.Command{Kind: input.CommandPlace, Tag: level.TagGoal, Cell: level.Cell{X: 2, Y: 1}}); err != nil {
		t.Fatalf("place after failure: %v", err)
	}
	if err := s.Save(); err != nil {
		t.Fatalf("retry save: %v", err)
	}
}

func TestSessionTickIgnoresOutOfBounds(t *testing.T) {
	s := newTestSession(newMemStore())
	src := fakeSource{active: map[input.Trigger]bool{input.TriggerPlaceBlock: true}, x: 400, y: 10}
	cmd, err := s.Tick(src)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if cmd.Kind != input.CommandPlace || cmd.Cell != (level.Cell{X: 10, Y: 0}) {
		t.Fatalf("unexpected command %+v", cmd)
	}
	if s.Level.Len() != 0 {
		t.Fatalf("out-of-bounds placement should be ignored")
	}

	src = fakeSource{active: map[input.Trigger]bool{input.TriggerPlacePlayer: true, input.TriggerDelete: true}, x: 50, y: 50}
	if _, err := s.Tick(src); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if s.Level.Player() == nil {
		t.Fatalf("player trigger should win over delete")
	}
}

func TestSessionCopy(t *testing.T) {
	s := newTestSession(newMemStore())
	if err := s.Copy(); !errors.Is(err, ErrNoClipboard) {
		t.Fatalf("expected ErrNoClipboard, got %v", err)
	}

	clip := &fakeClipboard{}
	s = newTestSession(newMemStore(), WithClipboard(clip))
	s.Level.Place(level.TagEnemy, level.Cell{X: 0, Y: 1})
	if err := s.Apply(input.Command{Kind: input.CommandCopy}); err != nil {
		t.Fatalf("copy: %v", err)
	}
	if clip.text != "...\nE..\n" {
		t.Fatalf("clipboard = %q", clip.text)
	}
}

func TestSessionReload(t *testing.T) {
	st := newMemStore()
	st.files["level1.txt"] = "P..\n...\n"
	s := newTestSession(st)
	if err := s.Open("level1.txt"); err != nil {
		t.Fatalf("Open: %v", err)
	}

	if ok, _ := s.Reload("other.txt"); ok {
		t.Fatalf("other files must not reload")
	}
	if ok, _ := s.Reload("level1.txt"); ok {
		t.Fatalf("unchanged file must not reload")
	}

	st.files["level1.txt"] = "..P\nG..\n"
	ok, err := s.Reload("level1.txt")
	if err != nil || !ok {
		t.Fatalf("expected reload, got %v %v", ok, err)
	}
	if s.Level.Goal() == nil || s.Dirty() {
		t.Fatalf("reload should load the goal and leave the session clean")
	}

	s.Level.Place(level.TagBlock, level.Cell{X: 1, Y: 1})
	st.files["level1.txt"] = "...\n...\n"
	ok, err = s.Reload("level1.txt")
	if err != nil || ok {
		t.Fatalf("dirty session must not reload, got %v %v", ok, err)
	}
	if s.Level.Len() != 3 {
		t.Fatalf("dirty level was modified")
	}
}

func TestPromptLevel(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cases := []struct {
		in   string
		want string
	}{
		{"2\n", "level2.txt"},
		{"3", "level3.txt"},
		{"9\n", NewLevelName},
		{"\n", NewLevelName},
		{"", NewLevelName},
	}
	for _, c := range cases {
		var out bytes.Buffer
		if got := PromptLevel(strings.NewReader(c.in), &out, cfg); got != c.want {
			t.Fatalf("PromptLevel(%q) = %q, want %q", c.in, got, c.want)
		}
		if !strings.Contains(out.String(), "(1) level1.txt") || !strings.Contains(out.String(), "delete the object") {
			t.Fatalf("prompt text missing entries:\n%s", out.String())
		}
	}
}
