package editor

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/milk9111/gridedit/level"
	"github.com/milk9111/gridedit/store"
)

func TestSessionFollowsRapidExternalSaves(t *testing.T) {
	dir := t.TempDir()
	st := store.NewFileStore(dir, nil)
	if err := st.Save("level1.txt", "...\n...\n"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s := NewSession(level.New(3, 2, 40), "level1.txt", st)
	if err := s.Open("level1.txt"); err != nil {
		t.Fatalf("Open: %v", err)
	}

	w, err := store.NewWatcher(dir)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	p := filepath.Join(dir, "level1.txt")
	done := make(chan error, 1)
	go func() {
		if err := os.WriteFile(p, []byte("..P\n...\n"), 0o644); err != nil {
			done <- err
			return
		}
		time.Sleep(40 * time.Millisecond)
		done <- os.WriteFile(p, []byte("..P\nG..\n"), 0o644)
	}()

	want := []string{"..P", "G.."}
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		s.DrainWatcher(w)
		if reflect.DeepEqual(level.Encode(s.Level), want) {
			break
		}
		time.Sleep(16 * time.Millisecond)
	}
	if err := <-done; err != nil {
		t.Fatalf("write: %v", err)
	}
	// let any late event arrive and be handled
	time.Sleep(200 * time.Millisecond)
	s.DrainWatcher(w)

	if got := level.Encode(s.Level); !reflect.DeepEqual(got, want) {
		t.Fatalf("session shows %q, disk holds %q", got, want)
	}
	if s.Dirty() {
		t.Fatalf("reloaded session should be clean")
	}
}
