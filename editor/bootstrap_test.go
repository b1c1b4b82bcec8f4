package editor

import (
	"errors"
	"testing"

	"github.com/milk9111/gridedit/config"
	"github.com/milk9111/gridedit/store"
)

func TestStartFromBundledLevels(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.LevelsDir = t.TempDir()

	st, err := OpenStore(cfg)
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	if _, ok := st.(*store.FileStore); !ok {
		t.Fatalf("expected a file store, got %T", st)
	}

	s := Start(cfg, st, "level2.txt", nil)
	if s.Level.Player() == nil || s.Level.Goal() == nil || s.Dirty() {
		t.Fatalf("bundled level should open clean with a player and goal")
	}

	s = Start(cfg, st, NewLevelName, nil)
	if s.Level.Len() != 0 || s.Level.Cols != cfg.Cols || s.Level.Rows != cfg.Rows {
		t.Fatalf("new level should be empty with configured bounds")
	}
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.Storage = "s3"
	if _, err := OpenStore(cfg); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
