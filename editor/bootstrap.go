package editor

import (
	"fmt"
	"log"

	"github.com/milk9111/gridedit/config"
	"github.com/milk9111/gridedit/level"
	"github.com/milk9111/gridedit/levels"
	"github.com/milk9111/gridedit/store"
)

// OpenStore returns the configured level store. Bundled levels are readable
// through it until a level of the same name is saved.
func OpenStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Storage {
	case config.StorageFile:
		return store.NewFileStore(cfg.LevelsDir, levels.LevelsFS), nil
	case config.StorageGdata:
		return store.OpenGdata(cfg.AppName, levels.LevelsFS)
	default:
		return nil, fmt.Errorf("%w: unknown storage %q", config.ErrInvalidConfig, cfg.Storage)
	}
}

// NewLevel returns an empty level with the configured bounds.
func NewLevel(cfg *config.Config, opts ...level.Option) *level.Level {
	return level.New(cfg.Cols, cfg.Rows, float64(cfg.CellSize), opts...)
}

// Start opens name in a new session. A level that cannot be loaded is logged
// and editing starts from an empty level that will be saved as name.
func Start(cfg *config.Config, st store.Store, name string, lopts []level.Option, sopts ...Option) *Session {
	s := NewSession(NewLevel(cfg, lopts...), name, st, sopts...)
	if err := s.Open(name); err != nil {
		log.Printf("[editor] %v; starting empty level", err)
	}
	return s
}
