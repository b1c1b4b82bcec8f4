package store

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/milk9111/gridedit/level"
	"github.com/quasilyte/gdata/v2"
)

const gdataObject = "levels"

// GdataStore keeps levels in the per-user application data directory managed
// by gdata. Bundled levels are read from Fallback until first saved.
type GdataStore struct {
	manager  *gdata.Manager
	Fallback fs.FS
}

// OpenGdata opens (creating if needed) the data directory for appName.
func OpenGdata(appName string, fallback fs.FS) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("store: open gdata %s: %w", appName, err)
	}
	return &GdataStore{manager: m, Fallback: fallback}, nil
}

func (s *GdataStore) Save(name, text string) error {
	clean, err := CleanName(name)
	if err != nil {
		return err
	}
	if err := s.manager.SaveObjectProp(gdataObject, propKey(clean), []byte(text)); err != nil {
		return fmt.Errorf("store: save %s: %w", clean, err)
	}
	return nil
}

func (s *GdataStore) Load(name string) ([]string, error) {
	clean, err := CleanName(name)
	if err != nil {
		return nil, err
	}
	key := propKey(clean)
	if !s.manager.ObjectPropExists(gdataObject, key) {
		if s.Fallback != nil {
			if data, err := fs.ReadFile(s.Fallback, clean); err == nil {
				return level.SplitRows(string(data)), nil
			}
		}
		return nil, fmt.Errorf("store: load %s: %w", clean, fs.ErrNotExist)
	}
	data, err := s.manager.LoadObjectProp(gdataObject, key)
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", clean, err)
	}
	return level.SplitRows(string(data)), nil
}

// propKey flattens a cleaned level name into a single gdata property key.
func propKey(clean string) string {
	s := strings.TrimSuffix(clean, path.Ext(clean))
	return strings.ReplaceAll(s, "/", "_")
}
