package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gridedit/config"
	"github.com/milk9111/gridedit/input"
)

// keySource reads the keyboard and cursor through ebiten. Placement and
// delete are active while held; save and copy fire once per key press.
type keySource struct {
	keys map[input.Trigger]ebiten.Key
}

func newKeySource(cfg *config.Config) (*keySource, error) {
	keys := make(map[input.Trigger]ebiten.Key, len(input.Precedence))
	for _, t := range input.Precedence {
		name := cfg.KeyFor(t)
		k, ok := keyByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown key %q for %s", name, t)
		}
		keys[t] = k
	}
	return &keySource{keys: keys}, nil
}

func (s *keySource) IsTriggerActive(t input.Trigger) bool {
	k, ok := s.keys[t]
	if !ok {
		return false
	}
	switch t {
	case input.TriggerSave, input.TriggerCopy:
		return inpututil.IsKeyJustPressed(k)
	default:
		return ebiten.IsKeyPressed(k)
	}
}

func (s *keySource) PointerPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

// keyByName matches ebiten key names ("P", "Space", "Digit1") ignoring case.
func keyByName(name string) (ebiten.Key, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false
	}
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return 0, false
}
