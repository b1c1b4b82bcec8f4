package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"log"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gridedit/level"
)

var ErrNoSprite = errors.New("assets: no sprite configured")

// SpriteFunc returns the assets-relative image path for tag, or "".
type SpriteFunc func(tag level.Tag) string

// Loader resolves per-tag sprites from an asset filesystem. It implements
// level.VisualLoader; visuals are *ebiten.Image values.
type Loader struct {
	fsys    fs.FS
	sprites SpriteFunc

	mu     sync.Mutex
	images map[string]*ebiten.Image
	failed map[string]error
}

func NewLoader(fsys fs.FS, sprites SpriteFunc) *Loader {
	return &Loader{
		fsys:    fsys,
		sprites: sprites,
		images:  make(map[string]*ebiten.Image),
		failed:  make(map[string]error),
	}
}

// LoadVisual returns the sprite for tag. Tags without a sprite and sprites
// that cannot be read return an error so the entity is drawn as a
// placeholder instead.
func (l *Loader) LoadVisual(tag level.Tag) (any, error) {
	p := ""
	if l.sprites != nil {
		p = l.sprites(tag)
	}
	if p == "" {
		return nil, fmt.Errorf("%w for %s", ErrNoSprite, tag)
	}
	img, err := l.LoadImage(p)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// LoadImage loads and caches an image by assets-relative path. Failures are
// cached too, so a missing file is only reported once.
func (l *Loader) LoadImage(p string) (*ebiten.Image, error) {
	key := cleanAssetPath(p)
	l.mu.Lock()
	defer l.mu.Unlock()
	if img, ok := l.images[key]; ok {
		return img, nil
	}
	if err, ok := l.failed[key]; ok {
		return nil, err
	}

	src, err := decode(l.fsys, key)
	if err != nil {
		l.failed[key] = err
		log.Printf("[assets] %v", err)
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	l.images[key] = img
	return img, nil
}

func decode(fsys fs.FS, key string) (image.Image, error) {
	if fsys == nil {
		return nil, fmt.Errorf("assets: load %s: no asset directory", key)
	}
	b, err := fs.ReadFile(fsys, key)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", key, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", key, err)
	}
	return img, nil
}

// Placeholder returns a size x size image filled with c.
func Placeholder(c color.Color, size int) *ebiten.Image {
	if size <= 0 {
		size = 1
	}
	img := ebiten.NewImage(size, size)
	img.Fill(c)
	return img
}

func cleanAssetPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if filepath.IsAbs(p) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return path.Base(s)
	}
	s = strings.TrimPrefix(s, "./")
	s = strings.TrimPrefix(s, "assets/")
	return path.Clean(s)
}
