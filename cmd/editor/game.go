package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/gridedit/assets"
	"github.com/milk9111/gridedit/config"
	"github.com/milk9111/gridedit/editor"
	"github.com/milk9111/gridedit/input"
	"github.com/milk9111/gridedit/level"
	"github.com/milk9111/gridedit/store"
)

const panelWidth = 260

// EditorGame is the ebiten game driving one editing session.
type EditorGame struct {
	cfg     *config.Config
	session *editor.Session
	source  input.Source
	watcher *store.Watcher
	ui      *EditorUI

	gridW, gridH int
	fallback     map[level.Tag]*ebiten.Image
}

func NewEditorGame(cfg *config.Config, s *editor.Session, src input.Source, w *store.Watcher) *EditorGame {
	g := &EditorGame{
		cfg:      cfg,
		session:  s,
		source:   src,
		watcher:  w,
		gridW:    s.Level.Cols * cfg.CellSize,
		gridH:    s.Level.Rows * cfg.CellSize,
		fallback: make(map[level.Tag]*ebiten.Image),
	}
	g.ui = BuildEditorUI(panelWidth, editor.Help(cfg), func() { g.feedback(g.session.Save()) }, g.copyLevel)
	return g
}

func (g *EditorGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	g.session.DrainWatcher(g.watcher)

	cmd, err := g.session.Tick(g.source)
	if cmd.Kind == input.CommandSave {
		g.feedback(err)
	}

	g.ui.SetState(g.session.Name, g.session.Dirty(), g.counts(), g.session.Status())
	g.ui.Update()
	return nil
}

// copyLevel runs the copy command from the panel button. Failures are
// reported through the session status.
func (g *EditorGame) copyLevel() {
	if err := g.session.Copy(); err != nil {
		log.Printf("[editor] %v", err)
	}
}

// feedback plays a high tone after a save and a low one after a failed save.
func (g *EditorGame) feedback(err error) {
	if err != nil {
		assets.PlayTone(220, 300*time.Millisecond)
		return
	}
	assets.PlayTone(880, 100*time.Millisecond)
}

func (g *EditorGame) counts() string {
	parts := make([]string, 0, len(level.Tags()))
	for _, tag := range level.Tags() {
		parts = append(parts, fmt.Sprintf("%s %d", tag, g.session.Level.Count(tag)))
	}
	return strings.Join(parts, "  ")
}

func (g *EditorGame) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	cell := float32(g.cfg.CellSize)

	for x := 0; x <= g.session.Level.Cols; x++ {
		fx := float32(x) * cell
		vector.StrokeLine(screen, fx, 0, fx, float32(g.gridH), 1, gridLineColor, false)
	}
	for y := 0; y <= g.session.Level.Rows; y++ {
		fy := float32(y) * cell
		vector.StrokeLine(screen, 0, fy, float32(g.gridW), fy, 1, gridLineColor, false)
	}

	for _, e := range g.session.Level.Entities() {
		g.drawEntity(screen, e)
	}

	px, py := g.source.PointerPosition()
	hover := level.ToCell(px, py, g.session.Level.CellSize)
	if g.session.Level.InBounds(hover) {
		vector.StrokeRect(screen, float32(hover.X)*cell, float32(hover.Y)*cell, cell, cell, 2, hoverColor, false)
	}

	g.ui.Draw(screen)
}

func (g *EditorGame) drawEntity(screen *ebiten.Image, e *level.Entity) {
	img, ok := e.Visual.(*ebiten.Image)
	if !ok || img == nil {
		img = g.placeholder(e.Tag)
	}
	size := float64(g.cfg.CellSize)
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	if b.Dx() > 0 && b.Dy() > 0 {
		op.GeoM.Scale(size/float64(b.Dx()), size/float64(b.Dy()))
	}
	op.GeoM.Translate(e.X, e.Y)
	screen.DrawImage(img, op)
}

func (g *EditorGame) placeholder(tag level.Tag) *ebiten.Image {
	if img, ok := g.fallback[tag]; ok {
		return img
	}
	img := assets.Placeholder(g.cfg.Color(tag), g.cfg.CellSize)
	g.fallback[tag] = img
	return img
}

func (g *EditorGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridW + panelWidth, g.gridH
}

var _ ebiten.Game = (*EditorGame)(nil)
