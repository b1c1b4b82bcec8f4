// Command termedit edits a level in the terminal. Move the mouse over a cell
// and press the configured keys; Esc or Ctrl-C quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/gridedit/config"
	"github.com/milk9111/gridedit/editor"
	"github.com/milk9111/gridedit/input"
	"github.com/milk9111/gridedit/store"
)

func main() {
	configPath := flag.String("config", "", "YAML config merged over the built-in defaults")
	levelName := flag.String("level", "", "Level to edit; prompts when empty")
	logPath := flag.String("log", "termedit.log", "File receiving log output while the screen is active")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	name := *levelName
	if name == "" {
		name = editor.PromptLevel(os.Stdin, os.Stdout, cfg)
	}

	st, err := editor.OpenStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open level store: %v", err)
	}
	session := editor.Start(cfg, st, name, nil)

	src, err := newTermSource(cfg)
	if err != nil {
		log.Fatalf("Invalid key bindings: %v", err)
	}

	var watcher *store.Watcher
	if cfg.Storage == config.StorageFile {
		if watcher, err = store.NewWatcher(cfg.LevelsDir); err != nil {
			log.Printf("[termedit] level watcher disabled: %v", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	app, err := newApp(cfg, session, src, watcher)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()
	app.run()
}

type app struct {
	cfg     *config.Config
	screen  tcell.Screen
	session *editor.Session
	src     *termSource
	watcher *store.Watcher
	sounds  *sounds
}

func newApp(cfg *config.Config, s *editor.Session, src *termSource, w *store.Watcher) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	return &app{
		cfg:     cfg,
		screen:  screen,
		session: s,
		src:     src,
		watcher: w,
		sounds:  newSounds(),
	}, nil
}

func (a *app) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.tick()
			a.draw()
		}
	}
}

func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	a.src.Handle(ev)
	return true
}

func (a *app) tick() {
	a.session.DrainWatcher(a.watcher)
	cmd, err := a.session.Tick(a.src)
	a.src.EndTick()
	if cmd.Kind == input.CommandSave {
		a.sounds.saved(err)
	}
}

func (a *app) cleanup() {
	a.sounds.Close()
	a.screen.Fini()
}
