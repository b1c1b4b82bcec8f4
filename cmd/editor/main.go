package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gridedit/assets"
	"github.com/milk9111/gridedit/config"
	"github.com/milk9111/gridedit/editor"
	"github.com/milk9111/gridedit/level"
	"github.com/milk9111/gridedit/store"
)

func main() {
	configPath := flag.String("config", "", "YAML config merged over the built-in defaults")
	levelName := flag.String("level", "", "Level to edit (basename or filename, .txt optional); prompts when empty")
	assetsDir := flag.String("dir", "", "Directory containing sprite images (overrides assets_dir)")
	flag.Parse()

	log.Println("Editor starting...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *assetsDir != "" {
		cfg.AssetsDir = *assetsDir
	}

	name := *levelName
	if name == "" {
		name = editor.PromptLevel(os.Stdin, os.Stdout, cfg)
	}

	st, err := editor.OpenStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open level store: %v", err)
	}

	loader := assets.NewLoader(os.DirFS(cfg.AssetsDir), cfg.Sprite)
	var sopts []editor.Option
	if clip := newSystemClipboard(); clip != nil {
		sopts = append(sopts, editor.WithClipboard(clip))
	}
	session := editor.Start(cfg, st, name, []level.Option{level.WithVisuals(loader)}, sopts...)

	var watcher *store.Watcher
	if cfg.Storage == config.StorageFile {
		if watcher, err = store.NewWatcher(cfg.LevelsDir); err != nil {
			log.Printf("Level watcher disabled: %v", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	src, err := newKeySource(cfg)
	if err != nil {
		log.Fatalf("Invalid key bindings: %v", err)
	}

	game := NewEditorGame(cfg, session, src, watcher)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Level Editor - " + session.Name)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
