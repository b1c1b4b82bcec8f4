// Command levelgen builds a level from a tengo script and saves it through the
// configured level store.
//
//	levelgen -script maze.tengo -out level4
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/milk9111/gridedit/config"
	"github.com/milk9111/gridedit/editor"
	"github.com/milk9111/gridedit/level"
	"github.com/milk9111/gridedit/script"
)

func main() {
	configPath := flag.String("config", "", "YAML config merged over the built-in defaults")
	scriptPath := flag.String("script", "", "tengo script that places entities")
	in := flag.String("in", "", "Optional level to start from")
	out := flag.String("out", "", "Level name to save; prints to stdout when empty")
	timeout := flag.Duration("timeout", 10*time.Second, "Script time limit")
	flag.Parse()

	if *scriptPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	src, err := os.ReadFile(*scriptPath)
	if err != nil {
		log.Fatalf("Failed to read script: %v", err)
	}
	st, err := editor.OpenStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open level store: %v", err)
	}

	l := editor.NewLevel(cfg)
	if *in != "" {
		rows, err := st.Load(*in)
		if err != nil {
			log.Fatalf("Failed to load level %s: %v", *in, err)
		}
		level.Load(l, rows)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	if err := script.Run(ctx, src, l); err != nil {
		log.Fatalf("Script failed: %v", err)
	}
	if l.Player() == nil || l.Goal() == nil {
		log.Printf("[levelgen] warning: level has no player or no goal")
	}

	text := level.EncodeText(l)
	if *out == "" {
		fmt.Print(text)
		return
	}
	if err := st.Save(*out, text); err != nil {
		log.Fatalf("Failed to save level: %v", err)
	}
	log.Printf("Saved level: %s (%d entities)", *out, l.Len())
}
