package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gridedit/config"
	"github.com/milk9111/gridedit/input"
)

func TestKeyByName(t *testing.T) {
	cases := []struct {
		name string
		want ebiten.Key
		ok   bool
	}{
		{"P", ebiten.KeyP, true},
		{"p", ebiten.KeyP, true},
		{"Space", ebiten.KeySpace, true},
		{" space ", ebiten.KeySpace, true},
		{"Digit1", ebiten.KeyDigit1, true},
		{"", 0, false},
		{"NotAKey", 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := keyByName(c.name)
			if ok != c.ok || (ok && got != c.want) {
				t.Fatalf("keyByName(%q) = %v, %v; want %v, %v", c.name, got, ok, c.want, c.ok)
			}
		})
	}
}

func TestNewKeySourceBindsEveryTrigger(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	src, err := newKeySource(cfg)
	if err != nil {
		t.Fatalf("newKeySource: %v", err)
	}
	if len(src.keys) != len(input.Precedence) {
		t.Fatalf("expected %d bindings, got %d", len(input.Precedence), len(src.keys))
	}
	if src.keys[input.TriggerDelete] != ebiten.KeySpace {
		t.Fatalf("delete should be bound to space")
	}

	cfg.Keys["save"] = "Nope"
	if _, err := newKeySource(cfg); err == nil {
		t.Fatalf("expected error for unknown key name")
	}
}
