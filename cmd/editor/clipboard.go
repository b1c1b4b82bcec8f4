package main

import (
	"log"

	"golang.design/x/clipboard"
)

// systemClipboard writes level text to the OS clipboard.
type systemClipboard struct{}

// newSystemClipboard returns nil when the platform clipboard is unavailable,
// leaving the copy command to report that.
func newSystemClipboard() *systemClipboard {
	if err := clipboard.Init(); err != nil {
		log.Printf("[editor] clipboard unavailable: %v", err)
		return nil
	}
	return &systemClipboard{}
}

func (systemClipboard) WriteText(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
