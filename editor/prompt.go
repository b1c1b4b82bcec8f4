package editor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/milk9111/gridedit/config"
	"github.com/milk9111/gridedit/input"
)

// NewLevelName is used when the start-up menu gets no valid choice.
const NewLevelName = "level.txt"

var triggerHelp = map[input.Trigger]string{
	input.TriggerPlacePlayer:      "place the player",
	input.TriggerPlaceEnemy:       "place an enemy",
	input.TriggerPlaceGoal:        "place the goal",
	input.TriggerPlaceBlock:       "place a platform block",
	input.TriggerDelete:           "delete the object under the cursor",
	input.TriggerPlaceCollectible: "place a collectible",
	input.TriggerSave:             "save your level",
	input.TriggerCopy:             "copy the level text to the clipboard",
}

// Help returns one line per binding, in precedence order.
func Help(cfg *config.Config) []string {
	lines := make([]string, 0, len(input.Precedence))
	for _, t := range input.Precedence {
		lines = append(lines, fmt.Sprintf("%-6s %s", cfg.KeyFor(t), triggerHelp[t]))
	}
	return lines
}

// PromptLevel prints the welcome text and asks which of names to edit.
// Anything other than a listed number picks NewLevelName.
func PromptLevel(r io.Reader, w io.Writer, cfg *config.Config) string {
	fmt.Fprintln(w, "Welcome to the level editor!")
	fmt.Fprintln(w, "Move your mouse cursor over a tile and press one of the following keys to make changes.")
	for _, line := range Help(cfg) {
		fmt.Fprintln(w, "  "+line)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Which level would you like to edit?")
	for i, name := range cfg.Levels {
		fmt.Fprintf(w, "(%d) %s\n", i+1, name)
	}
	fmt.Fprintf(w, "Choice (default new level %s): ", NewLevelName)

	line, _ := bufio.NewReader(r).ReadString('\n')
	line = strings.TrimSpace(line)
	if v, err := strconv.Atoi(line); err == nil && v >= 1 && v <= len(cfg.Levels) {
		return cfg.Levels[v-1]
	}
	return NewLevelName
}
