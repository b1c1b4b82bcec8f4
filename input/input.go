// Package input turns sampled trigger state into at most one editing command
// per tick.
package input

import "github.com/milk9111/gridedit/level"

// Trigger is one discrete editor input.
type Trigger int

const (
	TriggerPlacePlayer Trigger = iota
	TriggerPlaceEnemy
	TriggerPlaceGoal
	TriggerPlaceBlock
	TriggerDelete
	TriggerPlaceCollectible
	TriggerSave
	TriggerCopy
)

var triggerNames = map[Trigger]string{
	TriggerPlacePlayer:      "player",
	TriggerPlaceEnemy:       "enemy",
	TriggerPlaceGoal:        "goal",
	TriggerPlaceBlock:       "block",
	TriggerDelete:           "delete",
	TriggerPlaceCollectible: "collectible",
	TriggerSave:             "save",
	TriggerCopy:             "copy",
}

func (t Trigger) String() string {
	if n, ok := triggerNames[t]; ok {
		return n
	}
	return "unknown"
}

// Precedence is the fixed order triggers are sampled in. The first active
// trigger wins the tick.
var Precedence = []Trigger{
	TriggerPlacePlayer,
	TriggerPlaceEnemy,
	TriggerPlaceGoal,
	TriggerPlaceBlock,
	TriggerDelete,
	TriggerPlaceCollectible,
	TriggerSave,
	TriggerCopy,
}

// ParseTrigger looks a trigger up by its name.
func ParseTrigger(name string) (Trigger, bool) {
	for t, n := range triggerNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

var placeTags = map[Trigger]level.Tag{
	TriggerPlacePlayer:      level.TagPlayer,
	TriggerPlaceEnemy:       level.TagEnemy,
	TriggerPlaceGoal:        level.TagGoal,
	TriggerPlaceBlock:       level.TagBlock,
	TriggerPlaceCollectible: level.TagCollectible,
}

// Source is polled once per tick.
type Source interface {
	IsTriggerActive(t Trigger) bool
	PointerPosition() (x, y float64)
}

type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandPlace
	CommandRemove
	CommandSave
	CommandCopy
)

func (k CommandKind) String() string {
	switch k {
	case CommandPlace:
		return "place"
	case CommandRemove:
		return "remove"
	case CommandSave:
		return "save"
	case CommandCopy:
		return "copy"
	default:
		return "none"
	}
}

// Command is the single action chosen for a tick. Tag is set for
// CommandPlace; Cell for CommandPlace and CommandRemove.
type Command struct {
	Kind CommandKind
	Tag  level.Tag
	Cell level.Cell
}

// Translate samples src in Precedence order and returns the command for the
// first active trigger, or a CommandNone command.
func Translate(src Source, cellSize float64) Command {
	if src == nil {
		return Command{}
	}
	for _, t := range Precedence {
		if !src.IsTriggerActive(t) {
			continue
		}
		return commandFor(t, src, cellSize)
	}
	return Command{}
}

func commandFor(t Trigger, src Source, cellSize float64) Command {
	switch t {
	case TriggerSave:
		return Command{Kind: CommandSave}
	case TriggerCopy:
		return Command{Kind: CommandCopy}
	}
	px, py := src.PointerPosition()
	cell := level.ToCell(px, py, cellSize)
	if t == TriggerDelete {
		return Command{Kind: CommandRemove, Cell: cell}
	}
	return Command{Kind: CommandPlace, Tag: placeTags[t], Cell: cell}
}
