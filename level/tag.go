package level

import "strings"

// Tag identifies the kind of a placed entity.
type Tag int

const (
	TagNone Tag = iota
	TagPlayer
	TagGoal
	TagBlock
	TagEnemy
	TagCollectible
)

// EmptySymbol is written for cells with no entity.
const EmptySymbol = '.'

type kind struct {
	name      string
	symbol    byte
	singleton bool
}

// kinds is the single dispatch table for placement, text symbols and names.
var kinds = map[Tag]kind{
	TagPlayer:      {name: "player", symbol: 'P', singleton: true},
	TagGoal:        {name: "goal", symbol: 'G', singleton: true},
	TagBlock:       {name: "block", symbol: 'O'},
	TagEnemy:       {name: "enemy", symbol: 'E'},
	TagCollectible: {name: "collectible", symbol: 'C'},
}

var symbolTags = func() map[byte]Tag {
	m := make(map[byte]Tag, len(kinds))
	for t, k := range kinds {
		m[k.symbol] = t
	}
	return m
}()

// Tags lists every placeable tag in declaration order.
func Tags() []Tag {
	return []Tag{TagPlayer, TagGoal, TagBlock, TagEnemy, TagCollectible}
}

func (t Tag) Valid() bool {
	_, ok := kinds[t]
	return ok
}

// Singleton reports whether at most one entity of this tag may exist.
func (t Tag) Singleton() bool {
	return kinds[t].singleton
}

// Symbol returns the level-text character for t, or EmptySymbol for TagNone.
func (t Tag) Symbol() byte {
	if k, ok := kinds[t]; ok {
		return k.symbol
	}
	return EmptySymbol
}

func (t Tag) String() string {
	if k, ok := kinds[t]; ok {
		return k.name
	}
	return "none"
}

// TagForSymbol maps a level-text character to its tag. Matching is
// case-sensitive.
func TagForSymbol(c byte) (Tag, bool) {
	t, ok := symbolTags[c]
	return t, ok
}

// ParseTag accepts either a tag name ("player") or its symbol ("P").
func ParseTag(s string) (Tag, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		if t, ok := TagForSymbol(s[0]); ok {
			return t, true
		}
	}
	for t, k := range kinds {
		if strings.EqualFold(k.name, s) {
			return t, true
		}
	}
	return TagNone, false
}
