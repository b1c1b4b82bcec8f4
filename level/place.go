package level

// Outcome describes what Place did. It carries no error semantics: a rejected
// placement is a normal result of exploratory editing.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeCreated
	OutcomeMoved
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeMoved:
		return "moved"
	case OutcomeRejected:
		return "rejected"
	default:
		return "ignored"
	}
}

// Place puts an entity of tag at c.
//
// An occupied cell rejects every placement, whatever the occupant's tag; the
// cell has to be cleared with RemoveAt first. Singleton tags move their
// existing entity (keeping its visual) instead of creating a second one.
// Bounds are not checked here.
func (l *Level) Place(tag Tag, c Cell) Outcome {
	if !tag.Valid() {
		return OutcomeIgnored
	}
	if _, ok := l.FindAt(c); ok {
		return OutcomeRejected
	}
	if tag.Singleton() {
		if e := l.singletons[tag]; e != nil {
			l.move(e, c)
			return OutcomeMoved
		}
	}
	l.create(tag, c)
	return OutcomeCreated
}

// RemoveAt destroys whatever occupies c and reports whether anything was
// removed. Removing a singleton frees its slot.
func (l *Level) RemoveAt(c Cell) bool {
	for i, e := range l.entities {
		if l.CellOf(e) == c {
			l.destroy(i)
			return true
		}
	}
	return false
}
