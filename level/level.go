package level

import "log"

// Entity is a placed object. Only singleton entities are ever moved; every
// other entity keeps the position it was created with until it is removed.
type Entity struct {
	ID  int
	Tag Tag
	// X and Y are the continuous (pixel) position of the entity's top-left
	// corner, always a whole multiple of the level's cell size.
	X float64
	Y float64
	// Visual is an opaque render resource. nil means the renderer should
	// draw a placeholder.
	Visual any
}

// VisualLoader resolves the render resource for a tag. Implementations own
// the returned handle; the level only stores it.
type VisualLoader interface {
	LoadVisual(tag Tag) (any, error)
}

// Level owns the entity registry for a fixed-size grid. It is not safe for
// concurrent use.
type Level struct {
	Cols     int
	Rows     int
	CellSize float64

	entities   []*Entity
	singletons map[Tag]*Entity
	visuals    VisualLoader
	nextID     int
	revision   uint64
}

type Option func(*Level)

// WithVisuals attaches a loader used to fetch a visual for every newly
// created entity.
func WithVisuals(v VisualLoader) Option {
	return func(l *Level) {
		l.visuals = v
	}
}

// New creates an empty level of cols x rows cells of cellSize pixels.
func New(cols, rows int, cellSize float64, opts ...Option) *Level {
	l := &Level{
		Cols:       cols,
		Rows:       rows,
		CellSize:   cellSize,
		singletons: make(map[Tag]*Entity, 2),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Entities returns the live entities in insertion order. The slice is a copy;
// the entities are not.
func (l *Level) Entities() []*Entity {
	out := make([]*Entity, len(l.entities))
	copy(out, l.entities)
	return out
}

func (l *Level) Len() int {
	return len(l.entities)
}

// Count returns how many live entities carry tag.
func (l *Level) Count(tag Tag) int {
	n := 0
	for _, e := range l.entities {
		if e.Tag == tag {
			n++
		}
	}
	return n
}

// Player returns the player singleton, or nil.
func (l *Level) Player() *Entity {
	return l.singletons[TagPlayer]
}

// Goal returns the goal singleton, or nil.
func (l *Level) Goal() *Entity {
	return l.singletons[TagGoal]
}

// Revision increases on every mutation. Callers compare revisions to detect
// unsaved edits.
func (l *Level) Revision() uint64 {
	return l.revision
}

// InBounds reports whether c lies within the level's declared bounds.
func (l *Level) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < l.Cols && c.Y < l.Rows
}

// CellOf returns the cell an entity occupies.
func (l *Level) CellOf(e *Entity) Cell {
	return ToCell(e.X, e.Y, l.CellSize)
}

// Origin returns the continuous position of a cell's top-left corner.
func (l *Level) Origin(c Cell) (float64, float64) {
	return float64(c.X) * l.CellSize, float64(c.Y) * l.CellSize
}

// FindAt returns the first entity, in insertion order, occupying c.
func (l *Level) FindAt(c Cell) (*Entity, bool) {
	for _, e := range l.entities {
		if l.CellOf(e) == c {
			return e, true
		}
	}
	return nil, false
}

// Reset removes every entity and clears the singleton slots.
func (l *Level) Reset() {
	l.entities = nil
	l.singletons = make(map[Tag]*Entity, 2)
	l.revision++
}

func (l *Level) create(tag Tag, c Cell) *Entity {
	l.nextID++
	x, y := l.Origin(c)
	e := &Entity{ID: l.nextID, Tag: tag, X: x, Y: y}
	if l.visuals != nil {
		v, err := l.visuals.LoadVisual(tag)
		if err != nil {
			log.Printf("[level] visual for %s unavailable, using placeholder: %v", tag, err)
		} else {
			e.Visual = v
		}
	}
	l.entities = append(l.entities, e)
	if tag.Singleton() {
		l.singletons[tag] = e
	}
	l.revision++
	return e
}

func (l *Level) move(e *Entity, c Cell) {
	e.X, e.Y = l.Origin(c)
	l.revision++
}

func (l *Level) destroy(idx int) *Entity {
	e := l.entities[idx]
	l.entities = append(l.entities[:idx], l.entities[idx+1:]...)
	if l.singletons[e.Tag] == e {
		delete(l.singletons, e.Tag)
	}
	l.revision++
	return e
}
