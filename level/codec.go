package level

import "strings"

// Placement is one decoded level-text symbol.
type Placement struct {
	Tag  Tag
	Cell Cell
}

// Decode scans rows top to bottom, left to right, and returns a placement for
// every recognised symbol. Anything else, including short rows, is treated as
// empty space. One character is one cell.
func Decode(rows []string) []Placement {
	var out []Placement
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if tag, ok := TagForSymbol(row[x]); ok {
				out = append(out, Placement{Tag: tag, Cell: Cell{X: x, Y: y}})
			}
		}
	}
	return out
}

// Replay feeds placements through Place in order, so decoded text obeys the
// same rules as interactive editing.
func Replay(l *Level, placements []Placement) {
	for _, p := range placements {
		l.Place(p.Tag, p.Cell)
	}
}

// Load decodes rows into l.
func Load(l *Level, rows []string) {
	Replay(l, Decode(rows))
}

// Encode renders l as exactly l.Rows rows of l.Cols symbols. Entities outside
// the declared bounds are not written.
func Encode(l *Level) []string {
	if l.Cols <= 0 || l.Rows <= 0 {
		return nil
	}
	grid := make([][]byte, l.Rows)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(string(rune(EmptySymbol)), l.Cols))
	}
	for _, e := range l.entities {
		c := l.CellOf(e)
		if !l.InBounds(c) {
			continue
		}
		// first entity in insertion order wins, matching FindAt
		if grid[c.Y][c.X] == EmptySymbol {
			grid[c.Y][c.X] = e.Tag.Symbol()
		}
	}
	rows := make([]string, l.Rows)
	for y := range grid {
		rows[y] = string(grid[y])
	}
	return rows
}

// EncodeText joins Encode's rows with newlines, ending with a newline.
func EncodeText(l *Level) string {
	rows := Encode(l)
	if len(rows) == 0 {
		return ""
	}
	return strings.Join(rows, "\n") + "\n"
}

// SplitRows splits level text into rows, dropping carriage returns and a
// single trailing empty line.
func SplitRows(text string) []string {
	if text == "" {
		return nil
	}
	rows := strings.Split(text, "\n")
	if rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	for i, r := range rows {
		rows[i] = strings.TrimSuffix(r, "\r")
	}
	return rows
}
