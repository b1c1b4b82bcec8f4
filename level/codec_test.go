package level

import (
	"math/rand"
	"reflect"
	"testing"
)

func tagCells(l *Level) map[Cell]Tag {
	m := make(map[Cell]Tag)
	for _, e := range l.Entities() {
		c := l.CellOf(e)
		if l.InBounds(c) {
			m[c] = e.Tag
		}
	}
	return m
}

func TestDecodeScenario(t *testing.T) {
	rows := []string{"O.P", "..G"}
	l := New(3, 2, 40)
	Load(l, rows)

	want := map[Cell]Tag{
		{0, 0}: TagBlock,
		{2, 0}: TagPlayer,
		{2, 1}: TagGoal,
	}
	if got := tagCells(l); !reflect.DeepEqual(got, want) {
		t.Fatalf("decoded %v, want %v", got, want)
	}
	if got := Encode(l); !reflect.DeepEqual(got, rows) {
		t.Fatalf("re-encoded %q, want %q", got, rows)
	}
}

func TestDecodeTolerance(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want map[Cell]Tag
	}{
		{
			name: "unknown_symbols_are_empty",
			rows: []string{"x#O", " e?"},
			want: map[Cell]Tag{{2, 0}: TagBlock},
		},
		{
			name: "lowercase_not_recognised",
			rows: []string{"pgoec"},
			want: map[Cell]Tag{},
		},
		{
			name: "short_rows",
			rows: []string{"O", "", "..C"},
			want: map[Cell]Tag{{0, 0}: TagBlock, {2, 2}: TagCollectible},
		},
		{
			name: "duplicate_player_converges_to_last",
			rows: []string{"P..", "..P"},
			want: map[Cell]Tag{{2, 1}: TagPlayer},
		},
		{
			name: "duplicate_goal_converges_to_last",
			rows: []string{"G.G"},
			want: map[Cell]Tag{{2, 0}: TagGoal},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := New(3, 3, 40)
			Load(l, c.rows)
			if got := tagCells(l); !reflect.DeepEqual(got, c.want) {
				t.Fatalf("got %v, want %v", got, c.want)
			}
			checkInvariants(t, l)
		})
	}
}

func TestDecodeOrder(t *testing.T) {
	got := Decode([]string{"EO", "CG"})
	want := []Placement{
		{TagEnemy, Cell{0, 0}},
		{TagBlock, Cell{1, 0}},
		{TagCollectible, Cell{0, 1}},
		{TagGoal, Cell{1, 1}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Decode = %v, want %v", got, want)
	}
}

func TestEncodeFixedBounds(t *testing.T) {
	l := New(4, 3, 40)
	l.Place(TagEnemy, Cell{1, 1})
	l.Place(TagBlock, Cell{9, 9})  // outside bounds, not written
	l.Place(TagBlock, Cell{-1, 0}) // outside bounds, not written

	want := []string{"....", ".E..", "...."}
	if got := Encode(l); !reflect.DeepEqual(got, want) {
		t.Fatalf("Encode = %q, want %q", got, want)
	}
	if got := EncodeText(l); got != "....\n.E..\n....\n" {
		t.Fatalf("EncodeText = %q", got)
	}
	if got := Encode(New(0, 0, 40)); got != nil {
		t.Fatalf("empty bounds should encode to nil, got %q", got)
	}
}

func TestSplitRows(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"O.P\n..G\n", []string{"O.P", "..G"}},
		{"O.P\r\n..G", []string{"O.P", "..G"}},
		{"O\n\n", []string{"O", ""}},
	}
	for _, c := range cases {
		if got := SplitRows(c.in); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("SplitRows(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tags := Tags()
	for i := 0; i < 50; i++ {
		cols, rows := 1+rng.Intn(12), 1+rng.Intn(12)
		src := New(cols, rows, 40)
		for j := 0; j < cols*rows; j++ {
			c := Cell{rng.Intn(cols), rng.Intn(rows)}
			if rng.Intn(5) == 0 {
				src.RemoveAt(c)
				continue
			}
			src.Place(tags[rng.Intn(len(tags))], c)
		}

		dst := New(cols, rows, 40)
		Load(dst, SplitRows(EncodeText(src)))

		if got, want := tagCells(dst), tagCells(src); !reflect.DeepEqual(got, want) {
			t.Fatalf("round %d: decoded %v, want %v", i, got, want)
		}
		if got, want := Encode(dst), Encode(src); !reflect.DeepEqual(got, want) {
			t.Fatalf("round %d: re-encoded %q, want %q", i, got, want)
		}
	}
}
