package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/gridedit/editor"
	"github.com/milk9111/gridedit/level"
)

var (
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	helpStyle   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

func (a *app) tagStyle(tag level.Tag) tcell.Style {
	c := tcell.GetColor(a.cfg.Colors[tag.String()])
	if c == tcell.ColorDefault {
		return tcell.StyleDefault.Bold(true)
	}
	return tcell.StyleDefault.Foreground(c).Bold(true)
}

func (a *app) draw() {
	a.screen.Clear()
	l := a.session.Level

	// level text first, then the entity styles over it
	for y, row := range level.Encode(l) {
		for x := 0; x < len(row); x++ {
			ch := rune(row[x])
			style := emptyStyle
			if tag, ok := level.TagForSymbol(row[x]); ok {
				style = a.tagStyle(tag)
			}
			if x == a.src.col && y == a.src.row {
				style = style.Reverse(true)
			}
			a.screen.SetContent(x, y, ch, nil, style)
		}
	}

	line := l.Rows + 1
	mark := ""
	if a.session.Dirty() {
		mark = " *"
	}
	a.drawText(0, line, statusStyle, fmt.Sprintf("%s%s", a.session.Name, mark))
	line++

	counts := make([]string, 0, len(level.Tags()))
	for _, tag := range level.Tags() {
		counts = append(counts, fmt.Sprintf("%s %d", tag, l.Count(tag)))
	}
	a.drawText(0, line, statusStyle, strings.Join(counts, "  "))
	line++
	a.drawText(0, line, statusStyle, a.session.Status())
	line += 2

	for _, h := range editor.Help(a.cfg) {
		a.drawText(0, line, helpStyle, h)
		line++
	}
	a.drawText(0, line, helpStyle, "Esc    quit")

	a.screen.Show()
}

func (a *app) drawText(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
