package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// EditorUI is the side panel: key help, the session status and buttons for
// the save and copy commands.
type EditorUI struct {
	*ebitenui.UI
	file   *widget.Label
	counts *widget.Label
	status *widget.Text
}

func BuildEditorUI(panelWidth int, help []string, onSave, onCopy func()) *EditorUI {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)
	labelColor := &widget.LabelColor{Idle: panelTextColor, Disabled: panelTextColor}

	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, 400),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchVertical:    true,
			}),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 12, Right: 12}),
			),
		),
	)

	file := widget.NewLabel(widget.LabelOpts.Text("", &fontFace, labelColor))
	counts := widget.NewLabel(widget.LabelOpts.Text("", &fontFace, labelColor))
	helpText := widget.NewText(widget.TextOpts.Text(strings.Join(help, "\n"), &fontFace, panelTextColor))
	status := widget.NewText(
		widget.TextOpts.Text("", &fontFace, panelTextColor),
		widget.TextOpts.MaxWidth(float64(panelWidth-24)),
	)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	for _, b := range []struct {
		label string
		fn    func()
	}{{"Save", onSave}, {"Copy", onCopy}} {
		fn := b.fn
		buttons.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(ui.PrimaryTheme.ButtonTheme.Image),
			widget.ButtonOpts.Text(b.label, &fontFace, ui.PrimaryTheme.ButtonTheme.TextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 32)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if fn != nil {
					fn()
				}
			}),
		))
	}

	panel.AddChild(file)
	panel.AddChild(counts)
	panel.AddChild(helpText)
	panel.AddChild(buttons)
	panel.AddChild(status)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	ui.Container = root

	return &EditorUI{UI: ui, file: file, counts: counts, status: status}
}

// SetState refreshes the panel labels.
func (u *EditorUI) SetState(name string, dirty bool, counts, status string) {
	mark := ""
	if dirty {
		mark = " *"
	}
	u.file.Label = fmt.Sprintf("File: %s%s", name, mark)
	u.counts.Label = counts
	u.status.Label = status
}
