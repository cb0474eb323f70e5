// Package panels provides the side panels of the main window: the drawing
// tools panel and the saved-markup library panel.
package panels

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"photo-markup/internal/editor"
	"photo-markup/pkg/colorutil"
)

// toolOrder fixes the button layout.
var toolOrder = []editor.Tool{
	editor.ToolSelect,
	editor.ToolPen,
	editor.ToolHighlighter,
	editor.ToolText,
	editor.ToolArrow,
	editor.ToolLine,
	editor.ToolCircle,
	editor.ToolRectangle,
	editor.ToolMarker,
}

// ToolsPanel exposes tool selection, the color palette, and the width and
// opacity sliders for the active editing session.
type ToolsPanel struct {
	widget.BaseWidget

	editor    *editor.Editor
	onChanged func()

	toolButtons map[editor.Tool]*widget.Button
	widthLabel  *widget.Label
	colorSwatch *fynecanvas.Rectangle
	content     fyne.CanvasObject
}

// NewToolsPanel builds the panel for ed. onChanged fires after any setting
// changes so the window can repaint the canvas.
func NewToolsPanel(ed *editor.Editor, onChanged func()) *ToolsPanel {
	tp := &ToolsPanel{
		editor:      ed,
		onChanged:   onChanged,
		toolButtons: make(map[editor.Tool]*widget.Button),
	}
	tp.content = tp.build()
	tp.ExtendBaseWidget(tp)
	tp.refreshToolButtons()
	return tp
}

// CreateRenderer implements fyne.Widget.
func (tp *ToolsPanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(tp.content)
}

func (tp *ToolsPanel) build() fyne.CanvasObject {
	var toolButtons []fyne.CanvasObject
	for _, tool := range toolOrder {
		t := tool
		btn := widget.NewButton(t.String(), func() {
			tp.editor.SetTool(t)
			tp.refreshToolButtons()
			tp.changed()
		})
		tp.toolButtons[t] = btn
		toolButtons = append(toolButtons, btn)
	}

	var swatches []fyne.CanvasObject
	for _, entry := range colorutil.Palette {
		e := entry
		rect := fynecanvas.NewRectangle(e.Color)
		rect.SetMinSize(fyne.NewSize(24, 24))
		rect.StrokeColor = color.RGBA{64, 64, 64, 255}
		rect.StrokeWidth = 1
		btn := widget.NewButton("", func() {
			tp.editor.SetColor(e.Name)
			tp.colorSwatch.FillColor = e.Color
			tp.colorSwatch.Refresh()
			tp.changed()
		})
		swatches = append(swatches, container.NewStack(btn, container.NewPadded(rect)))
	}

	tp.colorSwatch = fynecanvas.NewRectangle(colorutil.Lookup(tp.editor.Style().Color))
	tp.colorSwatch.SetMinSize(fyne.NewSize(48, 24))

	tp.widthLabel = widget.NewLabel(tp.widthText())
	widthSlider := widget.NewSlider(editor.MinBrushWidth, editor.MaxBrushWidth)
	widthSlider.Step = 1
	widthSlider.Value = tp.editor.Style().Width
	widthSlider.OnChanged = func(v float64) {
		tp.editor.SetWidth(v)
		tp.widthLabel.SetText(tp.widthText())
		tp.changed()
	}

	opacitySlider := widget.NewSlider(0.1, 1)
	opacitySlider.Step = 0.05
	opacitySlider.Value = tp.editor.Style().Opacity
	opacitySlider.OnChanged = func(v float64) {
		tp.editor.SetOpacity(v)
		tp.changed()
	}

	return container.NewVBox(
		widget.NewLabelWithStyle("Tools", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(3, toolButtons...),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Color", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(5, swatches...),
		tp.colorSwatch,
		widget.NewSeparator(),
		tp.widthLabel,
		widthSlider,
		widget.NewLabel("Opacity (pen)"),
		opacitySlider,
	)
}

func (tp *ToolsPanel) widthText() string {
	return fmt.Sprintf("Width: %.0f", tp.editor.Style().Width)
}

// refreshToolButtons highlights the active tool.
func (tp *ToolsPanel) refreshToolButtons() {
	active := tp.editor.Tool()
	for tool, btn := range tp.toolButtons {
		if tool == active {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
}

func (tp *ToolsPanel) changed() {
	if tp.onChanged != nil {
		tp.onChanged()
	}
}
