package panels

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"photo-markup/internal/store"
)

// LibraryPanel lists every saved markup and offers open, export, and delete
// actions for the selected one.
type LibraryPanel struct {
	widget.BaseWidget

	store *store.Store
	items []store.PhotoAnnotation
	list  *widget.List

	selected int

	OnOpen   func(store.PhotoAnnotation)
	OnExport func(store.PhotoAnnotation)
	OnDelete func(store.PhotoAnnotation)

	content fyne.CanvasObject
}

// NewLibraryPanel builds the panel over s. Call Reload after construction
// and after every save or delete.
func NewLibraryPanel(s *store.Store) *LibraryPanel {
	lp := &LibraryPanel{store: s, selected: -1}

	lp.list = widget.NewList(
		func() int { return len(lp.items) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(lp.itemText(lp.items[i]))
		},
	)
	lp.list.OnSelected = func(i widget.ListItemID) { lp.selected = i }
	lp.list.OnUnselected = func(widget.ListItemID) { lp.selected = -1 }

	openBtn := widget.NewButton("Open", func() { lp.withSelected(lp.OnOpen) })
	exportBtn := widget.NewButton("Export PDF", func() { lp.withSelected(lp.OnExport) })
	deleteBtn := widget.NewButton("Delete", func() { lp.withSelected(lp.OnDelete) })

	lp.content = container.NewBorder(
		widget.NewLabelWithStyle("Library", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(3, openBtn, exportBtn, deleteBtn),
		nil, nil,
		lp.list,
	)
	lp.ExtendBaseWidget(lp)
	return lp
}

// CreateRenderer implements fyne.Widget.
func (lp *LibraryPanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(lp.content)
}

// Reload refetches the markup list from the store.
func (lp *LibraryPanel) Reload() error {
	items, err := lp.store.List()
	if err != nil {
		return fmt.Errorf("reloading library: %w", err)
	}
	lp.items = items
	lp.selected = -1
	lp.list.UnselectAll()
	lp.list.Refresh()
	return nil
}

// Items returns the currently loaded markups, oldest first.
func (lp *LibraryPanel) Items() []store.PhotoAnnotation {
	return lp.items
}

func (lp *LibraryPanel) itemText(rec store.PhotoAnnotation) string {
	title := rec.Title
	if title == "" {
		title = "(untitled)"
	}
	return fmt.Sprintf("%s  %s  %s",
		rec.CreatedAt.Local().Format("2006-01-02 15:04"),
		title,
		filepath.Base(rec.PhotoPath))
}

func (lp *LibraryPanel) withSelected(fn func(store.PhotoAnnotation)) {
	if fn == nil || lp.selected < 0 || lp.selected >= len(lp.items) {
		return
	}
	fn(lp.items[lp.selected])
}
