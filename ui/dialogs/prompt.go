// Package dialogs wraps the modal prompts of the editing workflow.
package dialogs

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// TextPrompt asks for annotation text. onSubmit receives the raw input; the
// editor rejects empty text itself.
func TextPrompt(win fyne.Window, onSubmit func(text string)) {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("Annotation text")
	items := []*widget.FormItem{widget.NewFormItem("Text", entry)}
	dialog.ShowForm("Add Text", "Add", "Cancel", items, func(ok bool) {
		if ok {
			onSubmit(entry.Text)
		}
	}, win)
}

// MarkerPrompt asks for a marker label. The entry forces upper case and
// three characters as the user types; commit normalizes again regardless.
func MarkerPrompt(win fyne.Window, onSubmit func(label string)) {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("Up to 3 characters")
	entry.OnChanged = func(s string) {
		upper := strings.ToUpper(s)
		if runes := []rune(upper); len(runes) > 3 {
			upper = string(runes[:3])
		}
		if upper != s {
			entry.SetText(upper)
		}
	}
	items := []*widget.FormItem{widget.NewFormItem("Label", entry)}
	dialog.ShowForm("Add Marker", "Add", "Cancel", items, func(ok bool) {
		if ok {
			onSubmit(entry.Text)
		}
	}, win)
}

// SaveForm collects an optional title and notes before saving a markup.
func SaveForm(win fyne.Window, onSubmit func(title, notes string)) {
	title := widget.NewEntry()
	title.SetPlaceHolder("Optional title")
	notes := widget.NewMultiLineEntry()
	notes.SetPlaceHolder("Optional notes")
	items := []*widget.FormItem{
		widget.NewFormItem("Title", title),
		widget.NewFormItem("Notes", notes),
	}
	dialog.ShowForm("Save Markup", "Save", "Cancel", items, func(ok bool) {
		if ok {
			onSubmit(title.Text, notes.Text)
		}
	}, win)
}

// ConfirmClear asks before wiping every annotation in the session.
func ConfirmClear(win fyne.Window, onConfirm func()) {
	dialog.ShowConfirm("Clear All",
		"Remove every annotation from this markup?",
		func(ok bool) {
			if ok {
				onConfirm()
			}
		}, win)
}
