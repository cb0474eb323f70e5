// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"image"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"photo-markup/internal/app"
	"photo-markup/internal/editor"
	"photo-markup/internal/export"
	"photo-markup/internal/photo"
	"photo-markup/internal/store"
	"photo-markup/internal/version"
	"photo-markup/internal/viewer"
	"photo-markup/ui/canvas"
	"photo-markup/ui/dialogs"
	"photo-markup/ui/panels"
	"photo-markup/ui/prefs"
)

const (
	prefKeyLastDir      = "lastDirectory"
	prefKeyWindowWidth  = "windowWidth"
	prefKeyWindowHeight = "windowHeight"
	prefKeyShowOverlay  = "reviewShowAnnotations"

	// Editing canvas area the photo is fitted into.
	editAreaWidth  = 960.0
	editAreaHeight = 640.0
)

// MainWindow is the primary application window. It swaps its center content
// between the library screen, the editing screen, and the review screen.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State
	prefs *prefs.Prefs

	library   *panels.LibraryPanel
	statusBar *widget.Label
	center    *fyne.Container

	// Editing screen, present while a session is active.
	markup  *canvas.MarkupCanvas
	undoBtn *widget.Button
	redoBtn *widget.Button

	// Review screen.
	review *canvas.ReviewCanvas
	pager  *viewer.Viewer
}

// New creates the main window on the library screen.
func New(fyneApp fyne.App, state *app.State) *MainWindow {
	w := &MainWindow{
		Window: fyneApp.NewWindow(fmt.Sprintf("Photo Markup %s", version.Version)),
		app:    fyneApp,
		state:  state,
		prefs:  prefs.Load(),
	}

	w.statusBar = widget.NewLabel("Open a photo to start marking it up")
	w.library = panels.NewLibraryPanel(state.Store)
	w.library.OnOpen = w.openReviewAt
	w.library.OnExport = w.exportPDF
	w.library.OnDelete = w.deleteMarkup

	w.center = container.NewStack()
	w.SetMainMenu(w.buildMenu())
	w.SetContent(container.NewBorder(nil, w.statusBar, nil, nil, w.center))
	w.Resize(fyne.NewSize(
		float32(w.prefs.FloatWithFallback(prefKeyWindowWidth, 1200)),
		float32(w.prefs.FloatWithFallback(prefKeyWindowHeight, 760)),
	))
	w.SetCloseIntercept(w.shutdown)

	w.showLibrary()
	return w
}

// shutdown records window preferences before closing. The close button
// arrives here via the close intercept; the Quit menu item calls it directly.
func (w *MainWindow) shutdown() {
	size := w.Canvas().Size()
	w.prefs.SetFloat(prefKeyWindowWidth, float64(size.Width))
	w.prefs.SetFloat(prefKeyWindowHeight, float64(size.Height))
	w.SavePreferences()
	w.Window.Close()
}

func (w *MainWindow) buildMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Photo...", w.openPhoto),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", w.shutdown),
	)
	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() { w.withEditor(func(ed *editor.Editor) { ed.Undo() }) }),
		fyne.NewMenuItem("Redo", func() { w.withEditor(func(ed *editor.Editor) { ed.Redo() }) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Delete Selected", func() { w.withEditor(func(ed *editor.Editor) { ed.DeleteSelected() }) }),
	)
	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Library", w.showLibrary),
		fyne.NewMenuItem("Review Markups", func() { w.openReview(0) }),
	)
	return fyne.NewMainMenu(fileMenu, editMenu, viewMenu)
}

// setStatus updates the status bar.
func (w *MainWindow) setStatus(format string, args ...any) {
	w.statusBar.SetText(fmt.Sprintf(format, args...))
}

func (w *MainWindow) swapCenter(obj fyne.CanvasObject) {
	w.center.Objects = []fyne.CanvasObject{obj}
	w.center.Refresh()
}

// withEditor runs fn when an editing session is active, then repaints.
func (w *MainWindow) withEditor(fn func(*editor.Editor)) {
	session := w.state.Session()
	if session == nil || w.markup == nil {
		return
	}
	fn(session.Editor)
	w.markup.Refresh()
	w.refreshHistoryButtons()
}

// --- Library screen ---

func (w *MainWindow) showLibrary() {
	w.markup = nil
	if err := w.library.Reload(); err != nil {
		w.state.Log.Error("loading library", zap.Error(err))
		w.setStatus("Could not load library: %v", err)
	}
	openBtn := widget.NewButton("Open Photo...", w.openPhoto)
	reviewBtn := widget.NewButton("Review Markups", func() { w.openReview(0) })
	w.swapCenter(container.NewBorder(
		container.NewHBox(openBtn, reviewBtn), nil, nil, nil,
		w.library,
	))
	w.setStatus("%d saved markups", len(w.library.Items()))
}

// --- Editing screen ---

func (w *MainWindow) openPhoto() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		w.prefs.SetString(prefKeyLastDir, filepath.Dir(path))
		w.SavePreferences()
		w.startSession(path)
	}, w.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".jpg", ".jpeg", ".png", ".tif", ".tiff"}))
	if dir := w.prefs.String(prefKeyLastDir); dir != "" {
		if uri, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fd.SetLocation(uri)
		}
	}
	fd.Show()
}

func (w *MainWindow) startSession(path string) {
	session, err := w.state.StartSession(path, editAreaWidth, editAreaHeight)
	if err != nil {
		w.state.Log.Error("opening photo", zap.String("path", path), zap.Error(err))
		dialog.ShowError(err, w.Window)
		w.setStatus("Could not open %s", filepath.Base(path))
		return
	}
	w.showEditor(session)
}

func (w *MainWindow) resumeSession(rec store.PhotoAnnotation) {
	session, err := w.state.ResumeSession(rec)
	if err != nil {
		dialog.ShowError(err, w.Window)
		return
	}
	w.showEditor(session)
}

func (w *MainWindow) showEditor(session *app.Session) {
	ed := session.Editor
	w.markup = canvas.NewMarkupCanvas(ed, session.Photo.Image)
	w.markup.OnPrompt = w.handlePrompt
	w.markup.OnChanged = w.refreshHistoryButtons

	tools := panels.NewToolsPanel(ed, func() { w.markup.Refresh() })

	w.undoBtn = widget.NewButton("Undo", func() { w.withEditor(func(e *editor.Editor) { e.Undo() }) })
	w.redoBtn = widget.NewButton("Redo", func() { w.withEditor(func(e *editor.Editor) { e.Redo() }) })
	deleteBtn := widget.NewButton("Delete", func() { w.withEditor(func(e *editor.Editor) { e.DeleteSelected() }) })
	clearBtn := widget.NewButton("Clear All", func() {
		dialogs.ConfirmClear(w.Window, func() {
			w.withEditor(func(e *editor.Editor) { e.ClearAll() })
		})
	})
	saveBtn := widget.NewButton("Save", w.saveSession)
	cancelBtn := widget.NewButton("Cancel", w.cancelSession)

	actionBar := container.NewHBox(w.undoBtn, w.redoBtn, deleteBtn, clearBtn,
		widget.NewSeparator(), saveBtn, cancelBtn)

	w.swapCenter(container.NewBorder(
		actionBar, nil, tools, nil,
		container.NewCenter(w.markup),
	))
	w.refreshHistoryButtons()
	w.setStatus("Editing %s", filepath.Base(session.Photo.Path))
}

func (w *MainWindow) refreshHistoryButtons() {
	session := w.state.Session()
	if session == nil || w.undoBtn == nil {
		return
	}
	setEnabled := func(btn *widget.Button, on bool) {
		if on {
			btn.Enable()
		} else {
			btn.Disable()
		}
	}
	setEnabled(w.undoBtn, session.Editor.CanUndo())
	setEnabled(w.redoBtn, session.Editor.CanRedo())
}

// handlePrompt opens the input dialog a pointer release asked for.
func (w *MainWindow) handlePrompt(p editor.Prompt) {
	switch p.Kind {
	case editor.PromptText:
		dialogs.TextPrompt(w.Window, func(text string) {
			w.withEditor(func(e *editor.Editor) { e.CommitText(p.At, text) })
		})
	case editor.PromptMarker:
		dialogs.MarkerPrompt(w.Window, func(label string) {
			w.withEditor(func(e *editor.Editor) { e.CommitMarker(p.At, label) })
		})
	}
}

func (w *MainWindow) saveSession() {
	dialogs.SaveForm(w.Window, func(title, notes string) {
		rec, err := w.state.SaveSession(title, notes)
		if err != nil {
			w.state.Log.Error("saving markup", zap.Error(err))
			dialog.ShowError(err, w.Window)
			return
		}
		w.setStatus("Saved markup %s", rec.ID)
		w.showLibrary()
	})
}

func (w *MainWindow) cancelSession() {
	w.state.EndSession()
	w.showLibrary()
}

// --- Review screen ---

// openReviewAt opens the review screen on the given record.
func (w *MainWindow) openReviewAt(rec store.PhotoAnnotation) {
	for i, item := range w.library.Items() {
		if item.ID == rec.ID {
			w.openReview(i)
			return
		}
	}
	w.openReview(0)
}

func (w *MainWindow) openReview(startIndex int) {
	records := w.library.Items()
	items := make([]viewer.Item, 0, len(records))
	for _, rec := range records {
		items = append(items, viewer.Item{
			ID:        rec.ID,
			PhotoPath: rec.PhotoPath,
			Title:     rec.Title,
			Notes:     rec.Notes,
			Data:      rec.Data,
		})
	}
	w.pager = viewer.New(items)
	for i := 0; i < startIndex && i < len(items); i++ {
		w.pager.Next()
	}
	w.pager.SetShowAnnotations(w.prefs.Bool(prefKeyShowOverlay, true))

	if w.pager.Empty() {
		w.swapCenter(container.NewCenter(widget.NewLabel("No saved markups yet")))
		w.setStatus("Nothing to review")
		return
	}

	w.review = canvas.NewReviewCanvas()

	prevBtn := widget.NewButton("< Prev", func() { w.pager.Prev(); w.refreshReview() })
	nextBtn := widget.NewButton("Next >", func() { w.pager.Next(); w.refreshReview() })
	toggleBtn := widget.NewButton("Toggle Annotations", func() {
		w.prefs.SetBool(prefKeyShowOverlay, w.pager.ToggleAnnotations())
		w.refreshReview()
	})
	zoomInBtn := widget.NewButton("Zoom +", func() { w.pager.ZoomIn(); w.review.SetZoom(w.pager.Zoom()) })
	zoomOutBtn := widget.NewButton("Zoom -", func() { w.pager.ZoomOut(); w.review.SetZoom(w.pager.Zoom()) })
	backBtn := widget.NewButton("Back to Library", w.showLibrary)
	editBtn := widget.NewButton("Edit", func() {
		if item, ok := w.pager.Current(); ok {
			if rec, err := w.state.Store.Get(item.ID); err == nil {
				w.resumeSession(rec)
			}
		}
	})

	nav := container.NewHBox(prevBtn, nextBtn, widget.NewSeparator(),
		toggleBtn, zoomInBtn, zoomOutBtn, widget.NewSeparator(), editBtn, backBtn)

	w.swapCenter(container.NewBorder(nav, nil, nil, nil, w.review))
	w.refreshReview()
}

func (w *MainWindow) refreshReview() {
	item, ok := w.pager.Current()
	if !ok {
		return
	}
	var base image.Image
	if p, err := photo.Load(item.PhotoPath); err == nil {
		base = p.Image
	} else {
		w.state.Log.Warn("photo missing for review", zap.String("path", item.PhotoPath))
	}
	w.review.Show(base, item.Data, w.pager.Annotations(), w.pager.Zoom())
	w.setStatus("Reviewing %d of %d: %s", w.pager.Index()+1, w.pager.Len(), item.Title)
}

// --- Library actions ---

func (w *MainWindow) exportPDF(rec store.PhotoAnnotation) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		var base image.Image
		if p, loadErr := photo.Load(rec.PhotoPath); loadErr == nil {
			base = p.Image
		}
		if err := export.PDF(path, base, rec.Data, rec.Title, rec.Notes); err != nil {
			w.state.Log.Error("exporting PDF", zap.Error(err))
			dialog.ShowError(err, w.Window)
			return
		}
		w.setStatus("Exported %s", filepath.Base(path))
	}, w.Window)
	fd.SetFileName(exportFileName(rec))
	fd.Show()
}

func exportFileName(rec store.PhotoAnnotation) string {
	return displayName(rec) + ".pdf"
}

func displayName(rec store.PhotoAnnotation) string {
	if rec.Title != "" {
		return rec.Title
	}
	return rec.ID
}

func (w *MainWindow) deleteMarkup(rec store.PhotoAnnotation) {
	dialog.ShowConfirm("Delete Markup",
		fmt.Sprintf("Delete %q? This cannot be undone.", displayName(rec)),
		func(ok bool) {
			if !ok {
				return
			}
			if err := w.state.Store.Delete(rec.ID); err != nil {
				dialog.ShowError(err, w.Window)
				return
			}
			w.showLibrary()
		}, w.Window)
}

// SavePreferences flushes window preferences to disk.
func (w *MainWindow) SavePreferences() {
	if err := w.prefs.Save(); err != nil {
		w.state.Log.Warn("saving preferences", zap.Error(err))
	}
}
