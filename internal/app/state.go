// Package app holds application-level state shared by the UI: configuration,
// logging, the markup library, and the photo currently being worked on.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"photo-markup/internal/config"
	"photo-markup/internal/editor"
	"photo-markup/internal/photo"
	"photo-markup/internal/render"
	"photo-markup/internal/store"
)

// Session is one active editing pass over a photo.
type Session struct {
	Photo  *photo.Photo
	Editor *editor.Editor
	// ResumedFrom is the library record this session continues, if any.
	ResumedFrom string
}

// State wires the long-lived pieces together for the window code.
type State struct {
	Config *config.Config
	Log    *zap.Logger
	Store  *store.Store

	session *Session
}

// NewState assembles application state. The store stays open for the
// process lifetime; Close releases it.
func NewState(cfg *config.Config, log *zap.Logger, st *store.Store) *State {
	return &State{Config: cfg, Log: log, Store: st}
}

// Close releases held resources.
func (s *State) Close() error {
	return s.Store.Close()
}

// Session returns the active editing session, or nil.
func (s *State) Session() *Session {
	return s.session
}

// StartSession loads the photo at path and opens a fresh editing session
// sized to fit inside the given canvas area.
func (s *State) StartSession(path string, canvasW, canvasH float64) (*Session, error) {
	p, err := photo.Load(path)
	if err != nil {
		return nil, fmt.Errorf("starting session: %w", err)
	}

	size := p.Size()
	scale := render.FitScale(size.Width, size.Height, canvasW, canvasH)
	ed := editor.New(size.Width*scale, size.Height*scale, nil, render.Measurer{})
	ed.SetColor(s.Config.DefaultColor)
	ed.SetWidth(float64(s.Config.DefaultWidth))

	s.session = &Session{Photo: p, Editor: ed}
	s.Log.Info("editing session started",
		zap.String("photo", path),
		zap.Float64("scale", scale))
	return s.session, nil
}

// ResumeSession reopens a saved markup for further editing. The canvas is
// sized to the markup's recorded dimensions so stored coordinates stay valid.
func (s *State) ResumeSession(rec store.PhotoAnnotation) (*Session, error) {
	p, err := photo.Load(rec.PhotoPath)
	if err != nil {
		// The photo may have moved; editing continues over a blank base.
		s.Log.Warn("photo missing, resuming on placeholder",
			zap.String("photo", rec.PhotoPath), zap.Error(err))
		p = &photo.Photo{Path: rec.PhotoPath}
	}

	data := rec.Data
	ed := editor.New(data.Width, data.Height, &data, render.Measurer{})
	ed.SetColor(s.Config.DefaultColor)
	ed.SetWidth(float64(s.Config.DefaultWidth))

	s.session = &Session{Photo: p, Editor: ed, ResumedFrom: rec.ID}
	s.Log.Info("editing session resumed", zap.String("markup", rec.ID))
	return s.session, nil
}

// SaveSession persists the current session as a new library record and ends
// the session.
func (s *State) SaveSession(title, notes string) (store.PhotoAnnotation, error) {
	if s.session == nil {
		return store.PhotoAnnotation{}, fmt.Errorf("saving session: no active session")
	}
	rec, err := s.Store.Save(s.session.Photo.Path, title, notes, s.session.Editor.Snapshot())
	if err != nil {
		return store.PhotoAnnotation{}, err
	}
	s.EndSession()
	return rec, nil
}

// EndSession discards the active session without saving.
func (s *State) EndSession() {
	s.session = nil
}
