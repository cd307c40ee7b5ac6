package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"notebook/internal/config"
	"notebook/internal/storage"
	"notebook/internal/store"
)

const appID = "io.notebook.editor"

// AppHandle owns the Fyne application and window for one editor session.
type AppHandle struct {
	app fyne.App
	win fyne.Window
	ctl *Controller
}

// NewApp builds the window and mounts the store on the configured storage
// backend. The vault backend defers mounting until the passphrase dialog
// succeeds.
func NewApp(cfg config.AppConfig) (*AppHandle, error) {
	a := app.NewWithID(appID)
	w := a.NewWindow("Notebook")
	w.Resize(fyne.NewSize(1200, 700))
	h := &AppHandle{app: a, win: w}

	dataDir := config.ExpandPath(cfg.DataDir)
	switch cfg.Storage {
	case config.StorageVault:
		h.promptUnlock(dataDir)
	case config.StorageFile:
		kv, err := storage.NewFile(dataDir)
		if err != nil {
			return nil, err
		}
		if err := h.mount(kv); err != nil {
			return nil, err
		}
	default:
		if err := h.mount(storage.NewPrefs(a.Preferences())); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// mount loads the store from kv and installs the three-panel layout.
func (h *AppHandle) mount(kv storage.KV) error {
	st := store.New(kv)
	if err := st.Load(); err != nil {
		return fmt.Errorf("loading notebook: %w", err)
	}
	c := NewController(h.win, st)
	h.ctl = c
	h.win.SetContent(c.makeLayout())
	c.registerShortcuts(h.win)
	c.RefreshList()
	if sel := st.Selected(); sel != "" {
		c.Select(sel)
	}
	return nil
}

func (h *AppHandle) Run() {
	h.win.ShowAndRun()
}
