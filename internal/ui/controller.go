package ui

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"notebook/internal/store"
)

// Controller mediates between the note store and the three display surfaces:
// file list, editor and rendered preview. It has two observable states — no
// note selected (editor and preview blank, editor disabled) and note selected
// (both surfaces track the same note). One controller owns one store for the
// lifetime of one window; there are no package-level session globals.
type Controller struct {
	win   fyne.Window
	store *store.Store

	// names currently shown in the list, after the search filter.
	names  []string
	filter string

	list    *widget.List
	search  *widget.Entry
	editor  *widget.Entry
	preview *widget.RichText
	current *widget.Label
	status  *widget.Label

	// loading suppresses the editor and list callbacks while surfaces are
	// populated programmatically, so loading a note is not mistaken for an
	// edit (the original has the same guard).
	loading bool
}

func NewController(win fyne.Window, st *store.Store) *Controller {
	c := &Controller{win: win, store: st}

	c.editor = widget.NewMultiLineEntry()
	c.editor.SetPlaceHolder("Start writing your markdown here...")
	c.editor.Wrapping = fyne.TextWrapWord
	c.editor.OnChanged = c.onEditorChanged
	c.editor.Disable()

	c.preview = widget.NewRichTextFromMarkdown("")
	c.preview.Wrapping = fyne.TextWrapWord

	c.current = widget.NewLabel("No note selected")
	c.status = widget.NewLabel("")

	c.list = widget.NewList(
		func() int { return len(c.names) },
		func() fyne.CanvasObject { return widget.NewLabel("Note") },
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(c.names[i])
		},
	)
	c.list.OnSelected = c.onListSelected

	c.search = widget.NewEntry()
	c.search.SetPlaceHolder("Search...")
	c.search.OnChanged = c.onSearchChanged

	return c
}

// RefreshList rebuilds the visible name list from the store, applies the
// search filter and restores the highlighted row to the store's selection.
func (c *Controller) RefreshList() {
	all := c.store.List()
	if c.filter == "" {
		c.names = all
	} else {
		c.names = c.names[:0]
		for _, name := range all {
			if strings.Contains(strings.ToLower(name), c.filter) {
				c.names = append(c.names, name)
			}
		}
	}

	c.loading = true
	c.list.Refresh()
	if idx := slices.Index(c.names, c.store.Selected()); idx >= 0 {
		c.list.Select(idx)
	} else {
		c.list.UnselectAll()
	}
	c.loading = false
}

// Select moves the controller to the selected state on the named note,
// loading its content into both the editor and the preview.
func (c *Controller) Select(name string) {
	n, err := c.store.Get(name)
	if err != nil {
		slog.Warn("select of unknown note", "name", name)
		return
	}
	_ = c.store.Select(name)

	c.loading = true
	c.editor.Enable()
	c.editor.SetText(n.Content)
	c.preview.ParseMarkdown(n.Content)
	c.current.SetText(name)
	c.loading = false
}

// clearSurfaces moves the controller to the no-selection state.
func (c *Controller) clearSurfaces() {
	c.loading = true
	c.editor.SetText("")
	c.editor.Disable()
	c.preview.ParseMarkdown("")
	c.current.SetText("No note selected")
	c.loading = false
}

func (c *Controller) onListSelected(id widget.ListItemID) {
	if c.loading || id < 0 || id >= len(c.names) {
		return
	}
	c.Select(c.names[id])
}

// onEditorChanged is the edit transition: re-render the preview from the
// same text and write the whole content through to the store synchronously.
func (c *Controller) onEditorChanged(text string) {
	if c.loading || c.store.Selected() == "" {
		return
	}
	c.preview.ParseMarkdown(text)
	if err := c.store.UpdateContent(c.store.Selected(), text); err != nil {
		// In-memory state stays authoritative; the session keeps working.
		slog.Warn("write-through failed", "error", err)
		c.flashStatus("save failed")
	}
}

// createNote creates a note under the requested name (blank means the
// default base) and selects it. The store resolves name collisions by
// suffixing, so this never fails on a duplicate name.
func (c *Controller) createNote(name string) {
	if strings.TrimSpace(name) == "" {
		name = "Untitled"
	}
	n, err := c.store.Create(name)
	if err != nil {
		if store.IsInvalidName(err) {
			c.flashStatus("invalid name")
			return
		}
		slog.Warn("create failed", "name", name, "error", err)
		c.flashStatus("save failed")
	}
	c.RefreshList()
	c.Select(n.Name)
}

// deleteCurrent removes the selected note; the store decides what gets
// selected afterwards (first remaining in insertion order, or nothing).
func (c *Controller) deleteCurrent() {
	name := c.store.Selected()
	if name == "" {
		return
	}
	if err := c.store.Delete(name); err != nil {
		slog.Warn("delete failed", "name", name, "error", err)
		c.flashStatus("save failed")
	}
	c.RefreshList()
	if sel := c.store.Selected(); sel != "" {
		c.Select(sel)
	} else {
		c.clearSurfaces()
	}
}

// renameCurrent renames the selected note, keeping whatever suffixed name
// the store assigned.
func (c *Controller) renameCurrent(requested string) {
	name := c.store.Selected()
	if name == "" {
		return
	}
	assigned, err := c.store.Rename(name, requested)
	if err != nil {
		if store.IsInvalidName(err) {
			c.flashStatus("invalid name")
			return
		}
		slog.Warn("rename failed", "name", name, "error", err)
		c.flashStatus("save failed")
		return
	}
	c.RefreshList()
	c.current.SetText(assigned)
}

// saveCurrent is the manual save affordance. Mutations already write
// through, so this re-persists the collection and confirms to the user.
func (c *Controller) saveCurrent() {
	if err := c.store.Save(); err != nil {
		slog.Warn("save failed", "error", err)
		c.flashStatus("save failed")
		return
	}
	if name := c.store.Selected(); name != "" {
		c.flashStatus("Saved " + name)
	} else {
		c.flashStatus("Saved")
	}
}

func (c *Controller) onSearchChanged(s string) {
	c.filter = strings.ToLower(strings.TrimSpace(s))
	c.RefreshList()
}

func (c *Controller) flashStatus(msg string) {
	c.status.SetText(msg)
	time.AfterFunc(2*time.Second, func() {
		if c.status.Text == msg {
			c.status.SetText("")
		}
	})
}
