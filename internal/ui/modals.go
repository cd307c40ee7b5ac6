package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"notebook/internal/export"
)

func (c *Controller) showCreateDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Untitled")
	items := []*widget.FormItem{widget.NewFormItem("Name", nameEntry)}
	dialog.ShowForm("New Note", "Create", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		c.createNote(nameEntry.Text)
	}, c.win)
}

func (c *Controller) showRenameDialog() {
	name := c.store.Selected()
	if name == "" {
		return
	}
	nameEntry := widget.NewEntry()
	nameEntry.SetText(name)
	items := []*widget.FormItem{widget.NewFormItem("Name", nameEntry)}
	dialog.ShowForm("Rename Note", "Rename", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		c.renameCurrent(nameEntry.Text)
	}, c.win)
}

func (c *Controller) showDeleteDialog() {
	name := c.store.Selected()
	if name == "" {
		return
	}
	msg := fmt.Sprintf("Are you sure you want to delete %q?", name)
	dialog.ShowConfirm("Delete Note", msg, func(ok bool) {
		if !ok {
			return
		}
		c.deleteCurrent()
	}, c.win)
}

func (c *Controller) showExportDialog() {
	name := c.store.Selected()
	if name == "" {
		return
	}
	n, err := c.store.Get(name)
	if err != nil {
		return
	}
	page, err := export.HTML(n.Name, n.Content)
	if err != nil {
		dialog.ShowError(fmt.Errorf("export failed: %w", err), c.win)
		return
	}
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, c.win)
			return
		}
		if wc == nil {
			return
		}
		defer wc.Close()
		if _, err := wc.Write(page); err != nil {
			slog.Warn("export write failed", "name", name, "error", err)
			dialog.ShowError(fmt.Errorf("export failed: %w", err), c.win)
			return
		}
		c.flashStatus("Exported " + name)
	}, c.win)
	d.SetFileName(name + ".html")
	d.Show()
}
