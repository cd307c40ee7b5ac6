package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// makeLayout assembles the three-panel composition: file list, editor,
// rendered preview.
func (c *Controller) makeLayout() fyne.CanvasObject {
	newButton := widget.NewButtonWithIcon("New Note", theme.ContentAddIcon(), c.showCreateDialog)
	left := container.NewBorder(c.search, newButton, nil, nil, c.list)

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentSaveIcon(), c.saveCurrent),
		widget.NewToolbarAction(theme.DocumentCreateIcon(), c.showRenameDialog),
		widget.NewToolbarAction(theme.DownloadIcon(), c.showExportDialog),
		widget.NewToolbarAction(theme.DeleteIcon(), c.showDeleteDialog),
	)
	editorHeader := container.NewBorder(nil, nil, c.current, container.NewHBox(c.status, toolbar))
	center := container.NewBorder(editorHeader, nil, nil, nil, c.editor)

	previewHeader := widget.NewLabel("Preview")
	previewHeader.TextStyle = fyne.TextStyle{Bold: true}
	right := container.NewBorder(previewHeader, nil, nil, nil, container.NewVScroll(c.preview))

	inner := container.NewHSplit(center, right)
	inner.SetOffset(0.5)
	split := container.NewHSplit(left, inner)
	split.SetOffset(0.22)
	return split
}

// registerShortcuts wires Ctrl+S (save) and Ctrl+N (new note).
func (c *Controller) registerShortcuts(w fyne.Window) {
	save := &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierControl}
	w.Canvas().AddShortcut(save, func(fyne.Shortcut) { c.saveCurrent() })

	create := &desktop.CustomShortcut{KeyName: fyne.KeyN, Modifier: fyne.KeyModifierControl}
	w.Canvas().AddShortcut(create, func(fyne.Shortcut) { c.showCreateDialog() })
}
