package ui

import (
	"errors"

	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"notebook/internal/storage"
	"notebook/internal/store"
)

// promptUnlock asks for the vault passphrase and mounts the store once the
// existing blob unseals (or no blob exists yet). A wrong passphrase loops
// back to the prompt instead of falling back to an empty notebook, so a typo
// can never overwrite the vault.
func (h *AppHandle) promptUnlock(dataDir string) {
	pass := widget.NewPasswordEntry()
	pass.SetPlaceHolder("Enter passphrase")
	items := []*widget.FormItem{widget.NewFormItem("Passphrase", pass)}
	dialog.ShowForm("Unlock Notebook", "Unlock", "Quit", items, func(ok bool) {
		if !ok {
			h.win.Close()
			return
		}
		kv, err := storage.NewVault(dataDir, pass.Text)
		if err != nil {
			dialog.ShowError(err, h.win)
			h.promptUnlock(dataDir)
			return
		}
		if _, err := kv.Get(store.StorageKey); err != nil && !errors.Is(err, storage.ErrNoValue) {
			kv.Close()
			dialog.ShowInformation("Unlock Failed", "Wrong passphrase, try again.", h.win)
			h.promptUnlock(dataDir)
			return
		}
		if err := h.mount(kv); err != nil {
			dialog.ShowError(err, h.win)
		}
	}, h.win)
}
