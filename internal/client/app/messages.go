package app

import (
	"time"

	"github.com/dmitrijs2005/rentaltracker/internal/client/page"
)

// ShowError puts message into the element with the given id and shows it.
func (a *App) ShowError(id, message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.showError(id, message)
}

func (a *App) showError(id, message string) {
	e := a.doc.Get(id)
	e.SetText(message)
	e.RemoveClass(page.ClassHidden)
}

// ClearError hides the element with the given id.
func (a *App) ClearError(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.clearError(id)
}

func (a *App) clearError(id string) {
	a.doc.Get(id).AddClass(page.ClassHidden)
}

// ShowSuccess shows message in the element with the given id and hides it
// again after the success delay. Timers are not cancelled, so a second call
// within the delay is hidden by the first timer.
func (a *App) ShowSuccess(id, message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.showSuccess(id, message)
}

func (a *App) showSuccess(id, message string) {
	e := a.doc.Get(id)
	e.SetText(message)
	e.RemoveClass(page.ClassHidden)

	time.AfterFunc(a.successDelay, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		e.AddClass(page.ClassHidden)
	})
}
