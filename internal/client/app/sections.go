package app

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/rentaltracker/internal/client/api"
	"github.com/dmitrijs2005/rentaltracker/internal/client/models"
	"github.com/dmitrijs2005/rentaltracker/internal/client/page"
)

var (
	authNav  = []string{page.NavID(page.SectionProperties), page.NavID(page.SectionAddProperty), page.NavID(page.SectionCriteria)}
	guestNav = []string{page.NavID(page.SectionLogin), page.NavID(page.SectionRegister)}
)

// ShowSection makes name the only visible section and the only active nav
// button. Entering properties or criteria while logged in loads their data.
func (a *App) ShowSection(ctx context.Context, name string) error {
	a.mu.Lock()
	load, err := a.showSection(name)
	a.mu.Unlock()
	if err != nil {
		return err
	}
	if load != nil {
		load(ctx)
	}
	return nil
}

func (a *App) showSection(name string) (loader, error) {
	if !slices.Contains(page.Sections, name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}

	for _, s := range a.doc.QueryClass(page.ClassSection) {
		s.AddClass(page.ClassHidden)
	}
	a.doc.Get(page.SectionID(name)).RemoveClass(page.ClassHidden)

	for _, b := range a.doc.QueryClass(page.ClassNavButton) {
		b.RemoveClass(page.ClassActive)
	}
	a.doc.Get(page.NavID(name)).AddClass(page.ClassActive)

	a.currentSection = name

	if a.currentUser == nil {
		return nil, nil
	}
	switch name {
	case page.SectionProperties:
		return a.LoadProperties, nil
	case page.SectionCriteria:
		return a.LoadBuyingCriteria, nil
	}
	return nil, nil
}

// CheckAuthStatus treats a stored token as a live session unless it is a JWT
// whose expiry has passed, in which case the token is discarded. The cached
// user profile, if any, restores the greeting.
func (a *App) CheckAuthStatus(ctx context.Context) {
	token := a.api.Token()
	if token != "" && api.TokenExpired(token, a.now()) {
		a.logger.Info(ctx, "stored token expired, logging out")
		if err := a.api.SetToken(ctx, ""); err != nil {
			a.logger.Error(ctx, "failed to clear expired token", "error", err)
		}
		token = ""
	}

	var user *models.User
	if token != "" && a.users != nil {
		u, err := a.users.LoadUser(ctx)
		if err != nil {
			a.logger.Warn(ctx, "failed to load cached user", "error", err)
		}
		user = u
	}

	a.mu.Lock()
	if user != nil {
		a.currentUser = user
		a.doc.Get(page.UserInfo).SetText(greeting(user))
	}
	load := a.updateAuthUI(token != "")
	a.mu.Unlock()

	if load != nil {
		load(ctx)
	}
}

// UpdateAuthUI shows the controls of an authenticated or a guest session and
// moves to the section that fits it.
func (a *App) UpdateAuthUI(ctx context.Context, authenticated bool) {
	a.mu.Lock()
	load := a.updateAuthUI(authenticated)
	a.mu.Unlock()
	if load != nil {
		load(ctx)
	}
}

func (a *App) updateAuthUI(authenticated bool) loader {
	show := func(id string, visible bool) {
		if visible {
			a.doc.Get(id).RemoveClass(page.ClassHidden)
		} else {
			a.doc.Get(id).AddClass(page.ClassHidden)
		}
	}

	show(page.UserInfo, authenticated)
	show(page.LogoutBtn, authenticated)
	for _, id := range authNav {
		show(id, authenticated)
	}
	for _, id := range guestNav {
		show(id, !authenticated)
	}

	if !authenticated {
		load, _ := a.showSection(page.SectionLogin)
		return load
	}
	if a.currentSection == page.SectionLogin || a.currentSection == page.SectionRegister {
		load, _ := a.showSection(page.SectionProperties)
		return load
	}
	return nil
}

func greeting(u *models.User) string {
	if u == nil || u.FirstName == "" {
		return "Welcome!"
	}
	return fmt.Sprintf("Welcome, %s!", u.FirstName)
}
