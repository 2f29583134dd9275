package app

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/rentaltracker/internal/client/api"
	"github.com/dmitrijs2005/rentaltracker/internal/client/models"
	"github.com/dmitrijs2005/rentaltracker/internal/client/page"
)

const (
	msgRegistered    = "Registration successful! Please login."
	msgPropertyAdded = "Property added successfully!"
	msgInvalidPrice  = "Purchase price must be a number."
)

var ErrInvalidPrice = errors.New("invalid purchase price")

func (a *App) value(id string) string {
	return a.doc.Get(id).Value
}

// HandleLogin submits the login form. On success the returned user becomes
// the current user and the page switches to the authenticated layout.
func (a *App) HandleLogin(ctx context.Context) error {
	a.mu.Lock()
	creds := models.Credentials{
		Email:    a.value(page.LoginEmail),
		Password: a.value(page.LoginPassword),
	}
	a.mu.Unlock()

	resp, err := a.api.Login(ctx, creds)
	if err != nil {
		a.ShowError(page.LoginError, err.Error())
		return err
	}

	user := resp.User
	if user == nil {
		user = &models.User{Email: creds.Email}
	}
	if a.users != nil {
		if err := a.users.SaveUser(ctx, user); err != nil {
			a.logger.Warn(ctx, "failed to cache user", "error", err)
		}
	}

	a.mu.Lock()
	a.currentUser = user
	a.doc.Get(page.UserInfo).SetText(greeting(user))
	load := a.updateAuthUI(true)
	a.clearError(page.LoginError)
	a.mu.Unlock()

	if load != nil {
		load(ctx)
	}
	return nil
}

// HandleRegister submits the registration form.
func (a *App) HandleRegister(ctx context.Context) error {
	a.mu.Lock()
	in := models.RegisterRequest{
		Email:     a.value(page.RegisterEmail),
		Password:  a.value(page.RegisterPassword),
		FirstName: a.value(page.RegisterFirstName),
		LastName:  a.value(page.RegisterLastName),
	}
	a.mu.Unlock()

	if _, err := a.api.Register(ctx, in); err != nil {
		a.ShowError(page.RegisterError, err.Error())
		return err
	}

	a.mu.Lock()
	a.showSuccess(page.RegisterSuccess, msgRegistered)
	a.clearError(page.RegisterError)
	a.doc.Reset(page.RegisterForm)
	a.mu.Unlock()
	return nil
}

// HandleAddProperty submits the property form. Rent and year are optional:
// blank, malformed and zero values are sent as null.
func (a *App) HandleAddProperty(ctx context.Context) error {
	a.mu.Lock()
	price, err := strconv.ParseFloat(strings.TrimSpace(a.value(page.PropertyPrice)), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		a.showError(page.PropertyError, msgInvalidPrice)
		a.mu.Unlock()
		return ErrInvalidPrice
	}
	in := models.PropertyInput{
		Address:       a.value(page.PropertyAddress),
		PurchasePrice: price,
		IntendedRent:  parseOptionalFloat(a.value(page.PropertyRent)),
		YearBuilt:     parseOptionalInt(a.value(page.PropertyYear)),
	}
	a.mu.Unlock()

	if _, err := a.api.CreateProperty(ctx, in); err != nil {
		a.ShowError(page.PropertyError, err.Error())
		return err
	}

	a.mu.Lock()
	a.showSuccess(page.PropertySuccess, msgPropertyAdded)
	a.clearError(page.PropertyError)
	a.doc.Reset(page.PropertyForm)
	reload := a.currentSection == page.SectionProperties
	a.mu.Unlock()

	if reload {
		a.LoadProperties(ctx)
	}
	return nil
}

// HandleLogout revokes the session on the server and always resets the
// local authentication state. A remote failure is only logged.
func (a *App) HandleLogout(ctx context.Context) {
	if err := a.api.Logout(ctx); err != nil {
		a.logger.Error(ctx, "logout error", "error", err)
	}
	a.resetSession()
}

func (a *App) resetSession() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.currentUser = nil
	a.doc.Get(page.UserInfo).SetText("")
	a.updateAuthUI(false)
}

// dropRejectedSession logs the user out locally when the server no longer
// accepts the stored token.
func (a *App) dropRejectedSession(ctx context.Context, err error) {
	if !api.IsUnauthorized(err) {
		return
	}
	a.logger.Warn(ctx, "session rejected by server, logging out")
	if err := a.api.SetToken(ctx, ""); err != nil {
		a.logger.Error(ctx, "failed to clear token", "error", err)
	}
	a.resetSession()
}

// LoadProperties fetches and renders the property list. Failures are logged.
func (a *App) LoadProperties(ctx context.Context) {
	list, err := a.api.GetProperties(ctx, nil)
	if err != nil {
		a.logger.Error(ctx, "failed to load properties", "error", err)
		a.dropRejectedSession(ctx, err)
		return
	}
	a.DisplayProperties(list)
}

// LoadBuyingCriteria fetches and renders the buying criteria. Failures are
// logged.
func (a *App) LoadBuyingCriteria(ctx context.Context) {
	list, err := a.api.GetBuyingCriteria(ctx)
	if err != nil {
		a.logger.Error(ctx, "failed to load buying criteria", "error", err)
		a.dropRejectedSession(ctx, err)
		return
	}
	a.DisplayBuyingCriteria(list)
}

func parseOptionalFloat(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func parseOptionalInt(s string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v == 0 {
		return nil
	}
	return &v
}
