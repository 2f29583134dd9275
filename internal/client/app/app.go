package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/rentaltracker/internal/client/models"
	"github.com/dmitrijs2005/rentaltracker/internal/client/page"
	"github.com/dmitrijs2005/rentaltracker/internal/logging"
)

// DefaultSuccessDelay is how long a success message stays visible.
const DefaultSuccessDelay = 3 * time.Second

var (
	ErrUnknownSection = errors.New("unknown section")
	ErrUnknownTarget  = errors.New("no handler bound to event")
	ErrHiddenTarget   = errors.New("event target is hidden")
)

// API is the subset of the backend client the controller drives.
type API interface {
	Token() string
	SetToken(ctx context.Context, token string) error
	Register(ctx context.Context, in models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error)
	Logout(ctx context.Context) error
	GetProperties(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error)
	CreateProperty(ctx context.Context, in models.PropertyInput) (*models.Property, error)
	GetBuyingCriteria(ctx context.Context) ([]models.BuyingCriterion, error)
}

// UserStore caches the profile of the logged-in user between runs.
type UserStore interface {
	SaveUser(ctx context.Context, user *models.User) error
	LoadUser(ctx context.Context) (*models.User, error)
}

// EventType distinguishes clicks from form submissions.
type EventType string

const (
	Click  EventType = "click"
	Submit EventType = "submit"
)

// Event is a user action on a page element.
type Event struct {
	Type   EventType
	Target string
}

// loader fetches the data of a section once the page lock is released.
type loader func(ctx context.Context)

type App struct {
	api   API
	users UserStore

	logger       logging.Logger
	successDelay time.Duration
	now          func() time.Time

	mu             sync.Mutex
	doc            *page.Document
	currentUser    *models.User
	currentSection string

	bindings map[Event]func(ctx context.Context) error
}

type Option func(*App)

func WithLogger(l logging.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithSuccessDelay overrides DefaultSuccessDelay.
func WithSuccessDelay(d time.Duration) Option {
	return func(a *App) { a.successDelay = d }
}

// WithClock sets the time source used to check token expiry.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// New creates a controller over a fresh page. users may be nil, in which case
// the user profile is not cached.
func New(api API, users UserStore, opts ...Option) *App {
	a := &App{
		api:            api,
		users:          users,
		logger:         logging.Discard(),
		successDelay:   DefaultSuccessDelay,
		now:            time.Now,
		doc:            page.NewDocument(),
		currentSection: page.SectionLogin,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.bind()
	return a
}

func (a *App) bind() {
	a.bindings = make(map[Event]func(ctx context.Context) error)
	for _, s := range page.Sections {
		a.bindings[Event{Type: Click, Target: page.NavID(s)}] = func(ctx context.Context) error {
			return a.ShowSection(ctx, s)
		}
	}
	a.bindings[Event{Type: Click, Target: page.AddFirstProperty}] = func(ctx context.Context) error {
		return a.ShowSection(ctx, page.SectionAddProperty)
	}
	a.bindings[Event{Type: Submit, Target: page.LoginForm}] = a.HandleLogin
	a.bindings[Event{Type: Submit, Target: page.RegisterForm}] = a.HandleRegister
	a.bindings[Event{Type: Submit, Target: page.PropertyForm}] = a.HandleAddProperty
	a.bindings[Event{Type: Click, Target: page.LogoutBtn}] = func(ctx context.Context) error {
		a.HandleLogout(ctx)
		return nil
	}
}

// Init derives the authentication state from the stored token and shows the
// initial section.
func (a *App) Init(ctx context.Context) error {
	if err := a.ShowSection(ctx, page.SectionLogin); err != nil {
		return err
	}
	a.CheckAuthStatus(ctx)
	return nil
}

// Dispatch runs the handler bound to e. Events on missing or hidden elements,
// or on elements inside a hidden section, are rejected.
func (a *App) Dispatch(ctx context.Context, e Event) error {
	h, ok := a.bindings[e]
	if !ok {
		return fmt.Errorf("%w: %s %s", ErrUnknownTarget, e.Type, e.Target)
	}

	a.mu.Lock()
	hidden := a.hidden(e.Target)
	a.mu.Unlock()
	if hidden {
		return fmt.Errorf("%w: %s", ErrHiddenTarget, e.Target)
	}

	return h(ctx)
}

func (a *App) hidden(id string) bool {
	for id != "" {
		e, ok := a.doc.Lookup(id)
		if !ok {
			return true
		}
		if e.Hidden() {
			return true
		}
		id = e.Parent
	}
	return false
}

// Section returns the name of the current section.
func (a *App) Section() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentSection
}

// User returns a copy of the current user, nil when logged out.
func (a *App) User() *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.currentUser == nil {
		return nil
	}
	u := *a.currentUser
	return &u
}

// SetValue fills the input with the given id.
func (a *App) SetValue(id, value string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.doc.Get(id).Value = value
}

// Visible reports whether the element with the given id and all of its
// ancestors are shown.
func (a *App) Visible(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return !a.hidden(id)
}

// Snapshot returns a copy of the element with the given id.
func (a *App) Snapshot(id string) page.Element {
	a.mu.Lock()
	defer a.mu.Unlock()
	return *a.doc.Get(id).Clone()
}

// Render returns the visible content of the page as plain text.
func (a *App) Render() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doc.VisibleText()
}
