package app

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/rentaltracker/internal/client/models"
)

// fakeAPI implements API for controller tests.
type fakeAPI struct {
	mu sync.Mutex

	token     string
	setTokens []string

	loginResp *models.LoginResponse
	loginErr  error
	lastCreds models.Credentials

	registerErr  error
	lastRegister models.RegisterRequest

	logoutErr   error
	logoutCalls int

	properties      []models.Property
	propertiesErr   error
	propertiesCalls int

	createErr  error
	lastCreate *models.PropertyInput

	criteria      []models.BuyingCriterion
	criteriaErr   error
	criteriaCalls int
}

func (f *fakeAPI) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeAPI) SetToken(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
	f.setTokens = append(f.setTokens, token)
	return nil
}

func (f *fakeAPI) Register(_ context.Context, in models.RegisterRequest) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastRegister = in
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &models.User{Email: in.Email, FirstName: in.FirstName}, nil
}

func (f *fakeAPI) Login(_ context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastCreds = creds
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	if f.loginResp == nil {
		return nil, errors.New("no login response configured")
	}
	f.token = f.loginResp.Token
	return f.loginResp, nil
}

func (f *fakeAPI) Logout(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logoutCalls++
	f.token = ""
	return f.logoutErr
}

func (f *fakeAPI) GetProperties(_ context.Context, _ models.PropertyFilter) ([]models.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.propertiesCalls++
	return f.properties, f.propertiesErr
}

func (f *fakeAPI) CreateProperty(_ context.Context, in models.PropertyInput) (*models.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastCreate = &in
	if f.createErr != nil {
		return nil, f.createErr
	}
	p := models.Property{Address: in.Address, PurchasePrice: in.PurchasePrice}
	f.properties = append(f.properties, p)
	return &p, nil
}

func (f *fakeAPI) GetBuyingCriteria(_ context.Context) ([]models.BuyingCriterion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.criteriaCalls++
	return f.criteria, f.criteriaErr
}

func (f *fakeAPI) calls() (properties, criteria int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.propertiesCalls, f.criteriaCalls
}

// fakeUsers implements UserStore.
type fakeUsers struct {
	user    *models.User
	saved   []*models.User
	loadErr error
	saveErr error
}

func (s *fakeUsers) SaveUser(_ context.Context, u *models.User) error {
	s.saved = append(s.saved, u)
	if s.saveErr != nil {
		return s.saveErr
	}
	s.user = u
	return nil
}

func (s *fakeUsers) LoadUser(_ context.Context) (*models.User, error) {
	return s.user, s.loadErr
}
