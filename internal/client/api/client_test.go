package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/rentaltracker/internal/client/models"
	"github.com/dmitrijs2005/rentaltracker/internal/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeStore struct {
	mu       sync.Mutex
	token    string
	loadErr  error
	saveErr  error
	clearErr error
	cleared  int
}

func (s *fakeStore) LoadToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.loadErr
}

func (s *fakeStore) SaveToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.token = token
	return nil
}

func (s *fakeStore) ClearToken(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleared++
	if s.clearErr != nil {
		return s.clearErr
	}
	s.token = ""
	return nil
}

// recorded is what the test server saw for one request.
type recorded struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

type testServer struct {
	*httptest.Server
	mu   sync.Mutex
	reqs []recorded

	status int
	body   string
}

func newTestServer(t *testing.T, status int, body string) *testServer {
	t.Helper()
	ts := &testServer{status: status, body: body}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		ts.mu.Lock()
		ts.reqs = append(ts.reqs, recorded{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Header: r.Header.Clone(), Body: b})
		status, body := ts.status, ts.body
		ts.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func (ts *testServer) respond(status int, body string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.status, ts.body = status, body
}

func (ts *testServer) last(t *testing.T) recorded {
	t.Helper()
	ts.mu.Lock()
	defer ts.mu.Unlock()
	require.NotEmpty(t, ts.reqs, "no request reached the server")
	return ts.reqs[len(ts.reqs)-1]
}

func newTestClient(t *testing.T, serverURL string, store TokenStore, opts ...Option) *Client {
	t.Helper()
	c, err := New(context.Background(), serverURL, store, opts...)
	require.NoError(t, err)
	return c
}

// ---- construction & token ----

func TestNew_LoadsStoredToken(t *testing.T) {
	c := newTestClient(t, "http://example.test/", &fakeStore{token: "stored"})
	assert.Equal(t, "stored", c.Token())
	assert.Equal(t, "http://example.test/api/v1", c.baseURL)
}

func TestNew_StoreErrorIsReturned(t *testing.T) {
	_, err := New(context.Background(), "http://x", &fakeStore{loadErr: errors.New("disk gone")})
	require.ErrorContains(t, err, "disk gone")
}

func TestSetToken_PersistsAndClears(t *testing.T) {
	store := &fakeStore{}
	c := newTestClient(t, "http://x", store)
	ctx := context.Background()

	require.NoError(t, c.SetToken(ctx, "abc"))
	assert.Equal(t, "abc", c.Token())
	assert.Equal(t, "abc", store.token)

	require.NoError(t, c.SetToken(ctx, ""))
	assert.Equal(t, "", c.Token())
	assert.Equal(t, "", store.token)
	assert.Equal(t, 1, store.cleared)
}

func TestSetToken_WithoutStore(t *testing.T) {
	c := newTestClient(t, "http://x", nil)
	require.NoError(t, c.SetToken(context.Background(), "mem"))
	assert.Equal(t, "mem", c.Token())
}

// ---- request path ----

func TestRequest_HeadersAndURL(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `[]`)
	c := newTestClient(t, ts.URL, &fakeStore{token: "t0"}, WithHeader("User-Agent", "rental-test"))

	_, err := c.GetBuyingCriteria(context.Background())
	require.NoError(t, err)

	r := ts.last(t)
	assert.Equal(t, http.MethodGet, r.Method)
	assert.Equal(t, "/api/v1/buying-criteria", r.Path)
	assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
	assert.Equal(t, "Bearer t0", r.Header.Get("Authorization"))
	assert.Equal(t, "rental-test", r.Header.Get("User-Agent"))
	_, err = uuid.Parse(r.Header.Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestRequest_NoAuthorizationWithoutToken(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `[]`)
	c := newTestClient(t, ts.URL, nil)

	_, err := c.GetProperties(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, ts.last(t).Header.Get("Authorization"))
}

func TestRequest_CallerHeaderOverridesContentType(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `[]`)
	c := newTestClient(t, ts.URL, nil, WithHeader("Content-Type", "application/vnd.rental+json"))

	_, err := c.GetBuyingCriteria(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.rental+json", ts.last(t).Header.Get("Content-Type"))
}

func TestRequest_ServerErrorMessage(t *testing.T) {
	ts := newTestServer(t, http.StatusConflict, `{"error":"email already registered"}`)
	c := newTestClient(t, ts.URL, nil)

	_, err := c.Register(context.Background(), models.RegisterRequest{Email: "a@b.com"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRequestFailed))
	assert.Equal(t, "email already registered", err.Error())

	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusConflict, re.Status)
}

func TestRequest_StatusMessageFallback(t *testing.T) {
	ts := newTestServer(t, http.StatusInternalServerError, `{}`)
	c := newTestClient(t, ts.URL, nil)

	_, err := c.GetProperties(context.Background(), nil)
	require.ErrorIs(t, err, ErrRequestFailed)
	assert.Equal(t, "HTTP error! status: 500", err.Error())
}

func TestRequest_InvalidJSONIsLogged(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `<html>oops</html>`)
	var buf bytes.Buffer
	c := newTestClient(t, ts.URL, nil, WithLogger(logging.New(&buf, slog.LevelDebug)))

	_, err := c.GetProperties(context.Background(), nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, buf.String(), "api request failed")
	assert.Contains(t, buf.String(), "endpoint=/properties")
}

func TestRequest_EmptyBodyIsADecodeError(t *testing.T) {
	ts := newTestServer(t, http.StatusNoContent, ``)
	c := newTestClient(t, ts.URL, nil)

	err := c.DeleteComment(context.Background(), uuid.New())
	require.ErrorContains(t, err, "decode response")
}

func TestRequest_TransportError(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `[]`)
	url := ts.URL
	ts.Close()

	var buf bytes.Buffer
	c := newTestClient(t, url, nil, WithLogger(logging.New(&buf, slog.LevelInfo)))

	_, err := c.GetBuyingCriteria(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestRequest_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	c := newTestClient(t, srv.URL, nil, WithTimeout(50*time.Millisecond))

	_, err := c.GetBuyingCriteria(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

// ---- auth ----

func TestLogin_StoresTokenForLaterRequests(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{"token":"t1","user":{"first_name":"A"}}`)
	store := &fakeStore{}
	c := newTestClient(t, ts.URL, store)
	ctx := context.Background()

	resp, err := c.Login(ctx, models.Credentials{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "A", resp.User.FirstName)
	assert.Equal(t, "t1", c.Token())
	assert.Equal(t, "t1", store.token)

	login := ts.last(t)
	assert.Equal(t, "/api/v1/auth/login", login.Path)
	assert.JSONEq(t, `{"email":"a@b.com","password":"x"}`, string(login.Body))

	ts.respond(http.StatusOK, `[]`)
	_, err = c.GetProperties(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer t1", ts.last(t).Header.Get("Authorization"))
}

func TestLogin_FailureKeepsToken(t *testing.T) {
	ts := newTestServer(t, http.StatusUnauthorized, `{"error":"Invalid credentials"}`)
	c := newTestClient(t, ts.URL, &fakeStore{token: "old"})

	_, err := c.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "bad"})
	require.EqualError(t, err, "Invalid credentials")
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "old", c.Token())
}

func TestLogin_ResponseWithoutToken(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{"user":{"first_name":"A"}}`)
	c := newTestClient(t, ts.URL, &fakeStore{token: "old"})

	_, err := c.Login(context.Background(), models.Credentials{})
	require.NoError(t, err)
	assert.Equal(t, "old", c.Token())
}

func TestLogout_ClearsTokenEvenWhenRemoteFails(t *testing.T) {
	ts := newTestServer(t, http.StatusInternalServerError, `{"error":"boom"}`)
	store := &fakeStore{token: "t1"}
	c := newTestClient(t, ts.URL, store)

	err := c.Logout(context.Background())
	require.EqualError(t, err, "boom")
	assert.Equal(t, "", c.Token())
	assert.Equal(t, "", store.token)

	r := ts.last(t)
	assert.Equal(t, http.MethodPost, r.Method)
	assert.Equal(t, "/api/v1/auth/logout", r.Path)
	assert.Equal(t, "Bearer t1", r.Header.Get("Authorization"))
}

func TestLogout_ReportsLocalFailureAfterRemoteSuccess(t *testing.T) {
	ts := newTestServer(t, http.StatusOK, `{"message":"ok"}`)
	c := newTestClient(t, ts.URL, &fakeStore{token: "t1", clearErr: errors.New("locked")})

	require.EqualError(t, c.Logout(context.Background()), "locked")
	assert.Equal(t, "", c.Token())
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&RequestError{Status: http.StatusUnauthorized}))
	assert.False(t, IsUnauthorized(&RequestError{Status: http.StatusForbidden}))
	assert.False(t, IsUnauthorized(errors.New("x")))
}
