package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

func signTestToken(t *testing.T, sub, role string, expires time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"rol": role,
		"exp": expires.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestDecodeClaims(t *testing.T) {
	token := signTestToken(t, "user-1", "JUGADOR", testNow.Add(time.Hour))

	claims, err := DecodeClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "JUGADOR", claims.Role)
	assert.Equal(t, testNow.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestDecodeClaimsGarbage(t *testing.T) {
	_, err := DecodeClaims("not-a-jwt")
	assert.Error(t, err)
}

func TestExpired(t *testing.T) {
	assert.False(t, Expired(signTestToken(t, "u", "r", testNow.Add(time.Minute)), testNow))
	assert.True(t, Expired(signTestToken(t, "u", "r", testNow.Add(-time.Minute)), testNow))
	assert.True(t, Expired(signTestToken(t, "u", "r", testNow), testNow))
	assert.True(t, Expired("garbage", testNow))
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "tokens.json"))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	tokens := Tokens{AccessToken: "a", RefreshToken: "r"}
	require.NoError(t, store.Save(tokens))

	loaded, err = store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, tokens, *loaded)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

type fakeAPI struct {
	loginTokens   Tokens
	loginErr      error
	refreshTokens Tokens
	refreshErr    error
	refreshCalls  int
	logoutCalls   int
}

func (f *fakeAPI) Login(_ context.Context, _, _ string) (Tokens, error) {
	return f.loginTokens, f.loginErr
}

func (f *fakeAPI) Refresh(_ context.Context, _ string) (Tokens, error) {
	f.refreshCalls++
	return f.refreshTokens, f.refreshErr
}

func (f *fakeAPI) Logout(_ context.Context) error {
	f.logoutCalls++
	return nil
}

func newTestSession(t *testing.T, api *fakeAPI) (*Session, *FileStore) {
	t.Helper()
	store := NewFileStore(filepath.Join(t.TempDir(), "tokens.json"))
	clock := clockwork.NewFakeClockAt(testNow)
	return NewSession(api, store, clock, zerolog.Nop()), store
}

func TestSessionLogInPersistsTokens(t *testing.T) {
	api := &fakeAPI{loginTokens: Tokens{AccessToken: "a", RefreshToken: "r"}}
	session, store := newTestSession(t, api)

	require.NoError(t, session.LogIn(context.Background(), "1234567", "secret1"))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "a", loaded.AccessToken)
}

func TestSessionLogInPropagatesAPIErrors(t *testing.T) {
	api := &fakeAPI{loginErr: errors.New("401")}
	session, store := newTestSession(t, api)

	require.Error(t, session.LogIn(context.Background(), "1234567", "wrong"))
	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionAccessTokenFreshToken(t *testing.T) {
	access := signTestToken(t, "u", "r", testNow.Add(time.Hour))
	api := &fakeAPI{}
	session, store := newTestSession(t, api)
	require.NoError(t, store.Save(Tokens{AccessToken: access, RefreshToken: "r"}))

	assert.Equal(t, access, session.AccessToken())
	assert.Zero(t, api.refreshCalls)
}

func TestSessionAccessTokenRefreshesExpired(t *testing.T) {
	expired := signTestToken(t, "u", "r", testNow.Add(-time.Minute))
	fresh := signTestToken(t, "u", "r", testNow.Add(time.Hour))
	api := &fakeAPI{refreshTokens: Tokens{AccessToken: fresh, RefreshToken: "r2"}}
	session, store := newTestSession(t, api)
	require.NoError(t, store.Save(Tokens{AccessToken: expired, RefreshToken: "r1"}))

	assert.Equal(t, fresh, session.AccessToken())
	assert.Equal(t, 1, api.refreshCalls)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "r2", loaded.RefreshToken)
}

func TestSessionAccessTokenNoSession(t *testing.T) {
	session, _ := newTestSession(t, &fakeAPI{})
	assert.Empty(t, session.AccessToken())
}

func TestSessionLogOutClearsTokens(t *testing.T) {
	api := &fakeAPI{}
	session, store := newTestSession(t, api)
	require.NoError(t, store.Save(Tokens{AccessToken: "a"}))

	require.NoError(t, session.LogOut(context.Background()))
	assert.Equal(t, 1, api.logoutCalls)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
