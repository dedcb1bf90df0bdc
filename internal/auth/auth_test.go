package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// fastClient drops the simulated latency so tests stay quick.
func fastClient() *MockClient {
	return &MockClient{
		LoginDelay:  time.Millisecond,
		LogoutDelay: time.Millisecond,
		Secret:      testSecret,
	}
}

func TestLogin(t *testing.T) {
	c := fastClient()
	ctx := context.Background()

	sess, err := c.Login(ctx, "user@example.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", sess.User.Email)
	assert.Equal(t, "Test User", sess.User.Name)
	assert.NotEmpty(t, sess.Token)

	_, err = c.Login(ctx, "user@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = c.Login(ctx, "", "123456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister(t *testing.T) {
	c := fastClient()

	sess, err := c.Register(context.Background(), "Ada", "ada@example.com", "anything")
	require.NoError(t, err)
	assert.Equal(t, "Ada", sess.User.Name)
	assert.NotEmpty(t, sess.User.ID)
	assert.NotEmpty(t, sess.Token)
}

func TestLoginCancelled(t *testing.T) {
	c := fastClient()
	c.LoginDelay = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Login(ctx, "user@example.com", "123456")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := makeToken("42", testSecret)
	require.NoError(t, err)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)

	_, err = ParseToken("not-a-token", testSecret)
	assert.Error(t, err)
}

func TestFileStore(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	_, ok, err := store.GetSession()
	require.NoError(t, err)
	assert.False(t, ok)

	want := Session{Token: "tok", User: User{ID: "1", Email: "a@b.c", Name: "A"}}
	require.NoError(t, store.SetSession(want))

	got, ok, err := store.GetSession()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)

	require.NoError(t, store.ClearSession())
	_, ok, err = store.GetSession()
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing twice tolerates the missing file.
	assert.NoError(t, store.ClearSession())
}

func TestManagerLoginPersists(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	m := NewManager(fastClient(), store, testSecret)

	sess, err := m.Login(context.Background(), "user@example.com", "123456")
	require.NoError(t, err)

	cur, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, sess.Token, cur.Token)

	stored, ok, err := store.GetSession()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sess.User, stored.User)

	require.NoError(t, m.Logout(context.Background()))
	_, ok = m.Current()
	assert.False(t, ok)
}

func TestManagerFailedLoginWritesNothing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	m := NewManager(fastClient(), store, testSecret)

	_, err := m.Login(context.Background(), "user@example.com", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, ok, err := store.GetSession()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManagerCancelledLoginWritesNothing(t *testing.T) {
	client := fastClient()
	client.LoginDelay = time.Second
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	m := NewManager(client, store, testSecret)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := m.Login(ctx, "user@example.com", "123456")
	assert.ErrorIs(t, err, context.Canceled)

	// A cancelled login never leaves a session behind.
	_, ok, err := store.GetSession()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManagerCurrentRejectsTamperedToken(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.SetSession(Session{Token: "forged", User: User{ID: "1"}}))

	m := NewManager(fastClient(), store, testSecret)
	_, ok := m.Current()
	assert.False(t, ok)
}
