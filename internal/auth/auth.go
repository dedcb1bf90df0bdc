package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session pairs the bearer token with the user record it was issued for.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Service is the authentication collaborator. The mock client below is the
// only implementation; a real HTTP client would take its place with the
// same shapes.
type Service interface {
	Login(ctx context.Context, email, password string) (Session, error)
	Register(ctx context.Context, name, email, password string) (Session, error)
	Logout(ctx context.Context) error
}

// MockClient simulates a backend: fixed delays, one accepted password, and
// registration that always succeeds. Calls honor context cancellation so a
// torn-down caller never observes a late result.
type MockClient struct {
	LoginDelay  time.Duration
	LogoutDelay time.Duration
	Secret      string
}

const demoPassword = "123456"

func NewMockClient(secret string) *MockClient {
	return &MockClient{
		LoginDelay:  time.Second,
		LogoutDelay: 500 * time.Millisecond,
		Secret:      secret,
	}
}

func (c *MockClient) Login(ctx context.Context, email, password string) (Session, error) {
	if err := wait(ctx, c.LoginDelay); err != nil {
		return Session{}, err
	}

	ok := subtle.ConstantTimeCompare([]byte(password), []byte(demoPassword)) == 1
	if email == "" || !ok {
		return Session{}, ErrInvalidCredentials
	}

	user := User{ID: "1", Email: email, Name: "Test User"}
	token, err := makeToken(user.ID, c.Secret)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, User: user}, nil
}

func (c *MockClient) Register(ctx context.Context, name, email, password string) (Session, error) {
	if err := wait(ctx, c.LoginDelay); err != nil {
		return Session{}, err
	}

	user := User{ID: uuid.NewString(), Email: email, Name: name}
	token, err := makeToken(user.ID, c.Secret)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, User: user}, nil
}

func (c *MockClient) Logout(ctx context.Context) error {
	return wait(ctx, c.LogoutDelay)
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
