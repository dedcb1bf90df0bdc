package auth

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// SessionStore is the capability set components get instead of ambient
// global state: read, write, clear.
type SessionStore interface {
	GetSession() (Session, bool, error)
	SetSession(Session) error
	ClearSession() error
}

// FileStore keeps the session as a small JSON file, the local-storage
// analog for the token and serialized user record.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) GetSession() (Session, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Session{}, false, nil
		}
		return Session{}, false, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, false, err
	}
	return sess, sess.Token != "", nil
}

func (s *FileStore) SetSession(sess Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) ClearSession() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Manager couples the auth service with the session store so the session
// is written only when a call actually succeeds. A cancelled context means
// no write at all.
type Manager struct {
	client Service
	store  SessionStore
	secret string
}

func NewManager(client Service, store SessionStore, secret string) *Manager {
	return &Manager{client: client, store: store, secret: secret}
}

func (m *Manager) Login(ctx context.Context, email, password string) (Session, error) {
	sess, err := m.client.Login(ctx, email, password)
	if err != nil {
		return Session{}, err
	}
	if err := m.store.SetSession(sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (m *Manager) Register(ctx context.Context, name, email, password string) (Session, error) {
	sess, err := m.client.Register(ctx, name, email, password)
	if err != nil {
		return Session{}, err
	}
	if err := m.store.SetSession(sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (m *Manager) Logout(ctx context.Context) error {
	if err := m.client.Logout(ctx); err != nil {
		return err
	}
	return m.store.ClearSession()
}

// Current returns the stored session if its token still verifies; an
// expired or tampered token reads as logged out.
func (m *Manager) Current() (Session, bool) {
	sess, ok, err := m.store.GetSession()
	if err != nil || !ok {
		return Session{}, false
	}
	if _, err := ParseToken(sess.Token, m.secret); err != nil {
		return Session{}, false
	}
	return sess, true
}
