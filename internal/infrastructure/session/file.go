package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ibraschwan/karagul/internal/core/domain"
	"github.com/ibraschwan/karagul/internal/core/ports"
)

const (
	tokenFile = "jwt"
	userFile  = "user.json"
)

// FileStore persists a single credential pair in a directory, one file per
// key — the workstation analogue of browser local storage. Reads degrade
// gracefully: any I/O problem (missing directory, unreadable file) reports
// an anonymous session instead of failing.
type FileStore struct {
	dir string
}

var _ ports.SessionStore = (*FileStore)(nil)

// NewFileStore stores the session under dir. When dir is empty the platform
// user config directory is used; when even that is unavailable the store
// stays valid but holds nothing.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		if base, err := os.UserConfigDir(); err == nil {
			dir = filepath.Join(base, "karagul")
		}
	}
	return &FileStore{dir: dir}
}

func (s *FileStore) Save(_ context.Context, token string, user *domain.User) error {
	if s.dir == "" {
		return nil
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	snapshot, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, userFile), snapshot, 0o600)
}

func (s *FileStore) Token(context.Context) string {
	if s.dir == "" {
		return ""
	}
	raw, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return ""
	}
	return string(raw)
}

func (s *FileStore) User(context.Context) *domain.User {
	if s.dir == "" {
		return nil
	}
	raw, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		return nil
	}
	var u domain.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil
	}
	return &u
}

func (s *FileStore) Clear(context.Context) {
	if s.dir == "" {
		return
	}
	_ = os.Remove(filepath.Join(s.dir, tokenFile))
	_ = os.Remove(filepath.Join(s.dir, userFile))
}
