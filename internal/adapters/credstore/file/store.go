package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"uadm/internal/domain"
	"uadm/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	storeDirMode    = 0o700
	credentialMode  = 0o600
	tempFilePattern = ".session-*.toml.tmp"
	schemaVersion   = 1
)

// Store persists the session credential as a small TOML file, written
// atomically (temp file + rename) so a crash mid-write never leaves a
// truncated credential behind.
type Store struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.CredentialStore = (*Store)(nil)

func NewStore(path string) (*Store, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve credential path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &Store{path: absPath, mu: lockForPath(absPath)}, nil
}

type fileSchema struct {
	Version int    `toml:"version"`
	Token   string `toml:"token"`
	SavedAt string `toml:"saved_at"`
}

func (s *Store) Save(ctx context.Context, cred domain.Credential) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cred.Token == "" {
		return errors.New("credential token is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file := fileSchema{
		Version: schemaVersion,
		Token:   cred.Token,
		SavedAt: formatTime(cred.SavedAt),
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode credential file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), storeDirMode); err != nil {
		return fmt.Errorf("create credential directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp credential file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp credential file: %w", err)
	}

	if err := tempFile.Chmod(credentialMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp credential file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp credential file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace credential file: %w", err)
	}

	cleanup = false

	return nil
}

func (s *Store) Read(ctx context.Context) (domain.Credential, error) {
	if err := ctx.Err(); err != nil {
		return domain.Credential{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Credential{}, domain.ErrNoCredential
		}
		return domain.Credential{}, fmt.Errorf("read credential file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.Credential{}, fmt.Errorf("decode credential file: %w", err)
	}
	if file.Version > schemaVersion {
		return domain.Credential{}, fmt.Errorf("unsupported credential file version %d", file.Version)
	}
	if file.Token == "" {
		return domain.Credential{}, domain.ErrNoCredential
	}

	return domain.Credential{Token: file.Token, SavedAt: parseTime(file.SavedAt)}, nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete credential file: %w", err)
	}

	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}
