package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"uadm/internal/domain"
	"uadm/internal/ports"
)

// Entry is the fixed pass(1) entry holding the session credential.
const Entry = "uadm/session"

var ErrUnavailable = errors.New("pass command unavailable")

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

// Store keeps the credential in the operator's pass password store. The
// entry holds the token on the first line and the save timestamp on the
// second.
type Store struct {
	run runFunc
}

var _ ports.CredentialStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{run: runPassCommand}
}

func (s *Store) Save(ctx context.Context, cred domain.Credential) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cred.Token == "" {
		return errors.New("credential token is empty")
	}

	input := cred.Token + "\n"
	if !cred.SavedAt.IsZero() {
		input += cred.SavedAt.Format(time.RFC3339) + "\n"
	}

	_, stderr, err := s.run(ctx, input, "insert", "-m", "-f", Entry)
	if err != nil {
		return formatError("save", err, stderr)
	}

	return nil
}

func (s *Store) Read(ctx context.Context) (domain.Credential, error) {
	if err := ctx.Err(); err != nil {
		return domain.Credential{}, err
	}

	stdout, stderr, err := s.run(ctx, "", "show", Entry)
	if err != nil {
		if isMissingEntry(stderr) {
			return domain.Credential{}, domain.ErrNoCredential
		}
		return domain.Credential{}, formatError("read", err, stderr)
	}

	lines := strings.Split(strings.ReplaceAll(stdout, "\r\n", "\n"), "\n")
	token := strings.TrimSpace(lines[0])
	if token == "" {
		return domain.Credential{}, domain.ErrNoCredential
	}

	cred := domain.Credential{Token: token}
	if len(lines) > 1 {
		if savedAt, err := time.Parse(time.RFC3339, strings.TrimSpace(lines[1])); err == nil {
			cred.SavedAt = savedAt
		}
	}

	return cred, nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, "", "rm", "-f", Entry)
	if err != nil {
		if isMissingEntry(stderr) {
			return nil
		}
		return formatError("clear", err, stderr)
	}

	return nil
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	path, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func isMissingEntry(stderr string) bool {
	return strings.Contains(stderr, "is not in the password store")
}

func formatError(op string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, Entry, err)
	}

	return fmt.Errorf("pass %s %q: %w: %s", op, Entry, err, stderr)
}
