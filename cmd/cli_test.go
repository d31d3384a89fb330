package cmd

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"uadm/internal/stubserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startStub(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(stubserver.New(stubserver.Config{Seed: []stubserver.User{
		{ID: "u-1", Name: "Ada Admin", Email: "ada@example.com", Password: "hunter2"},
		{ID: "u-2", Name: "Grace Operator", Email: "grace@example.com", Password: "swordfish"},
	}}))
	t.Cleanup(server.Close)
	return server
}

func executeCLI(t *testing.T, home string, server *httptest.Server, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("UADM_API_BASE_URL", server.URL+"/api")
	t.Setenv("UADM_CREDENTIALS_PATH", filepath.Join(home, ".uadm", "session.toml"))

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func loginCLI(t *testing.T, home string, server *httptest.Server) {
	t.Helper()

	stdout, _, err := executeCLI(t, home, server, "login", "--email", "ada@example.com", "--password", "hunter2")
	require.NoError(t, err)
	require.Contains(t, stdout, "Logged in as ada@example.com")
}

func TestVersionCommand(t *testing.T) {
	home := t.TempDir()
	server := startStub(t)

	stdout, _, err := executeCLI(t, home, server, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestLoginRequiresFlags(t *testing.T) {
	home := t.TempDir()
	server := startStub(t)

	_, _, err := executeCLI(t, home, server, "login", "--email", "ada@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}

func TestLoginRejectedByServer(t *testing.T) {
	home := t.TempDir()
	server := startStub(t)

	_, _, err := executeCLI(t, home, server, "login", "--email", "ada@example.com", "--password", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid email or password.")

	// The failed attempt must not have established a session.
	stdout, _, err := executeCLI(t, home, server, "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "session: unauthenticated")
}

func TestLoginThenWhoami(t *testing.T) {
	home := t.TempDir()
	server := startStub(t)
	loginCLI(t, home, server)

	// The session survives into a fresh command tree, like a page reload.
	stdout, _, err := executeCLI(t, home, server, "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "session: authenticated")
	assert.Contains(t, stdout, "email: ada@example.com")
	assert.Contains(t, stdout, "token expires:")
}

func TestWhoamiWithoutSession(t *testing.T) {
	home := t.TempDir()
	server := startStub(t)

	stdout, _, err := executeCLI(t, home, server, "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "session: unauthenticated")
	assert.NotContains(t, stdout, "email:")
}

func TestUsersListRefusedWithoutSession(t *testing.T) {
	home := t.TempDir()
	server := startStub(t)

	_, _, err := executeCLI(t, home, server, "users", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authenticated")
	assert.Contains(t, err.Error(), "uadm login")
}

func TestUsersListShowsRoster(t *testing.T) {
	home := t.TempDir()
	server := startStub(t)
	loginCLI(t, home, server)

	stdout, _, err := executeCLI(t, home, server, "users", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "User Management")
	assert.Contains(t, stdout, "accounts: 2")
	assert.Contains(t, stdout, "Ada Admin")
	assert.Contains(t, stdout, "grace@example.com")
}

func TestUsersListJSON(t *testing.T) {
	home := t.TempDir()
	server := startStub(t)
	loginCLI(t, home, server)

	stdout, _, err := executeCLI(t, home, server, "users", "list", "--json")
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"ID\": \"u-1\"")
	assert.Contains(t, stdout, "ada@example.com")
}

func TestUsersBlockByID(t *testing.T) {
	home := t.TempDir()
	server := startStub(t)
	loginCLI(t, home, server)

	stdout, _, err := executeCLI(t, home, server, "users", "block", "--id", "u-2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 users blocked")

	stdout, _, err = executeCLI(t, home, server, "users", "list", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "blocked")
}

func TestUsersUnblockByID(t *testing.T) {
	home := t.TempDir()
	server := startStub(t)
	loginCLI(t, home, server)

	_, _, err := executeCLI(t, home, server, "users", "block", "--id", "u-2")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, server, "users", "unblock", "--id", "u-2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 users unblocked")
}

func TestUsersBlockAll(t *testing.T) {
	home := t.TempDir()
	server := startStub(t)
	loginCLI(t, home, server)

	stdout, _, err := executeCLI(t, home, server, "users", "block", "--all")
	require.NoError(t, err)
	assert.Contains(t, stdout, "2 users blocked")
}

func TestUsersBlockRejectsUnknownID(t *testing.T) {
	home := t.TempDir()
	server := startStub(t)
	loginCLI(t, home, server)

	_, _, err := executeCLI(t, home, server, "users", "block", "--id", "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown account id \"ghost\"")
}

func TestUsersBlockWithoutTargets(t *testing.T) {
	home := t.TempDir()
	server := startStub(t)
	loginCLI(t, home, server)

	_, _, err := executeCLI(t, home, server, "users", "block")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no accounts selected")
}

func TestUsersDeleteRequiresConfirmation(t *testing.T) {
	home := t.TempDir()
	server := startStub(t)
	loginCLI(t, home, server)

	_, _, err := executeCLI(t, home, server, "users", "delete", "--id", "u-2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")

	// Nothing was deleted.
	stdout, _, err := executeCLI(t, home, server, "users", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "accounts: 2")
}

func TestUsersDeleteWithConfirmation(t *testing.T) {
	home := t.TempDir()
	server := startStub(t)
	loginCLI(t, home, server)

	stdout, _, err := executeCLI(t, home, server, "users", "delete", "--id", "u-2", "--yes")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 users deleted")

	stdout, _, err = executeCLI(t, home, server, "users", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "accounts: 1")
	assert.NotContains(t, stdout, "Grace Operator")
}

func TestForcedLogoutWhenOperatorBlocksThemselves(t *testing.T) {
	home := t.TempDir()
	server := startStub(t)
	loginCLI(t, home, server)

	// Blocking your own account succeeds server-side, then the follow-up
	// roster refresh comes back 403 and the session is torn down locally.
	_, _, err := executeCLI(t, home, server, "users", "block", "--id", "u-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Your account is blocked.")
	assert.Contains(t, err.Error(), "session cleared")

	stdout, _, err := executeCLI(t, home, server, "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "session: unauthenticated")
}

func TestLogoutEndsSession(t *testing.T) {
	home := t.TempDir()
	server := startStub(t)
	loginCLI(t, home, server)

	stdout, _, err := executeCLI(t, home, server, "logout")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Logged out.")

	_, _, err = executeCLI(t, home, server, "users", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authenticated")
}

func TestRegisterThenLoginAsNewOperator(t *testing.T) {
	home := t.TempDir()
	server := startStub(t)

	stdout, _, err := executeCLI(t, home, server,
		"register", "--name", "New Operator", "--email", "new@example.com", "--password", "letmein")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Registration successful. You can now log in.")

	stdout, _, err = executeCLI(t, home, server, "login", "--email", "new@example.com", "--password", "letmein")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Logged in as new@example.com")
}

func TestForgotPassword(t *testing.T) {
	home := t.TempDir()
	server := startStub(t)

	stdout, _, err := executeCLI(t, home, server, "forgot-password", "--email", "ada@example.com")
	require.NoError(t, err)
	assert.Contains(t, stdout, "If the email exists, a reset link has been sent.")
}
