package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginStoresSessionAndGreetsUser(t *testing.T) {
	token := testToken(t, time.Now().Add(time.Hour))
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		_, _ = fmt.Fprintf(w, `{"access_token":%q,"token_type":"bearer","twofa_enabled":false}`, token)
	}))
	defer server.Close()

	home := t.TempDir()
	stdout, _, err := executeCLI(t, home, server.URL, "login", "-u", "admin", "-p", "secret")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Logged in as admin")

	data, err := os.ReadFile(sessionPath(home))
	require.NoError(t, err)
	assert.Contains(t, string(data), token)
}

func TestLoginRequiresUsernameAndPassword(t *testing.T) {
	home := t.TempDir()
	_, _, err := executeCLI(t, home, "http://127.0.0.1:1", "login")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s)")
}

func TestLoginSurfacesTwoFactorChallenge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"twofarequired": true}`)
	}))
	defer server.Close()

	home := t.TempDir()
	_, _, err := executeCLI(t, home, server.URL, "login", "-u", "admin", "-p", "secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--twofa")
}

func TestWhoamiSendsBearerTokenAndRendersUser(t *testing.T) {
	token := writeSessionFixture(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me", r.URL.Path)
		assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
		_, _ = fmt.Fprint(w, `{"id":1,"username":"admin","first_name":"Ada","last_name":"Lovelace","is_admin":true}`)
	}))
	defer server.Close()

	stdout, _, err := executeCLI(t, os.Getenv("HOME"), server.URL, "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "admin (Ada Lovelace)")
	assert.Contains(t, stdout, "Role: admin")
}

func TestWhoamiJSONOutput(t *testing.T) {
	writeSessionFixture(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"id":1,"username":"admin","first_name":"","last_name":"","is_admin":false}`)
	}))
	defer server.Close()

	stdout, _, err := executeCLI(t, os.Getenv("HOME"), server.URL, "whoami", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, `"username": "admin"`)
}

func TestExpiredSessionOnServerDropsLocalSession(t *testing.T) {
	writeSessionFixture(t)
	home := os.Getenv("HOME")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = fmt.Fprint(w, `{"detail":"Could not validate credentials"}`)
	}))
	defer server.Close()

	_, _, err := executeCLI(t, home, server.URL, "whoami")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Could not validate credentials")

	_, statErr := os.Stat(sessionPath(home))
	assert.True(t, os.IsNotExist(statErr))
}

func TestLogoutRemovesSessionFile(t *testing.T) {
	writeSessionFixture(t)
	home := os.Getenv("HOME")

	stdout, _, err := executeCLI(t, home, "http://127.0.0.1:1", "logout")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Logged out")

	_, statErr := os.Stat(sessionPath(home))
	assert.True(t, os.IsNotExist(statErr))
}

func TestUserListRendersTable(t *testing.T) {
	writeSessionFixture(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "username", r.URL.Query().Get("sort"))
		assert.Empty(t, r.URL.Query().Get("is_admin"))
		_, _ = fmt.Fprint(w, `{"results":[{"id":1,"username":"admin","first_name":"Ada","last_name":"Lovelace","is_admin":true,"twofa_enabled":false}],"page":2,"per_page":25,"total":26,"order":"asc"}`)
	}))
	defer server.Close()

	stdout, _, err := executeCLI(t, os.Getenv("HOME"), server.URL, "user", "list", "--page", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "USERNAME")
	assert.Contains(t, stdout, "admin")
	assert.Contains(t, stdout, "Ada Lovelace")
}

func TestUserGetRejectsNonNumericID(t *testing.T) {
	writeSessionFixture(t)

	_, _, err := executeCLI(t, os.Getenv("HOME"), "http://127.0.0.1:1", "user", "get", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid id "alice"`)
}

func TestBillingListShowsFetchSpinnerMessage(t *testing.T) {
	writeSessionFixture(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = fmt.Fprint(w, `{"results":[],"page":1,"per_page":25,"total":0,"order":"asc"}`)
	}))
	defer server.Close()

	stdout, stderr, err := executeCLI(t, os.Getenv("HOME"), server.URL, "billing", "list")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Fetching billing periods")
	assert.Contains(t, stdout, "(none)")
}

func TestMetricCommandFiltersByAccount(t *testing.T) {
	writeSessionFixture(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/metric/prod-aws", r.URL.Path)
		assert.Equal(t, "day", r.URL.Query().Get("granularity"))
		_, _ = fmt.Fprint(w, `{"results":[{"account_id":4,"instances":12,"time":"2026-03-01T00:00:00Z"}],"granularity":"day","start_date":"2026-03-01T00:00:00Z","end_date":"2026-03-02T00:00:00Z"}`)
	}))
	defer server.Close()

	stdout, _, err := executeCLI(t, os.Getenv("HOME"), server.URL,
		"metric", "--account", "prod-aws", "--granularity", "day")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Metrics (day)")
	assert.Contains(t, stdout, "12")
}

func TestProfileUpdateShowsTwoFactorProvisioningURI(t *testing.T) {
	writeSessionFixture(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/me", r.URL.Path)
		_, _ = fmt.Fprint(w, `{"id":1,"username":"admin","first_name":"","last_name":"","is_admin":false,"twofa_enabled":false,"twofa_uri":"otpauth://totp/cloudmgmt:admin?secret=ABC123"}`)
	}))
	defer server.Close()

	stdout, _, err := executeCLI(t, os.Getenv("HOME"), server.URL, "profile", "--twofa")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Updated profile for admin")
	assert.Contains(t, stdout, "otpauth://totp/cloudmgmt:admin")
}

func TestProfilePasswordChangeRequiresOldPassword(t *testing.T) {
	writeSessionFixture(t)

	_, _, err := executeCLI(t, os.Getenv("HOME"), "http://127.0.0.1:1", "profile", "--password", "new-pass")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "old-password")
}

func TestValidationErrorSurfacesFieldLabel(t *testing.T) {
	writeSessionFixture(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = fmt.Fprint(w, `{"detail":[{"loc":["body","password"],"msg":"field required","type":"value_error.missing"}]}`)
	}))
	defer server.Close()

	_, _, err := executeCLI(t, os.Getenv("HOME"), server.URL,
		"user", "create", "-u", "bob", "-p", "pw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Validation Error")
}

func executeCLI(t *testing.T, home, baseURL string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("CLOUDMGMT_API_URL", baseURL)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// writeSessionFixture persists a live session under a fresh HOME and
// returns its token.
func writeSessionFixture(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)

	token := testToken(t, time.Now().Add(time.Hour))
	dir := filepath.Join(home, ".cloudmgmt")
	require.NoError(t, os.MkdirAll(dir, 0o700))

	contents := fmt.Sprintf("version = 1\ntoken = %q\n", token)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.toml"), []byte(contents), 0o600))

	return token
}

func sessionPath(home string) string {
	return filepath.Join(home, ".cloudmgmt", "session.toml")
}

func testToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}
