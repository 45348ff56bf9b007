package api

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyKinds(t *testing.T) {
	t.Parallel()

	declared := map[int]string{
		401: "Unauthorized",
		403: "Forbidden",
		404: "Not Found",
		409: "Conflict",
		422: "Validation Error",
	}

	tests := []struct {
		name   string
		status int
		authed bool
		want   Kind
	}{
		{name: "401 while authenticated is session expiry", status: 401, authed: true, want: KindSessionExpired},
		{name: "401 while logged out is a rejected credential", status: 401, authed: false, want: KindInvalidCredential},
		{name: "403 while authenticated is forbidden", status: 403, authed: true, want: KindForbidden},
		{name: "403 on login is a rejected credential", status: 403, authed: false, want: KindInvalidCredential},
		{name: "404", status: 404, authed: true, want: KindNotFound},
		{name: "409", status: 409, authed: true, want: KindConflict},
		{name: "422", status: 422, authed: true, want: KindValidationFailed},
		{name: "undeclared 500", status: 500, authed: true, want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := classify(tt.status, declared, nil, tt.authed)
			assert.Equal(t, tt.want, e.Kind)
			assert.Equal(t, tt.status, e.Status)
		})
	}
}

func TestClassifyPrefersDeclaredLabel(t *testing.T) {
	t.Parallel()

	e := classify(409, map[int]string{409: "Duplicate name"}, nil, true)
	assert.Equal(t, "Duplicate name", e.Label)

	e = classify(409, nil, nil, true)
	assert.Equal(t, http.StatusText(409), e.Label)
}

func TestClassifyExtractsDetailEnvelopes(t *testing.T) {
	t.Parallel()

	e := classify(404, nil, []byte(`{"detail": "Account not found"}`), true)
	assert.Equal(t, "Account not found", e.Detail)

	e = classify(404, nil, []byte(`{"message": "gone"}`), true)
	assert.Equal(t, "gone", e.Detail)

	e = classify(404, nil, []byte("plain text body"), true)
	assert.Equal(t, "plain text body", e.Detail)
}

func TestDecodeValidationFields(t *testing.T) {
	t.Parallel()

	structured := []byte(`{"detail": [
		{"loc": ["body", "password"], "msg": "too short", "type": "value_error"},
		{"loc": ["body", "data", "api_key"], "msg": "field required", "type": "value_error.missing"},
		{"loc": ["query", "per_page"], "msg": "must be positive", "type": "value_error"}
	]}`)

	fields := decodeValidationFields(structured)
	require.NotNil(t, fields)
	assert.Equal(t, []string{"too short"}, fields["password"])
	assert.Equal(t, []string{"field required"}, fields["data.api_key"])
	assert.Equal(t, []string{"must be positive"}, fields["per_page"])

	flat := decodeValidationFields([]byte(`{"password": ["too short", "needs a digit"]}`))
	assert.Equal(t, map[string][]string{"password": {"too short", "needs a digit"}}, flat)

	assert.Nil(t, decodeValidationFields([]byte(`"not an object"`)))
	assert.Nil(t, decodeValidationFields(nil))
}

func TestErrorStringFormats(t *testing.T) {
	t.Parallel()

	e := &Error{Kind: KindNotFound, Status: 404, Label: "Not Found", Detail: "User not found"}
	assert.Equal(t, "Not Found (status 404): User not found", e.Error())

	e = &Error{Kind: KindConflict, Status: 409, Label: "Conflict"}
	assert.Equal(t, "Conflict (status 409)", e.Error())

	e = transportFailure(errors.New("dial tcp: connection refused"))
	assert.Contains(t, e.Error(), "connection refused")
	assert.Zero(t, e.Status)
}

func TestTruncateNeverSplitsARune(t *testing.T) {
	t.Parallel()

	// "é" is two bytes; an odd cut point lands mid-rune.
	s := strings.Repeat("é", 10)
	got := truncate(s, 5)
	assert.Equal(t, strings.Repeat("é", 2)+"...", got)
	assert.True(t, utf8.ValidString(got))

	assert.Equal(t, "abc", truncate("abc", 5))

	long := strings.Repeat("ü", 150)
	detail := decodeErrorDetail([]byte(long))
	assert.True(t, utf8.ValidString(detail))
	assert.True(t, strings.HasSuffix(detail, "..."))
}

func TestKindPredicatesDoNotMatchCancellation(t *testing.T) {
	t.Parallel()

	assert.False(t, IsTransportFailure(ErrCancelled))
	assert.False(t, IsSessionExpired(ErrCancelled))
	assert.False(t, IsInvalidCredential(ErrCancelled))
}
