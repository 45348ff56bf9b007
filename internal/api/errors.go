package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

// ErrCancelled is the terminal outcome of a cancelled request. It is a
// distinct state, not a failure: it is never wrapped in an *Error and
// generic error handlers should not report it.
var ErrCancelled = errors.New("request cancelled")

// Kind classifies a normalized request failure.
type Kind string

const (
	// KindInvalidCredential is a 401/403 on a call made without a
	// session, i.e. the login attempt itself was rejected.
	KindInvalidCredential Kind = "invalid_credential"
	// KindSessionExpired is a 401 on a call made while authenticated.
	KindSessionExpired   Kind = "session_expired"
	KindForbidden        Kind = "forbidden"
	KindNotFound         Kind = "not_found"
	KindConflict         Kind = "conflict"
	KindValidationFailed Kind = "validation_failed"
	// KindTransportFailure means no response was received; Status is 0.
	KindTransportFailure Kind = "transport_failure"
	KindUnknown          Kind = "unknown"
)

// Error is the normalized failure every call site receives. Label comes
// from the descriptor's status map when the status was declared there.
type Error struct {
	Kind   Kind
	Status int
	Label  string
	Detail string
	// Fields holds the 422 validation body, field path to messages.
	Fields map[string][]string
}

func (e *Error) Error() string {
	if e.Kind == KindTransportFailure {
		return fmt.Sprintf("request failed: %s", e.Detail)
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s (status %d): %s", e.Label, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s (status %d)", e.Label, e.Status)
}

func IsInvalidCredential(err error) bool { return errorOfKind(err, KindInvalidCredential) }
func IsSessionExpired(err error) bool    { return errorOfKind(err, KindSessionExpired) }
func IsForbidden(err error) bool         { return errorOfKind(err, KindForbidden) }
func IsNotFound(err error) bool          { return errorOfKind(err, KindNotFound) }
func IsConflict(err error) bool          { return errorOfKind(err, KindConflict) }
func IsValidationFailed(err error) bool  { return errorOfKind(err, KindValidationFailed) }
func IsTransportFailure(err error) bool  { return errorOfKind(err, KindTransportFailure) }

func errorOfKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// classify translates a settled non-2xx response into an *Error. authed
// is the session state observed when the request was dispatched; it
// decides whether a 401/403 means a rejected login or a revoked session.
func classify(status int, declared map[int]string, body []byte, authed bool) *Error {
	e := &Error{
		Status: status,
		Label:  http.StatusText(status),
	}
	if label, ok := declared[status]; ok {
		e.Label = label
	}

	switch status {
	case http.StatusUnauthorized:
		e.Kind = KindSessionExpired
		if !authed {
			e.Kind = KindInvalidCredential
		}
	case http.StatusForbidden:
		e.Kind = KindForbidden
		if !authed {
			e.Kind = KindInvalidCredential
		}
	case http.StatusNotFound:
		e.Kind = KindNotFound
	case http.StatusConflict:
		e.Kind = KindConflict
	case http.StatusUnprocessableEntity:
		e.Kind = KindValidationFailed
		e.Fields = decodeValidationFields(body)
	default:
		e.Kind = KindUnknown
	}

	if e.Kind != KindValidationFailed {
		e.Detail = decodeErrorDetail(body)
	}

	return e
}

func transportFailure(err error) *Error {
	return &Error{
		Kind:   KindTransportFailure,
		Label:  "Transport Failure",
		Detail: err.Error(),
	}
}

// fastapiValidationError is one entry of the backend's native 422 body:
// {"detail": [{"loc": ["body", "password"], "msg": "too short", ...}]}.
type fastapiValidationError struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// decodeValidationFields normalizes a 422 body into field -> messages.
// Accepts both the FastAPI detail array and a flat map of the same
// shape; anything else yields nil and the raw body is dropped.
func decodeValidationFields(body []byte) map[string][]string {
	var structured struct {
		Detail []fastapiValidationError `json:"detail"`
	}
	if err := json.Unmarshal(body, &structured); err == nil && len(structured.Detail) > 0 {
		fields := make(map[string][]string, len(structured.Detail))
		for _, entry := range structured.Detail {
			field := fieldPath(entry.Loc)
			if field == "" || entry.Msg == "" {
				continue
			}
			fields[field] = append(fields[field], entry.Msg)
		}
		if len(fields) > 0 {
			return fields
		}
	}

	var flat map[string][]string
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 {
		return flat
	}

	return nil
}

// fieldPath joins a FastAPI loc into a dotted path, dropping the
// leading request-section segment ("body", "query", "path").
func fieldPath(loc []any) string {
	parts := make([]string, 0, len(loc))
	for i, segment := range loc {
		s := fmt.Sprint(segment)
		if i == 0 && (s == "body" || s == "query" || s == "path") {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ".")
}

// decodeErrorDetail pulls a human-readable message out of an error body,
// trying the backend's two envelopes before falling back to raw text.
func decodeErrorDetail(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var detail struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &detail); err == nil {
		if detail.Detail != "" {
			return detail.Detail
		}
		if detail.Message != "" {
			return detail.Message
		}
	}

	return truncate(strings.TrimSpace(string(body)), 200)
}

// truncate cuts at a rune boundary so a multi-byte character is never
// split in the middle.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
