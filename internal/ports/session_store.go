package ports

import "context"

// SessionStore persists the bearer token across runs. Load returns
// ("", nil) when no session has been saved; that means logged out.
type SessionStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
