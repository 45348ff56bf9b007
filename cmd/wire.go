package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/accelleon/cloudmgmt/internal/adapters/sessionfile"
	"github.com/accelleon/cloudmgmt/internal/api"
	"github.com/accelleon/cloudmgmt/internal/ports"
	"github.com/accelleon/cloudmgmt/internal/session"
)

const defaultBaseURL = "http://127.0.0.1:8000/api/v1"

type app struct {
	client  *api.Client
	session *session.Session
}

func wireApp() (*app, error) {
	cfg := viper.New()
	cfg.SetDefault("api.base_url", defaultBaseURL)

	store, err := sessionfile.NewDefault(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	sess, err := session.Load(context.Background(), store, ports.SystemClock{})
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	client, err := api.New(api.Config{
		BaseURL:  envOrDefault("CLOUDMGMT_API_URL", cfg.GetString("api.base_url")),
		Session:  sess,
		Notifier: cliNotifier{out: os.Stderr},
		Logger:   newLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("wire api client: %w", err)
	}

	return &app{client: client, session: sess}, nil
}

func newLogger() zerolog.Logger {
	if os.Getenv("CLOUDMGMT_DEBUG") == "" {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
}

// cliNotifier is the expiry sink for terminal use: the pipeline fires
// it once when a 401 revokes the session.
type cliNotifier struct {
	out io.Writer
}

func (n cliNotifier) NotifySessionExpired() {
	_, _ = fmt.Fprintln(n.out, "Your session has expired.")
}

func (n cliNotifier) RedirectToLogin() {
	_, _ = fmt.Fprintln(n.out, "Run 'cloudmgmt login' to start a new session.")
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
