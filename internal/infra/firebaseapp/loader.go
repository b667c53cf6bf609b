// Package firebaseapp owns the process-wide Firebase app shared by the
// Firestore card store and Firebase ID token verification.
package firebaseapp

import (
	"context"
	"log/slog"
	"sync"

	"bizcard/config"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// Loader initialises the Firebase app on first use, so deployments that use
// neither Firestore nor Firebase Auth never need Firebase credentials.
type Loader struct {
	cfg    *config.FirebaseConfig
	logger *slog.Logger

	once sync.Once
	app  *firebase.App
	err  error
}

// NewLoader creates a lazy Firebase app loader
func NewLoader(cfg *config.Config, logger *slog.Logger) *Loader {
	return &Loader{
		cfg:    cfg.Firebase,
		logger: logger,
	}
}

// App returns the shared Firebase app, creating it on the first call
func (l *Loader) App(ctx context.Context) (*firebase.App, error) {
	l.once.Do(func() {
		l.app, l.err = l.newApp(ctx)
	})

	return l.app, l.err
}

func (l *Loader) newApp(ctx context.Context) (*firebase.App, error) {
	var (
		fbConfig *firebase.Config
		opts     []option.ClientOption
	)

	if l.cfg != nil {
		if l.cfg.ProjectID != "" {
			fbConfig = &firebase.Config{ProjectID: l.cfg.ProjectID}
		}
		if l.cfg.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(l.cfg.CredentialsPath))
		}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	l.logger.Info("Firebase app initialized", slog.Bool("explicitCredentials", len(opts) > 0))

	return app, nil
}
