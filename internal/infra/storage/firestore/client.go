package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Config параметры подключения к Firestore
type Config struct {
	ProjectID       string
	CredentialsFile string // Пусто - Application Default Credentials
	JobsCollection  string
	UsersCollection string
}

// NewClient создает клиента Firestore через Firebase App
func NewClient(ctx context.Context, cfg Config) (*firestore.Client, error) {
	opts := make([]option.ClientOption, 0, 1)
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: firebase app: %v", ErrInit, err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: firestore client: %v", ErrInit, err)
	}

	return client, nil
}
