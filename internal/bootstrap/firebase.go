package bootstrap

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	fbauth "firebase.google.com/go/v4/auth"

	"github.com/braetspilscafeen/go-catalog-backend/config"
	"github.com/braetspilscafeen/go-catalog-backend/internal/auth"
)

// FirebaseClients bundles the two clients derived from one Admin SDK app.
type FirebaseClients struct {
	Auth      *fbauth.Client
	Firestore *firestore.Client
}

// OpenFirebase initializes the Admin SDK and derives the Auth and
// Firestore clients from it.
func OpenFirebase(ctx context.Context, cfg *config.FirebaseConfig) (*FirebaseClients, error) {
	app, authClient, err := auth.InitializeFirebase(cfg)
	if err != nil {
		return nil, err
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	return &FirebaseClients{Auth: authClient, Firestore: fsClient}, nil
}
