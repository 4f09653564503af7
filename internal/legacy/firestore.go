// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package legacy

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// FirestoreSource scans collections of a Firestore project.
type FirestoreSource struct {
	client *firestore.Client
}

// NewFirestoreSource connects to projectID. An empty credentialsFile uses
// Application Default Credentials.
func NewFirestoreSource(ctx context.Context, projectID, credentialsFile string) (*FirestoreSource, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("legacy: firestore client: %w", err)
	}

	return &FirestoreSource{client: client}, nil
}

func (s *FirestoreSource) Documents(ctx context.Context, collection string) ([]Document, error) {
	it := s.client.Collection(collection).Documents(ctx)
	defer it.Stop()

	var documents []Document
	for {
		snapshot, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("legacy: scan %s: %w", collection, err)
		}

		documents = append(documents, Document{ID: snapshot.Ref.ID, Data: snapshot.Data()})
	}

	return documents, nil
}

func (s *FirestoreSource) Close() error {
	return s.client.Close()
}
