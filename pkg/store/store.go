// Package store provides persistence for gallery documents.
//
// Two backends implement the Store interface:
//   - MemoryStore: in-memory storage for development and testing
//   - MongoStore: MongoDB-backed storage for server deployments
//
// Stores hold the source of truth for galleries; plans and artifacts are
// derived from them through the pipeline and live in the cache instead.
//
// # Usage
//
// Create a store and save a gallery:
//
//	st := store.NewMemoryStore()
//	if err := st.Put(ctx, g); err != nil {
//	    return err
//	}
//
//	g, err := st.Get(ctx, id)
//	if errors.Is(err, store.ErrNotFound) {
//	    // Gallery doesn't exist
//	}
package store

import (
	"context"
	"errors"

	"github.com/dangsayz/spreadpress/pkg/gallery"
)

// ErrNotFound is returned when a gallery does not exist.
var ErrNotFound = errors.New("gallery not found")

// Store is the interface for gallery storage backends.
type Store interface {
	// Get retrieves a gallery by ID.
	// Returns ErrNotFound if the gallery doesn't exist.
	Get(ctx context.Context, id string) (gallery.Gallery, error)

	// Put stores a gallery, replacing any existing gallery with the same ID.
	Put(ctx context.Context, g gallery.Gallery) error

	// Delete removes a gallery. Deleting a missing gallery is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored galleries.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
