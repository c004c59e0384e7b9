// Package store persists named diagram sources for the server's
// gallery endpoints.
//
// Two backends are provided: an in-memory store for development and
// testing, and a MongoDB store for deployments that need durability.
package store

import (
	"context"
	"encoding/json"
	"time"
)

// Diagram is one saved diagram source with its metadata.
type Diagram struct {
	ID        string          `bson:"_id" json:"id"`
	Name      string          `bson:"name" json:"name"`
	Kind      string          `bson:"kind" json:"kind"`
	Source    json.RawMessage `bson:"source" json:"source"`
	CreatedAt time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time       `bson:"updated_at" json:"updated_at"`
}

// Store is the interface for diagram persistence backends.
type Store interface {
	// Put inserts or replaces a diagram by ID.
	Put(ctx context.Context, d *Diagram) error

	// Get retrieves a diagram by ID. A missing ID fails with
	// NOT_FOUND.
	Get(ctx context.Context, id string) (*Diagram, error)

	// List returns all diagrams, newest first.
	List(ctx context.Context) ([]*Diagram, error)

	// Delete removes a diagram by ID. A missing ID fails with
	// NOT_FOUND.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
