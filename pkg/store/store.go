// Package store persists tree documents under generated identifiers.
//
// Backends:
//   - [MemoryStore]: process-local, for tests and single-instance servers
//   - [FileStore]: one JSON file per document, for CLI usage
//   - [MongoStore]: MongoDB collection, for shared deployments
//
// Identifiers are random UUIDs. Every backend validates an identifier
// before touching storage, so malformed ids fail with INVALID_ID and
// unknown ids with NOT_FOUND.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/texttree/pkg/errors"
	treeio "github.com/matzehuels/texttree/pkg/io"
)

// Record is a stored tree document.
type Record struct {
	ID        string          `json:"id" bson:"_id"`
	Tree      treeio.Document `json:"tree" bson:"tree"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
}

// Store is the interface for document storage backends.
type Store interface {
	// Put stores doc under a new identifier and returns the record.
	Put(ctx context.Context, doc treeio.Document) (*Record, error)

	// Get returns the record with the given id.
	Get(ctx context.Context, id string) (*Record, error)

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}

// NewRecord validates doc and wraps it in a record with a fresh id.
func NewRecord(doc treeio.Document) (*Record, error) {
	if _, err := treeio.FromDocument(doc); err != nil {
		return nil, err
	}
	return &Record{
		ID:        uuid.NewString(),
		Tree:      doc,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// ValidateID checks that id is a canonical UUID.
func ValidateID(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil || parsed.String() != id {
		return errors.New(errors.ErrCodeInvalidID, "invalid tree id %q", id)
	}
	return nil
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeNotFound, "tree %s not found", id)
}
