// Package responses stores catalog documents between runs so a restart does
// not refetch everything from the public API.
package responses

import (
	"context"

	"github.com/KirkDiggler/pokedex-tui/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=responsesmock github.com/KirkDiggler/pokedex-tui/internal/repositories/responses Repository

const (
	// Error messages
	errResourceEmpty = "resource cannot be empty"
	errKeyEmpty      = "key cannot be empty"
	errBodyEmpty     = "body cannot be empty"
)

// GetInput contains parameters for retrieving a document
type GetInput struct {
	Resource string
	Key      string
}

// GetOutput contains the stored document
type GetOutput struct {
	Body []byte
}

// PutInput contains parameters for storing a document
type PutInput struct {
	Resource string
	Key      string
	Body     []byte
}

// PutOutput contains the result of storing a document
type PutOutput struct{}

// Repository defines the interface for document storage operations
type Repository interface {
	// Get returns the document for resource/key, or NotFound
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores the document for resource/key, replacing any previous one
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}

func validateKey(resource, key string) error {
	if resource == "" {
		return errors.InvalidArgument(errResourceEmpty)
	}
	if key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}
	return nil
}

// DocumentVersion is the encoding of stored documents. Bump it when the
// entity records change shape so older documents read as misses.
const DocumentVersion = "v1"

// documentKey is version:resource:key, e.g. "v1:move:thunderbolt"
func documentKey(resource, key string) string {
	return DocumentVersion + ":" + resource + ":" + key
}
