package responses

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/KirkDiggler/pokedex-tui/internal/errors"
)

// BadgerConfig holds the configuration for the Badger repository
type BadgerConfig struct {
	DB *badger.DB
	// TTL for stored documents, zero keeps them forever
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *BadgerConfig) Validate() error {
	if c.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type badgerRepository struct {
	db  *badger.DB
	ttl time.Duration
}

// NewBadger creates a document repository on an open Badger database
func NewBadger(cfg *BadgerConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &badgerRepository{
		db:  cfg.DB,
		ttl: cfg.TTL,
	}, nil
}

// Ensure badgerRepository implements Repository
var _ Repository = (*badgerRepository)(nil)

// OpenBadger opens a Badger database at path, creating the directory if
// needed. An empty path opens an in-memory database. Caller must Close it.
func OpenBadger(path string) (*badger.DB, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(path, 0o750); err != nil {
			return nil, errors.Wrapf(err, "failed to create store directory %s", path)
		}
		opts = badger.DefaultOptions(path)
	}

	// Badger logs to stderr by default, which would draw over the TUI
	db, err := badger.Open(opts.WithLogger(nil))
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to open store at %q", path)
	}

	slog.Debug("opened document store", "path", path, "in_memory", path == "")
	return db, nil
}

func (r *badgerRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.Resource, input.Key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "get canceled")
	}

	var body []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(documentKey(input.Resource, input.Key)))
		if err != nil {
			return err
		}
		body, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, errors.NotFoundf("%s %q not stored", input.Resource, input.Key)
		}
		return nil, errors.Wrapf(err, "failed to get %s %q from store", input.Resource, input.Key)
	}

	return &GetOutput{Body: body}, nil
}

func (r *badgerRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validateKey(input.Resource, input.Key); err != nil {
		return nil, err
	}
	if len(input.Body) == 0 {
		return nil, errors.InvalidArgument(errBodyEmpty)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "put canceled")
	}

	err := r.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(documentKey(input.Resource, input.Key)), input.Body)
		if r.ttl > 0 {
			entry = entry.WithTTL(r.ttl)
		}
		return txn.SetEntry(entry)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store %s %q", input.Resource, input.Key)
	}

	return &PutOutput{}, nil
}
