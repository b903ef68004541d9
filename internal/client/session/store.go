// Package session persists the client's bearer token across process restarts.
package session

import (
	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
)

var (
	bucketSession = []byte("session")
	keyToken      = []byte("token")
)

// TokenStore is the session persistence contract the API client depends on.
type TokenStore interface {
	// Token returns the stored token and whether one is present.
	Token() (string, bool)

	// SetToken stores the token, overwriting any prior value.
	SetToken(token string) error

	// Clear removes the stored token.
	Clear() error
}

// Store is a bbolt-backed single-value token store. No expiry is tracked
// locally; validity is determined only by asking the server.
type Store struct {
	db *bbolt.DB
}

// New opens (or creates) the session database at path.
func New(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open session store")
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, createErr := tx.CreateBucketIfNotExists(bucketSession)

		return createErr
	})
	if err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "failed to initialize session bucket")
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return errors.WithStack(s.db.Close())
}

// Token returns the stored token and whether one is present.
func (s *Store) Token() (string, bool) {
	var token string

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketSession).Get(keyToken)
		if data != nil {
			token = string(data)
		}

		return nil
	})
	if err != nil || token == "" {
		return "", false
	}

	return token, true
}

// SetToken stores the token, overwriting any prior value.
func (s *Store) SetToken(token string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSession).Put(keyToken, []byte(token))
	})

	return errors.Wrap(err, "failed to store token")
}

// Clear removes the stored token.
func (s *Store) Clear() error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSession).Delete(keyToken)
	})

	return errors.Wrap(err, "failed to clear token")
}
