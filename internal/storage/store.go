// Package storage is the thin adapter in front of the object store. The
// pipeline only ever needs two operations: "is this key there" and "put this
// file there".
package storage

import "context"

// ObjectStore is the behavior the uploader depends on.
type ObjectStore interface {
	// Exists reports whether an object is already present at key.
	Exists(ctx context.Context, key string) (bool, error)
	// PutFile uploads a local file to key with the given content type and
	// user metadata.
	PutFile(ctx context.Context, key, path, contentType string, metadata map[string]string) error
}
