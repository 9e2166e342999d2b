package ports

import "context"

// RemoteStore is a path-addressed JSON document tree. Fetch decodes the
// subtree at path into out and returns domain.ErrPathNotFound when the store
// holds nothing there; Create posts payload to a collection path and returns
// the store-assigned child id.
type RemoteStore interface {
	Fetch(ctx context.Context, path string, out any) error
	Create(ctx context.Context, path string, payload any) (string, error)
	Set(ctx context.Context, path string, value any) error
	Delete(ctx context.Context, path string) error
}
