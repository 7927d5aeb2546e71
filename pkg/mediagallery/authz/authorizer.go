// Package authz provides the authorization policy for write operations.
// The policy is injected into the HTTP surface so that the coordinator
// never compares identifiers itself; supporting multiple admins later is a
// new Authorizer, not a coordinator change.
package authz

import (
	"context"
	"crypto/subtle"

	"github.com/tendant/simple-gallery/pkg/mediagallery"
)

// Authorizer decides whether a caller identifier may upload or delete media.
type Authorizer interface {
	// Authorize returns nil when the identifier is allowed to write, or
	// mediagallery.ErrNotAuthorized otherwise.
	Authorize(ctx context.Context, identifier string) error
}

// StaticAdmin authorizes exactly one configured admin identifier.
type StaticAdmin struct {
	adminID string
}

// NewStaticAdmin creates an Authorizer for a single admin identifier.
func NewStaticAdmin(adminID string) *StaticAdmin {
	return &StaticAdmin{adminID: adminID}
}

func (a *StaticAdmin) Authorize(ctx context.Context, identifier string) error {
	if a.adminID == "" || identifier == "" {
		return mediagallery.ErrNotAuthorized
	}
	if subtle.ConstantTimeCompare([]byte(a.adminID), []byte(identifier)) != 1 {
		return mediagallery.ErrNotAuthorized
	}
	return nil
}
