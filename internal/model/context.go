package model

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the authenticated caller as issued by the identity provider.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

type ContextManager interface {
	SetIdentityToContext(ctx context.Context, identity Identity) context.Context
	GetIdentityFromContext(ctx context.Context) (Identity, bool)
}
