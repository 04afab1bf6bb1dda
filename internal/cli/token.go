package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/hard75/internal/model"
	"github.com/dtroode/hard75/internal/token"
)

// TokenCmd signs a session token with the configured secret, for local
// testing without the identity provider.
type TokenCmd struct {
	User  string `help:"User id. A random one is generated when empty."`
	Email string `help:"Email carried in the token." required:""`
}

func (c *TokenCmd) Run(ctx *Context) error {
	userID := uuid.New()
	if c.User != "" {
		id, err := uuid.Parse(c.User)
		if err != nil {
			return fmt.Errorf("invalid user id: %w", err)
		}
		userID = id
	}

	manager := token.NewJWT(ctx.Config.Session.Secret, ctx.Config.Session.TTL)
	signed, err := manager.GenerateSessionToken(model.Identity{UserID: userID, Email: c.Email})
	if err != nil {
		return err
	}

	fmt.Fprintln(ctx.Out, signed)
	return nil
}
