package cli

import (
	"fmt"

	"github.com/dtroode/hard75/internal/repository"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *Context) error {
	stores, err := repository.Open(ctx, ctx.Config.Database.DSN)
	if err != nil {
		return err
	}
	defer stores.Close()

	fmt.Fprintf(ctx.Out, "Schema is up to date (%s)\n", stores.Dialect)
	return nil
}
