package cli

import (
	"context"
	"fmt"

	"github.com/cruciblehq/wheelforge/internal"
)

// Represents the 'wheelforge version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run(ctx context.Context) error {
	fmt.Println(internal.VersionString())
	return nil
}
