package project

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/trackr/internal/cli"
	"github.com/thenoetrevino/trackr/internal/cli/styles"
	"github.com/thenoetrevino/trackr/internal/models"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one project",
		Args:  exactArgs(1),
		RunE:  runShow,
	}

	addOutputFlags(cmd, "")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	id := args[0]
	formatter := newFormatter(cmd)

	return withCLI(cmd, formatter, func(ctx context.Context, c *cli.CLI) error {
		svc := c.App.ProjectService
		if err := svc.Load(ctx); err != nil {
			return formatter.Fail(err)
		}

		project, ok := svc.Project(id)
		if !ok {
			return formatter.Fail(fmt.Errorf("%w: %s", models.ErrProjectNotFound, id))
		}

		if formatter.JSON {
			return formatter.Result(map[string]any{"project": project})
		}

		formatter.Printf("%s\n", styles.RenderProjectCard(project))
		return nil
	})
}
