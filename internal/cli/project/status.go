package project

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/trackr/internal/cli"
	"github.com/thenoetrevino/trackr/internal/models"
)

// StatusCmd returns the project status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change a project's status",
		Long: `Change a project's status to active, on_hold or completed.

Examples:
  trackr project status 2 active
  trackr project status 1 "on hold" --json
`,
		Args: exactArgs(2),
		RunE: runStatus,
	}

	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	id := args[0]
	formatter := newFormatter(cmd)

	status, err := models.ParseStatus(args[1])
	if err != nil {
		return formatter.Fail(err)
	}

	return withCLI(cmd, formatter, func(ctx context.Context, c *cli.CLI) error {
		project, err := c.App.ProjectService.UpdateStatus(ctx, id, status)
		if err != nil {
			return formatter.Fail(err)
		}

		if formatter.Quiet {
			formatter.Printf("%s\n", project.ID)
			return nil
		}

		if formatter.JSON {
			return formatter.Result(map[string]any{"project": project})
		}

		formatter.Printf("✓ %q is now %s.\n", project.Name, project.Status.Text())
		return nil
	})
}
