package project

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/trackr/internal/cli"
	"github.com/thenoetrevino/trackr/internal/cli/styles"
	"github.com/thenoetrevino/trackr/internal/models"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long: `List projects, optionally narrowed by a search query and a status.

Examples:
  trackr project list
  trackr project list --search acme
  trackr project list --status on_hold --json
`,
		Args: exactArgs(0),
		RunE: runList,
	}

	cmd.Flags().String("search", "", "Only projects whose name or client contains this text")
	cmd.Flags().String("status", "all", "Only projects with this status (all, active, on_hold, completed)")
	addOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")
	statusFlag, _ := cmd.Flags().GetString("status")
	formatter := newFormatter(cmd)

	filter, err := models.ParseStatusFilter(statusFlag)
	if err != nil {
		return formatter.Fail(err)
	}

	return withCLI(cmd, formatter, func(ctx context.Context, c *cli.CLI) error {
		svc := c.App.ProjectService
		if err := svc.Load(ctx); err != nil {
			return formatter.Fail(err)
		}
		svc.SetSearchQuery(search)
		svc.SetStatusFilter(filter)
		projects := svc.Snapshot().Projects

		if formatter.Quiet {
			for _, p := range projects {
				formatter.Printf("%s\n", p.ID)
			}
			return nil
		}

		if formatter.JSON {
			return formatter.Result(map[string]any{"projects": projects})
		}

		if len(projects) == 0 {
			formatter.Printf("No projects found\n")
			return nil
		}

		formatter.Printf("Found %d projects:\n\n", len(projects))
		for _, p := range projects {
			formatter.Printf("  [%s] %s (%s) · %s · started %s\n",
				p.ID, p.Name, p.ClientName, styles.StatusText(p.Status), p.StartDate)
		}
		return nil
	})
}
