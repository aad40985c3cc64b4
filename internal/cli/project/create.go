package project

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/trackr/internal/cli"
	"github.com/thenoetrevino/trackr/internal/models"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project with specified attributes.

Examples:
  # Simple project (human-readable output)
  trackr project create --name="Website Redesign" --client="Acme Corp" --start=2024-01-15

  # JSON output for agents
  trackr project create --name="Website Redesign" --client="Acme Corp" --start=2024-01-15 --json

  # Quiet mode for bash capture
  PROJECT_ID=$(trackr project create --name="Website Redesign" --client="Acme Corp" --start=2024-01-15 --quiet)

  # Everything
  trackr project create \
    --name="SEO Optimization" \
    --client="Marketing Pro" \
    --start=2023-09-10 \
    --end=2023-12-20 \
    --status=completed \
    --description="Search visibility for the client portfolio"
`,
		Args: exactArgs(0),
		RunE: runCreate,
	}

	// Required fields, validated with the model rules
	cmd.Flags().String("name", "", "Project name (required)")
	cmd.Flags().String("client", "", "Client name (required)")
	cmd.Flags().String("start", "", "Start date, YYYY-MM-DD (required)")

	// Optional fields
	cmd.Flags().String("end", "", "End date, YYYY-MM-DD")
	cmd.Flags().String("description", "", "Project description")
	cmd.Flags().String("status", string(models.StatusActive), "Initial status (active, on_hold, completed)")

	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	client, _ := cmd.Flags().GetString("client")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	description, _ := cmd.Flags().GetString("description")
	statusFlag, _ := cmd.Flags().GetString("status")
	formatter := newFormatter(cmd)

	status, err := models.ParseStatus(statusFlag)
	if err != nil {
		return formatter.Fail(err)
	}

	input := models.ProjectInput{
		Name:        name,
		ClientName:  client,
		StartDate:   start,
		EndDate:     end,
		Description: description,
		Status:      status,
	}.Normalize()
	if err := input.Validate(); err != nil {
		return formatter.Fail(err)
	}

	return withCLI(cmd, formatter, func(ctx context.Context, c *cli.CLI) error {
		project, err := c.App.ProjectService.AddProject(ctx, input)
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

		formatter.Printf("✓ Project '%s' created successfully (ID: %s)\n", project.Name, project.ID)
		if project.Description != "" {
			formatter.Printf("  Description: %s\n", project.Description)
		}
		return nil
	})
}
