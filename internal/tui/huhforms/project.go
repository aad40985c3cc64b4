package huhforms

import (
	"strings"
	"time"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/trackr/internal/models"
)

// Field keys of the project form
const (
	KeyName        = "name"
	KeyClient      = "client"
	KeyDescription = "description"
	KeyStartDate   = "start_date"
	KeyEndDate     = "end_date"
	KeyStatus      = "status"
)

const dateHint = "YYYY-MM-DD"

// ProjectFormValues are the fields a project form writes into as the user types
type ProjectFormValues struct {
	Name        string
	Client      string
	Description string
	StartDate   string
	EndDate     string
	Status      models.Status
}

// CreateProjectForm creates a huh form for adding a new project.
// Required fields are checked on save so the user can move past them freely;
// the date fields reject malformed input as soon as focus leaves them.
func CreateProjectForm(values *ProjectFormValues) *huh.Form {
	if values.Status == "" {
		values.Status = models.StatusActive
	}

	fields := []huh.Field{
		huh.NewInput().
			Key(KeyName).
			Title("Name *").
			Placeholder("e.g. Website Redesign").
			CharLimit(models.MaxNameLength).
			Value(&values.Name),

		huh.NewInput().
			Key(KeyClient).
			Title("Client *").
			Placeholder("e.g. Acme Corp").
			CharLimit(models.MaxNameLength).
			Value(&values.Client),

		huh.NewText().
			Key(KeyDescription).
			Title("Description").
			Placeholder("Brief description of the project...").
			Lines(3).
			Value(&values.Description),

		huh.NewInput().
			Key(KeyStartDate).
			Title("Start Date *").
			Placeholder(dateHint).
			CharLimit(len(models.DateLayout)).
			Validate(ValidateDate).
			Value(&values.StartDate),

		huh.NewInput().
			Key(KeyEndDate).
			Title("End Date").
			Placeholder(dateHint).
			CharLimit(len(models.DateLayout)).
			Validate(ValidateDate).
			Value(&values.EndDate),

		huh.NewSelect[models.Status]().
			Key(KeyStatus).
			Title("Status").
			Options(StatusOptions()...).
			Inline(true).
			Value(&values.Status),
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}

// StatusOptions returns one option per status, in display order
func StatusOptions() []huh.Option[models.Status] {
	statuses := models.AllStatuses()
	options := make([]huh.Option[models.Status], 0, len(statuses))
	for _, s := range statuses {
		options = append(options, huh.NewOption(s.Label(), s))
	}
	return options
}

// ValidateDate accepts a blank value or a YYYY-MM-DD date
func ValidateDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(models.DateLayout, s); err != nil {
		return models.ErrInvalidDate
	}
	return nil
}
