package huhforms

import (
	"errors"
	"testing"

	"github.com/thenoetrevino/trackr/internal/config"
	"github.com/thenoetrevino/trackr/internal/config/colors"
	"github.com/thenoetrevino/trackr/internal/models"
)

func TestValidateDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want error
	}{
		{"", nil},
		{"   ", nil},
		{"2024-01-15", nil},
		{" 2024-01-15 ", nil},
		{"2024-13-01", models.ErrInvalidDate},
		{"15/01/2024", models.ErrInvalidDate},
		{"soon", models.ErrInvalidDate},
	}

	for _, tt := range tests {
		if err := ValidateDate(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("ValidateDate(%q) = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestStatusOptions_FollowStatusOrder(t *testing.T) {
	t.Parallel()

	options := StatusOptions()
	statuses := models.AllStatuses()
	if len(options) != len(statuses) {
		t.Fatalf("len(StatusOptions()) = %d, want %d", len(options), len(statuses))
	}
	for i, opt := range options {
		if opt.Value != statuses[i] {
			t.Errorf("option %d value = %q, want %q", i, opt.Value, statuses[i])
		}
		if opt.Key != statuses[i].Label() {
			t.Errorf("option %d label = %q, want %q", i, opt.Key, statuses[i].Label())
		}
	}
}

// TestCreateProjectForm_DefaultsStatus ensures a blank draft starts as active
func TestCreateProjectForm_DefaultsStatus(t *testing.T) {
	t.Parallel()

	values := &ProjectFormValues{}
	form := CreateProjectForm(values).
		WithKeyMap(CreateKeyMap(config.DefaultKeyMappings())).
		WithTheme(CreateTrackrTheme(*colors.Default()))

	if form == nil {
		t.Fatal("CreateProjectForm() returned nil")
	}
	if values.Status != models.StatusActive {
		t.Errorf("status = %q, want active", values.Status)
	}
}

// TestCreateProjectForm_KeepsExistingValues ensures a rebuilt form starts from the draft
func TestCreateProjectForm_KeepsExistingValues(t *testing.T) {
	t.Parallel()

	values := &ProjectFormValues{Name: "Brand Refresh", Status: models.StatusOnHold}
	_ = CreateProjectForm(values)

	if values.Name != "Brand Refresh" || values.Status != models.StatusOnHold {
		t.Errorf("values = %+v, want the draft unchanged", values)
	}
}
