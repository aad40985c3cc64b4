package database

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/trackr/internal/models"
)

// DefaultProjects returns the built-in demo records, freshly allocated on each call
func DefaultProjects() []*models.Project {
	return []*models.Project{
		{
			ID:          "1",
			Name:        "Website Redesign",
			ClientName:  "Acme Corp",
			Status:      models.StatusActive,
			StartDate:   "2024-01-15",
			Description: "Modernizing the main corporate landing page with new branding.",
		},
		{
			ID:          "2",
			Name:        "Mobile App Development",
			ClientName:  "Global Tech",
			Status:      models.StatusOnHold,
			StartDate:   "2023-11-01",
			Description: "Cross-platform inventory management mobile application.",
		},
		{
			ID:          "3",
			Name:        "SEO Optimization",
			ClientName:  "Marketing Pro",
			Status:      models.StatusCompleted,
			StartDate:   "2023-09-10",
			EndDate:     "2023-12-20",
			Description: "Optimizing search engine visibility for the client portfolio.",
		},
		{
			ID:          "4",
			Name:        "Data Migration",
			ClientName:  "Big Logistics",
			Status:      models.StatusActive,
			StartDate:   "2024-02-01",
			Description: "Migrating legacy database systems to modern cloud infrastructure.",
		},
		{
			ID:          "5",
			Name:        "Social Media Strategy",
			ClientName:  "Small Biz Inc",
			Status:      models.StatusOnHold,
			StartDate:   "2024-02-10",
			Description: "Planning content calendar and engagement strategy for Q1-Q2.",
		},
	}
}

// seedFile is the YAML layout of a seed file
type seedFile struct {
	Projects []*models.Project `yaml:"projects"`
}

// LoadSeedFile reads initial projects from a YAML file of the form
//
//	projects:
//	  - id: "1"
//	    name: Website Redesign
//	    client_name: Acme Corp
//	    status: active
//	    start_date: "2024-01-15"
func LoadSeedFile(path string) ([]*models.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	if err := validateSeed(seed.Projects); err != nil {
		return nil, fmt.Errorf("invalid seed file %s: %w", path, err)
	}
	return seed.Projects, nil
}
