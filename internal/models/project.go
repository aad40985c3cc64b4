package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// DateLayout is the calendar date format used for start and end dates
const DateLayout = "2006-01-02"

// MaxNameLength bounds both the project name and the client name
const MaxNameLength = 100

// Project represents a tracked engagement with a client.
// Dates are kept as YYYY-MM-DD strings; an empty EndDate or Description means absent.
type Project struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	ClientName  string `json:"clientName" yaml:"client_name"`
	Status      Status `json:"status" yaml:"status"`
	StartDate   string `json:"startDate" yaml:"start_date"`
	EndDate     string `json:"endDate,omitempty" yaml:"end_date,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// GetID returns the project ID (used by the CLI quiet output)
func (p *Project) GetID() string {
	return p.ID
}

// Clone returns a copy of the project so callers never share records with a store
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// CloneProjects copies every project in the slice
func CloneProjects(projects []*Project) []*Project {
	out := make([]*Project, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Clone())
	}
	return out
}

// ProjectInput is the payload for creating a project. The store assigns the ID.
type ProjectInput struct {
	Name        string `json:"name"`
	ClientName  string `json:"clientName"`
	Status      Status `json:"status"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// Normalize trims every field and defaults the status to active
func (in ProjectInput) Normalize() ProjectInput {
	out := ProjectInput{
		Name:        strings.TrimSpace(in.Name),
		ClientName:  strings.TrimSpace(in.ClientName),
		Status:      Status(strings.TrimSpace(string(in.Status))),
		StartDate:   strings.TrimSpace(in.StartDate),
		EndDate:     strings.TrimSpace(in.EndDate),
		Description: strings.TrimSpace(in.Description),
	}
	if out.Status == "" {
		out.Status = StatusActive
	}
	return out
}

// Validate checks required fields, lengths, dates and status.
// Call Normalize first; Validate does not trim.
func (in ProjectInput) Validate() error {
	if in.Name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(in.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if in.ClientName == "" {
		return ErrEmptyClientName
	}
	if utf8.RuneCountInString(in.ClientName) > MaxNameLength {
		return ErrClientNameTooLong
	}
	if in.StartDate == "" {
		return ErrEmptyStartDate
	}
	start, err := time.Parse(DateLayout, in.StartDate)
	if err != nil {
		return fmt.Errorf("%w: start date %q", ErrInvalidDate, in.StartDate)
	}
	if in.EndDate != "" {
		end, err := time.Parse(DateLayout, in.EndDate)
		if err != nil {
			return fmt.Errorf("%w: end date %q", ErrInvalidDate, in.EndDate)
		}
		if end.Before(start) {
			return ErrEndBeforeStart
		}
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, in.Status)
	}
	return nil
}

// ToProject builds a project record with the given ID from the input
func (in ProjectInput) ToProject(id string) *Project {
	return &Project{
		ID:          id,
		Name:        in.Name,
		ClientName:  in.ClientName,
		Status:      in.Status,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
	}
}
