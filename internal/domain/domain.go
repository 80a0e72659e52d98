// Package domain defines the resourcing records served by the backend and the
// filter schemas, enrichment projections, and validation rules attached to
// them. Records carry the wire shape; fields tagged json:"-" are display-only
// and filled by enrichment from the lookup collections.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component. The zero value marshals
// to null and means "not set".
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a wire-format date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected %s", s, DateLayout)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON writes the date as a quoted string, or null when unset.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON accepts a quoted date string or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Profile is a person in the resourcing pool.
type Profile struct {
	ID         string   `json:"id"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Email      string   `json:"email"`
	LocationID string   `json:"locationId,omitempty"`
	SkillIDs   []string `json:"skillIds,omitempty"`
	Level      string   `json:"level,omitempty"`
	Available  bool     `json:"available"`
	StartDate  Date     `json:"startDate,omitempty"`
	Notes      string   `json:"notes,omitempty"`

	// Enrichment, filled from the location and skill collections.
	LocationName string   `json:"-"`
	SkillNames   []string `json:"-"`
}

func (p Profile) RecordID() string { return p.ID }

// FullName joins the first and last name for display.
func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Project is a client engagement that profiles are assigned to.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ClientID    string `json:"clientId,omitempty"`
	Description string `json:"description,omitempty"`
	StartDate   Date   `json:"startDate,omitempty"`
	EndDate     Date   `json:"endDate,omitempty"`

	ClientName string `json:"-"`
}

func (p Project) RecordID() string { return p.ID }

// Team is a named group of profiles.
type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (t Team) RecordID() string { return t.ID }

// TeamMember links a profile to a team. A profile may belong to a team at
// most once.
type TeamMember struct {
	ID        string `json:"id"`
	ProfileID string `json:"profileId"`
	TeamID    string `json:"teamId"`
	JoinedAt  Date   `json:"joinedAt,omitempty"`

	ProfileName string `json:"-"`
	TeamName    string `json:"-"`
}

func (m TeamMember) RecordID() string { return m.ID }

// PairKey is the natural uniqueness key of the membership, independent of the
// server-assigned id.
func (m TeamMember) PairKey() string { return m.ProfileID + "|" + m.TeamID }

// Assignment allocates a profile to a project for a date range.
type Assignment struct {
	ID         string `json:"id"`
	ProfileID  string `json:"profileId"`
	ProjectID  string `json:"projectId"`
	Role       string `json:"role,omitempty"`
	Allocation int    `json:"allocation,omitempty"`
	StartDate  Date   `json:"startDate,omitempty"`
	EndDate    Date   `json:"endDate,omitempty"`

	ProfileName string `json:"-"`
	ProjectName string `json:"-"`
}

func (a Assignment) RecordID() string { return a.ID }

// PairKey is the natural uniqueness key of the allocation.
func (a Assignment) PairKey() string { return a.ProfileID + "|" + a.ProjectID }

// Location is a lookup record for office locations.
type Location struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
}

func (l Location) RecordID() string { return l.ID }

// Client is a lookup record for customer organizations.
type Client struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c Client) RecordID() string { return c.ID }

// Skill is a lookup record for competencies.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

func (s Skill) RecordID() string { return s.ID }
