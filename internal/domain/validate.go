package domain

import (
	"strings"

	hberrors "github.com/resourcehub/hubctl/internal/errors"
)

// Validators run locally before any mutation request is issued. A failed
// check returns a ValidationError and no request reaches the server.

// ValidateProfile checks the required profile fields.
func ValidateProfile(p Profile, _ []Profile) error {
	if strings.TrimSpace(p.FirstName) == "" {
		return &hberrors.ValidationError{Field: "firstName", Message: "must not be empty"}
	}
	if strings.TrimSpace(p.LastName) == "" {
		return &hberrors.ValidationError{Field: "lastName", Message: "must not be empty"}
	}
	if !strings.Contains(p.Email, "@") {
		return &hberrors.ValidationError{Field: "email", Message: "must be a valid email address"}
	}
	return nil
}

// ValidateProject checks the required project fields and the date order.
func ValidateProject(p Project, _ []Project) error {
	if strings.TrimSpace(p.Name) == "" {
		return &hberrors.ValidationError{Field: "name", Message: "must not be empty"}
	}
	return validateDateOrder(p.StartDate, p.EndDate)
}

// ValidateTeam checks the required team fields.
func ValidateTeam(t Team, _ []Team) error {
	if strings.TrimSpace(t.Name) == "" {
		return &hberrors.ValidationError{Field: "name", Message: "must not be empty"}
	}
	return nil
}

// ValidateTeamMember rejects incomplete links and memberships that duplicate
// an existing profile and team pair.
func ValidateTeamMember(m TeamMember, existing []TeamMember) error {
	if m.ProfileID == "" {
		return &hberrors.ValidationError{Field: "profileId", Message: "must not be empty"}
	}
	if m.TeamID == "" {
		return &hberrors.ValidationError{Field: "teamId", Message: "must not be empty"}
	}
	for _, other := range existing {
		if other.ID != m.ID && other.PairKey() == m.PairKey() {
			return &hberrors.ValidationError{Field: "profileId", Message: "profile is already a member of this team"}
		}
	}
	return nil
}

// ValidateAssignment rejects incomplete links, allocations outside 1 to 100
// percent, and end dates before the start date.
func ValidateAssignment(a Assignment, _ []Assignment) error {
	if a.ProfileID == "" {
		return &hberrors.ValidationError{Field: "profileId", Message: "must not be empty"}
	}
	if a.ProjectID == "" {
		return &hberrors.ValidationError{Field: "projectId", Message: "must not be empty"}
	}
	if a.Allocation < 0 || a.Allocation > 100 {
		return &hberrors.ValidationError{Field: "allocation", Message: "must be between 0 and 100"}
	}
	return validateDateOrder(a.StartDate, a.EndDate)
}

// ValidateLocation checks the required location fields.
func ValidateLocation(l Location, _ []Location) error {
	if strings.TrimSpace(l.Name) == "" {
		return &hberrors.ValidationError{Field: "name", Message: "must not be empty"}
	}
	return nil
}

// ValidateClient checks the required client fields.
func ValidateClient(c Client, _ []Client) error {
	if strings.TrimSpace(c.Name) == "" {
		return &hberrors.ValidationError{Field: "name", Message: "must not be empty"}
	}
	return nil
}

// ValidateSkill checks the required skill fields.
func ValidateSkill(s Skill, _ []Skill) error {
	if strings.TrimSpace(s.Name) == "" {
		return &hberrors.ValidationError{Field: "name", Message: "must not be empty"}
	}
	return nil
}

func validateDateOrder(start, end Date) error {
	if !start.IsZero() && !end.IsZero() && end.Before(start.Time) {
		return &hberrors.ValidationError{Field: "endDate", Message: "must not be before start date"}
	}
	return nil
}
