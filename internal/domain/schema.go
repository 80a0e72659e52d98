package domain

import (
	"time"

	"github.com/resourcehub/hubctl/internal/collection"
)

// Filter schemas map user-facing filter keys to record fields. Enriched
// fields expose the human-readable name, so filtering by "location" or
// "client" works on names rather than ids. Enriched fields report absent
// until the projection has filled them, and absent fields never match.

// ProfileSchema returns the filterable fields of a profile.
func ProfileSchema() collection.Schema[Profile] {
	return collection.Schema[Profile]{
		"name": {
			Kind: collection.FieldText,
			Text: func(p Profile) (string, bool) { return p.FullName(), true },
		},
		"email": {
			Kind: collection.FieldText,
			Text: func(p Profile) (string, bool) { return p.Email, true },
		},
		"location": {
			Kind: collection.FieldChoice,
			Text: func(p Profile) (string, bool) { return p.LocationName, p.LocationName != "" },
		},
		"skill": {
			Kind: collection.FieldList,
			List: func(p Profile) ([]string, bool) { return p.SkillNames, len(p.SkillNames) > 0 },
		},
		"level": {
			Kind: collection.FieldChoice,
			Text: func(p Profile) (string, bool) { return p.Level, p.Level != "" },
		},
		"available": {
			Kind: collection.FieldChoice,
			Text: func(p Profile) (string, bool) {
				if p.Available {
					return "yes", true
				}
				return "no", true
			},
		},
		"start": {
			Kind: collection.FieldDate,
			Date: func(p Profile) (time.Time, bool) { return p.StartDate.Time, !p.StartDate.IsZero() },
		},
	}
}

// ProjectSchema returns the filterable fields of a project.
func ProjectSchema() collection.Schema[Project] {
	return collection.Schema[Project]{
		"name": {
			Kind: collection.FieldText,
			Text: func(p Project) (string, bool) { return p.Name, true },
		},
		"client": {
			Kind: collection.FieldChoice,
			Text: func(p Project) (string, bool) { return p.ClientName, p.ClientName != "" },
		},
		"start": {
			Kind: collection.FieldDate,
			Date: func(p Project) (time.Time, bool) { return p.StartDate.Time, !p.StartDate.IsZero() },
		},
		"end": {
			Kind: collection.FieldDate,
			Date: func(p Project) (time.Time, bool) { return p.EndDate.Time, !p.EndDate.IsZero() },
		},
	}
}

// TeamSchema returns the filterable fields of a team.
func TeamSchema() collection.Schema[Team] {
	return collection.Schema[Team]{
		"name": {
			Kind: collection.FieldText,
			Text: func(t Team) (string, bool) { return t.Name, true },
		},
	}
}

// TeamMemberSchema returns the filterable fields of a team membership.
func TeamMemberSchema() collection.Schema[TeamMember] {
	return collection.Schema[TeamMember]{
		"profile": {
			Kind: collection.FieldText,
			Text: func(m TeamMember) (string, bool) { return m.ProfileName, m.ProfileName != "" },
		},
		"team": {
			Kind: collection.FieldChoice,
			Text: func(m TeamMember) (string, bool) { return m.TeamName, m.TeamName != "" },
		},
		"joined": {
			Kind: collection.FieldDate,
			Date: func(m TeamMember) (time.Time, bool) { return m.JoinedAt.Time, !m.JoinedAt.IsZero() },
		},
	}
}

// AssignmentSchema returns the filterable fields of an assignment.
func AssignmentSchema() collection.Schema[Assignment] {
	return collection.Schema[Assignment]{
		"profile": {
			Kind: collection.FieldText,
			Text: func(a Assignment) (string, bool) { return a.ProfileName, a.ProfileName != "" },
		},
		"project": {
			Kind: collection.FieldText,
			Text: func(a Assignment) (string, bool) { return a.ProjectName, a.ProjectName != "" },
		},
		"role": {
			Kind: collection.FieldText,
			Text: func(a Assignment) (string, bool) { return a.Role, true },
		},
		"start": {
			Kind: collection.FieldDate,
			Date: func(a Assignment) (time.Time, bool) { return a.StartDate.Time, !a.StartDate.IsZero() },
		},
		"end": {
			Kind: collection.FieldDate,
			Date: func(a Assignment) (time.Time, bool) { return a.EndDate.Time, !a.EndDate.IsZero() },
		},
	}
}

// LocationSchema returns the filterable fields of a location.
func LocationSchema() collection.Schema[Location] {
	return collection.Schema[Location]{
		"name": {
			Kind: collection.FieldText,
			Text: func(l Location) (string, bool) { return l.Name, true },
		},
		"country": {
			Kind: collection.FieldChoice,
			Text: func(l Location) (string, bool) { return l.Country, l.Country != "" },
		},
	}
}

// ClientSchema returns the filterable fields of a client.
func ClientSchema() collection.Schema[Client] {
	return collection.Schema[Client]{
		"name": {
			Kind: collection.FieldText,
			Text: func(c Client) (string, bool) { return c.Name, true },
		},
	}
}

// SkillSchema returns the filterable fields of a skill.
func SkillSchema() collection.Schema[Skill] {
	return collection.Schema[Skill]{
		"name": {
			Kind: collection.FieldText,
			Text: func(s Skill) (string, bool) { return s.Name, true },
		},
		"category": {
			Kind: collection.FieldChoice,
			Text: func(s Skill) (string, bool) { return s.Category, s.Category != "" },
		},
	}
}
