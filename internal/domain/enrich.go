package domain

import "github.com/resourcehub/hubctl/internal/collection"

// Enrichment projections copy records and fill the display-only name fields
// from the lookup collections. They never mutate their input; the cache keeps
// the wire records untouched.

// EnrichProfiles resolves location and skill ids to names.
func EnrichProfiles(locations map[string]Location, skills map[string]Skill) func([]Profile) []Profile {
	return func(items []Profile) []Profile {
		out := append([]Profile(nil), items...)
		for i := range out {
			if loc, ok := locations[out[i].LocationID]; ok {
				out[i].LocationName = loc.Name
			}
			if len(out[i].SkillIDs) > 0 {
				names := make([]string, 0, len(out[i].SkillIDs))
				for _, id := range out[i].SkillIDs {
					if s, ok := skills[id]; ok {
						names = append(names, s.Name)
					}
				}
				out[i].SkillNames = names
			}
		}
		return out
	}
}

// EnrichProjects resolves client ids to names.
func EnrichProjects(clients map[string]Client) func([]Project) []Project {
	return func(items []Project) []Project {
		out := append([]Project(nil), items...)
		for i := range out {
			if c, ok := clients[out[i].ClientID]; ok {
				out[i].ClientName = c.Name
			}
		}
		return out
	}
}

// EnrichTeamMembers resolves profile and team ids to names.
func EnrichTeamMembers(profiles map[string]Profile, teams map[string]Team) func([]TeamMember) []TeamMember {
	return func(items []TeamMember) []TeamMember {
		out := append([]TeamMember(nil), items...)
		for i := range out {
			if p, ok := profiles[out[i].ProfileID]; ok {
				out[i].ProfileName = p.FullName()
			}
			if t, ok := teams[out[i].TeamID]; ok {
				out[i].TeamName = t.Name
			}
		}
		return out
	}
}

// EnrichAssignments resolves profile and project ids to names.
func EnrichAssignments(profiles map[string]Profile, projects map[string]Project) func([]Assignment) []Assignment {
	return func(items []Assignment) []Assignment {
		out := append([]Assignment(nil), items...)
		for i := range out {
			if p, ok := profiles[out[i].ProfileID]; ok {
				out[i].ProfileName = p.FullName()
			}
			if pr, ok := projects[out[i].ProjectID]; ok {
				out[i].ProjectName = pr.Name
			}
		}
		return out
	}
}

// ProfileLookup builds an id index usable by the enrichment projections.
func ProfileLookup(items []Profile) map[string]Profile { return collection.LookupMap(items) }

// LocationLookup builds an id index of locations.
func LocationLookup(items []Location) map[string]Location { return collection.LookupMap(items) }

// ClientLookup builds an id index of clients.
func ClientLookup(items []Client) map[string]Client { return collection.LookupMap(items) }

// SkillLookup builds an id index of skills.
func SkillLookup(items []Skill) map[string]Skill { return collection.LookupMap(items) }

// TeamLookup builds an id index of teams.
func TeamLookup(items []Team) map[string]Team { return collection.LookupMap(items) }

// ProjectLookup builds an id index of projects.
func ProjectLookup(items []Project) map[string]Project { return collection.LookupMap(items) }
