package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resourcehub/hubctl/internal/collection"
	hberrors "github.com/resourcehub/hubctl/internal/errors"
)

func TestDateJSONRoundTrip(t *testing.T) {
	type payload struct {
		Start Date `json:"startDate"`
		End   Date `json:"endDate,omitempty"`
	}

	in := payload{Start: NewDate(2026, time.March, 15)}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"2026-03-15"`)
	assert.Contains(t, string(data), "null")

	var out payload
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in.Start, out.Start)
	assert.True(t, out.End.IsZero())

	_, err = ParseDate("15/03/2026")
	assert.Error(t, err)
}

func TestProfileFullName(t *testing.T) {
	assert.Equal(t, "Anna Silva", Profile{FirstName: "Anna", LastName: "Silva"}.FullName())
	assert.Equal(t, "Anna", Profile{FirstName: "Anna"}.FullName())
}

func TestProfileSchemaFiltersOnEnrichedFields(t *testing.T) {
	items := []Profile{
		{ID: "1", FirstName: "Anna", LastName: "Silva", LocationName: "Lisbon", SkillNames: []string{"Go", "SQL"}},
		{ID: "2", FirstName: "Bob", LastName: "Jones", LocationName: "Porto"},
		{ID: "3", FirstName: "Carol", LastName: "King"}, // enrichment not loaded
	}
	schema := ProfileSchema()

	t.Run("location is choice on resolved name", func(t *testing.T) {
		result := collection.Filter(items, schema, collection.Criteria{"location": {Text: "lisbon"}})
		require.Len(t, result, 1)
		assert.Equal(t, "1", result[0].ID)
	})

	t.Run("empty criterion imposes nothing", func(t *testing.T) {
		result := collection.Filter(items, schema, collection.Criteria{"location": {Text: ""}})
		assert.Len(t, result, 3)
	})

	t.Run("unresolved location never matches", func(t *testing.T) {
		result := collection.Filter(items, schema, collection.Criteria{"location": {Text: "Lisbon"}})
		require.Len(t, result, 1)
		assert.Equal(t, "1", result[0].ID)
	})

	t.Run("skill membership", func(t *testing.T) {
		result := collection.Filter(items, schema, collection.Criteria{"skill": {Text: "go"}})
		require.Len(t, result, 1)
		assert.Equal(t, "1", result[0].ID)
	})

	t.Run("name spans first and last", func(t *testing.T) {
		result := collection.Filter(items, schema, collection.Criteria{"name": {Text: "a sil"}})
		require.Len(t, result, 1)
		assert.Equal(t, "1", result[0].ID)
	})
}

func TestEnrichProfiles(t *testing.T) {
	locations := LocationLookup([]Location{{ID: "l1", Name: "Lisbon"}})
	skills := SkillLookup([]Skill{{ID: "s1", Name: "Go"}, {ID: "s2", Name: "SQL"}})

	items := []Profile{
		{ID: "1", LocationID: "l1", SkillIDs: []string{"s1", "s2", "missing"}},
		{ID: "2", LocationID: "unknown"},
	}
	enriched := EnrichProfiles(locations, skills)(items)

	assert.Equal(t, "Lisbon", enriched[0].LocationName)
	assert.Equal(t, []string{"Go", "SQL"}, enriched[0].SkillNames)
	assert.Empty(t, enriched[1].LocationName)

	// Input records are untouched.
	assert.Empty(t, items[0].LocationName)
}

func TestEnrichAssignments(t *testing.T) {
	profiles := ProfileLookup([]Profile{{ID: "p1", FirstName: "Anna", LastName: "Silva"}})
	projects := ProjectLookup([]Project{{ID: "pr1", Name: "Apollo"}})

	enriched := EnrichAssignments(profiles, projects)([]Assignment{
		{ID: "1", ProfileID: "p1", ProjectID: "pr1"},
	})
	assert.Equal(t, "Anna Silva", enriched[0].ProfileName)
	assert.Equal(t, "Apollo", enriched[0].ProjectName)
}

func TestValidateProfile(t *testing.T) {
	valid := Profile{FirstName: "Anna", LastName: "Silva", Email: "anna@example.com"}
	assert.NoError(t, ValidateProfile(valid, nil))

	tests := []struct {
		name    string
		mutate  func(*Profile)
		field   string
	}{
		{"missing first name", func(p *Profile) { p.FirstName = " " }, "firstName"},
		{"missing last name", func(p *Profile) { p.LastName = "" }, "lastName"},
		{"bad email", func(p *Profile) { p.Email = "nope" }, "email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := ValidateProfile(p, nil)
			require.True(t, hberrors.IsValidation(err))
			var verr *hberrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidateProjectDateOrder(t *testing.T) {
	ok := Project{Name: "Apollo", StartDate: NewDate(2026, 1, 1), EndDate: NewDate(2026, 6, 30)}
	assert.NoError(t, ValidateProject(ok, nil))

	openEnded := Project{Name: "Apollo", StartDate: NewDate(2026, 1, 1)}
	assert.NoError(t, ValidateProject(openEnded, nil))

	inverted := Project{Name: "Apollo", StartDate: NewDate(2026, 6, 30), EndDate: NewDate(2026, 1, 1)}
	err := ValidateProject(inverted, nil)
	require.True(t, hberrors.IsValidation(err))
	var verr *hberrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "endDate", verr.Field)
}

func TestValidateTeamMemberRejectsDuplicatePair(t *testing.T) {
	existing := []TeamMember{{ID: "m1", ProfileID: "p1", TeamID: "t1"}}

	err := ValidateTeamMember(TeamMember{ProfileID: "p1", TeamID: "t1"}, existing)
	assert.True(t, hberrors.IsValidation(err))

	// Same profile on another team is fine, and updating the existing link
	// does not collide with itself.
	assert.NoError(t, ValidateTeamMember(TeamMember{ProfileID: "p1", TeamID: "t2"}, existing))
	assert.NoError(t, ValidateTeamMember(TeamMember{ID: "m1", ProfileID: "p1", TeamID: "t1"}, existing))
}

func TestValidateAssignment(t *testing.T) {
	valid := Assignment{ProfileID: "p1", ProjectID: "pr1", Allocation: 50}
	assert.NoError(t, ValidateAssignment(valid, nil))

	tests := []struct {
		name   string
		rec    Assignment
		field  string
	}{
		{"missing profile", Assignment{ProjectID: "pr1"}, "profileId"},
		{"missing project", Assignment{ProfileID: "p1"}, "projectId"},
		{"allocation too high", Assignment{ProfileID: "p1", ProjectID: "pr1", Allocation: 150}, "allocation"},
		{"inverted dates", Assignment{ProfileID: "p1", ProjectID: "pr1", StartDate: NewDate(2026, 2, 1), EndDate: NewDate(2026, 1, 1)}, "endDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAssignment(tt.rec, nil)
			var verr *hberrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestPairKeys(t *testing.T) {
	assert.Equal(t, "p1|t1", TeamMember{ProfileID: "p1", TeamID: "t1"}.PairKey())
	assert.Equal(t, "p1|pr1", Assignment{ProfileID: "p1", ProjectID: "pr1"}.PairKey())
}
