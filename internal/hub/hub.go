// Package hub wires the backend client, the in-memory collection views, and
// the offline snapshot store into one handle per resource. Commands and the
// interactive browser talk to these handles, never to the HTTP client
// directly.
package hub

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/resourcehub/hubctl/internal/collection"
	"github.com/resourcehub/hubctl/internal/config"
	"github.com/resourcehub/hubctl/internal/domain"
	hberrors "github.com/resourcehub/hubctl/internal/errors"
	"github.com/resourcehub/hubctl/internal/hubapi"
	"github.com/resourcehub/hubctl/internal/logging"
	"github.com/resourcehub/hubctl/internal/session"
	"github.com/resourcehub/hubctl/internal/store"
)

// Hub bundles the per-resource handles sharing one client and one snapshot
// store.
type Hub struct {
	Client    *hubapi.Client
	Session   *session.Session
	Snapshots *store.SnapshotStore

	Profiles    *Handle[domain.Profile]
	Projects    *Handle[domain.Project]
	Teams       *Handle[domain.Team]
	TeamMembers *Handle[domain.TeamMember]
	Assignments *Handle[domain.Assignment]
	Locations   *Handle[domain.Location]
	Clients     *Handle[domain.Client]
	Skills      *Handle[domain.Skill]
}

// New builds a hub from the loaded configuration and persisted session.
func New() (*Hub, error) {
	sess, err := session.Load()
	if err != nil {
		return nil, err
	}

	client := hubapi.NewClient(
		config.Get("server_url", "http://localhost:8080"),
		hubapi.WithTimeout(time.Duration(config.GetInt("request_timeout_seconds", 15))*time.Second),
		hubapi.WithToken(func() string { return sess.Token }),
	)

	var snapshots *store.SnapshotStore
	if config.GetBool("offline_cache", true) {
		snapshots, err = store.Open(filepath.Join(config.Get("cache_dir", os.TempDir()), "snapshots.db"))
		if err != nil {
			// Offline fallback is best effort; keep going without it.
			logging.Warn("snapshot store unavailable", "error", err)
			snapshots = nil
		}
	}

	h := &Hub{Client: client, Session: sess, Snapshots: snapshots}
	pageSize := config.GetInt("page_size", 10)

	h.Locations = newHandle(client, snapshots, "locations", domain.LocationSchema(), pageSize,
		collection.WithValidator[domain.Location](domain.ValidateLocation))
	h.Clients = newHandle(client, snapshots, "clients", domain.ClientSchema(), pageSize,
		collection.WithValidator[domain.Client](domain.ValidateClient))
	h.Skills = newHandle(client, snapshots, "skills", domain.SkillSchema(), pageSize,
		collection.WithValidator[domain.Skill](domain.ValidateSkill))
	h.Teams = newHandle(client, snapshots, "teams", domain.TeamSchema(), pageSize,
		collection.WithValidator[domain.Team](domain.ValidateTeam))

	h.Profiles = newHandle(client, snapshots, "profiles", domain.ProfileSchema(), pageSize,
		collection.WithValidator[domain.Profile](domain.ValidateProfile))
	h.Profiles.project = func(items []domain.Profile) []domain.Profile {
		return domain.EnrichProfiles(
			domain.LocationLookup(h.Locations.cache.Items()),
			domain.SkillLookup(h.Skills.cache.Items()),
		)(items)
	}

	h.Projects = newHandle(client, snapshots, "projects", domain.ProjectSchema(), pageSize,
		collection.WithValidator[domain.Project](domain.ValidateProject))
	h.Projects.project = func(items []domain.Project) []domain.Project {
		return domain.EnrichProjects(domain.ClientLookup(h.Clients.cache.Items()))(items)
	}

	h.TeamMembers = newHandle(client, snapshots, "team-members", domain.TeamMemberSchema(), pageSize,
		collection.WithValidator[domain.TeamMember](domain.ValidateTeamMember),
		collection.WithKeyFunc[domain.TeamMember](func(m domain.TeamMember) string { return m.PairKey() }))
	h.TeamMembers.project = func(items []domain.TeamMember) []domain.TeamMember {
		return domain.EnrichTeamMembers(
			domain.ProfileLookup(h.Profiles.cache.Items()),
			domain.TeamLookup(h.Teams.cache.Items()),
		)(items)
	}

	h.Assignments = newHandle(client, snapshots, "assignments", domain.AssignmentSchema(), pageSize,
		collection.WithValidator[domain.Assignment](domain.ValidateAssignment),
		collection.WithKeyFunc[domain.Assignment](func(a domain.Assignment) string { return a.PairKey() }))
	h.Assignments.project = func(items []domain.Assignment) []domain.Assignment {
		return domain.EnrichAssignments(
			domain.ProfileLookup(h.Profiles.cache.Items()),
			domain.ProjectLookup(h.Projects.cache.Items()),
		)(items)
	}

	return h, nil
}

// Close releases the snapshot store.
func (h *Hub) Close() error {
	if h.Snapshots != nil {
		return h.Snapshots.Close()
	}
	return nil
}

// Handle is the per-resource unit: typed endpoint, cache, view, coordinator,
// and snapshot fallback.
type Handle[T collection.Record] struct {
	name      string
	api       *hubapi.Resource[T]
	cache     *collection.Cache[T]
	view      *collection.View[T]
	coord     *collection.Coordinator[T]
	snapshots *store.SnapshotStore
	project   func([]T) []T

	// Offline reports whether the last load came from a snapshot.
	Offline   bool
	FetchedAt time.Time
}

func newHandle[T collection.Record](
	client *hubapi.Client,
	snapshots *store.SnapshotStore,
	name string,
	schema collection.Schema[T],
	pageSize int,
	opts ...collection.CoordinatorOption[T],
) *Handle[T] {
	h := &Handle[T]{
		name:      name,
		api:       hubapi.NewResource[T](client, name),
		cache:     collection.NewCache[T](),
		snapshots: snapshots,
	}
	h.coord = collection.NewCoordinator(h.api, h.cache, opts...)
	h.view = collection.NewView(h.cache, schema, pageSize,
		collection.WithProjection[T](func(items []T) []T {
			if h.project == nil {
				return items
			}
			return h.project(items)
		}))
	return h
}

// Name returns the collection name.
func (h *Handle[T]) Name() string { return h.name }

// View returns the collection view over the cached records.
func (h *Handle[T]) View() *collection.View[T] { return h.view }

// Items returns the cached records.
func (h *Handle[T]) Items() []T { return h.cache.Items() }

// Load fetches the collection. On success the snapshot is refreshed; on a
// fetch failure the last snapshot is loaded instead, when one exists. Stale
// responses from superseded loads are dropped silently.
func (h *Handle[T]) Load(ctx context.Context) error {
	gen := h.cache.BeginLoad()
	items, err := h.api.List(ctx)

	applyErr := h.cache.ApplyLoad(gen, items, err)
	if hberrors.IsStale(applyErr) {
		return nil
	}
	if applyErr == nil {
		h.Offline = false
		h.FetchedAt = time.Now()
		if h.snapshots != nil {
			if err := store.SaveItems(ctx, h.snapshots, h.name, items); err != nil {
				logging.Warn("snapshot save failed", "collection", h.name, "error", err)
			}
		}
		return nil
	}
	if hberrors.IsFetch(applyErr) && h.snapshots != nil {
		cached, at, loadErr := store.LoadItems[T](ctx, h.snapshots, h.name)
		if loadErr == nil {
			gen = h.cache.BeginLoad()
			if err := h.cache.ApplyLoad(gen, cached, nil); err == nil {
				logging.Info("serving snapshot", "collection", h.name, "fetched_at", at)
				h.Offline = true
				h.FetchedAt = at
				return nil
			}
		}
	}
	return applyErr
}

// Create submits a new record through the mutation coordinator.
func (h *Handle[T]) Create(ctx context.Context, rec T) (T, error) {
	return h.coord.Create(ctx, rec)
}

// Update submits changes to an existing record.
func (h *Handle[T]) Update(ctx context.Context, id string, rec T) (T, error) {
	return h.coord.Update(ctx, id, rec)
}

// Delete removes a record after server confirmation.
func (h *Handle[T]) Delete(ctx context.Context, id string) error {
	return h.coord.Delete(ctx, id)
}

// Pending returns the in-flight mutations.
func (h *Handle[T]) Pending() []collection.PendingMutation {
	return h.coord.Pending()
}
