package hubapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hberrors "github.com/resourcehub/hubctl/internal/errors"
)

type fakeProject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestResourceListSendsBearerAndDecodes(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/projects", r.URL.Path)
		json.NewEncoder(w).Encode([]fakeProject{{ID: "1", Name: "Apollo"}})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithToken(func() string { return "tok-123" }))
	projects := NewResource[fakeProject](client, "projects")

	items, err := projects.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Apollo", items[0].Name)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestResourceCreateReturnsServerCopy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in fakeProject
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = "server-9"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(in)
	}))
	defer server.Close()

	projects := NewResource[fakeProject](NewClient(server.URL), "projects")
	created, err := projects.Create(context.Background(), fakeProject{Name: "Apollo"})
	require.NoError(t, err)
	assert.Equal(t, "server-9", created.ID)
}

func TestResourceUpdateAndDeletePaths(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPut {
			json.NewEncoder(w).Encode(fakeProject{ID: "7", Name: "renamed"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	projects := NewResource[fakeProject](NewClient(server.URL), "projects")

	updated, err := projects.Update(context.Background(), "7", fakeProject{Name: "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "7", updated.ID)

	require.NoError(t, projects.Delete(context.Background(), "7"))
	assert.Equal(t, []string{"PUT /api/v1/projects/7", "DELETE /api/v1/projects/7"}, paths)
}

func TestNonSuccessStatusIsFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "insufficient role"})
	}))
	defer server.Close()

	projects := NewResource[fakeProject](NewClient(server.URL), "projects")
	_, err := projects.List(context.Background())

	require.True(t, hberrors.IsFetch(err))
	var fe *hberrors.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusForbidden, fe.Status)
	assert.Equal(t, "/api/v1/projects", fe.Path)
	assert.Contains(t, fe.Message, "insufficient role")
}

func TestNetworkFailureIsFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listens anymore

	projects := NewResource[fakeProject](NewClient(server.URL), "projects")
	_, err := projects.List(context.Background())

	require.True(t, hberrors.IsFetch(err))
	var fe *hberrors.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Zero(t, fe.Status)
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(LoginResponse{Token: "tok-abc"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Login(context.Background(), "anna@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", resp.Token)

	_, err = client.Login(context.Background(), "anna@example.com", "wrong")
	require.True(t, hberrors.IsFetch(err))
	var fe *hberrors.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusUnauthorized, fe.Status)
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	client := NewClient("http://localhost:8080/")
	assert.Equal(t, "http://localhost:8080", client.BaseURL())
}
