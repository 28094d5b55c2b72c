package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braetspilscafeen/go-catalog-backend/internal/auth"
	"github.com/braetspilscafeen/go-catalog-backend/internal/games/domain"
	"github.com/braetspilscafeen/go-catalog-backend/internal/games/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memStore struct {
	games  map[string]*domain.Game
	nextID int
}

func newMemStore() *memStore {
	return &memStore{games: map[string]*domain.Game{}}
}

func (m *memStore) List(ctx context.Context) ([]*domain.Game, error) {
	out := []*domain.Game{}
	for _, g := range m.games {
		cp := *g
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memStore) GetByID(ctx context.Context, id string) (*domain.Game, error) {
	g, ok := m.games[id]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	cp := *g
	return &cp, nil
}

func (m *memStore) Create(ctx context.Context, g *domain.Game) (string, error) {
	m.nextID++
	id := fmt.Sprintf("game-%d", m.nextID)
	cp := *g
	cp.ID = id
	m.games[id] = &cp
	return id, nil
}

func (m *memStore) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	g, ok := m.games[id]
	if !ok {
		return domain.ErrGameNotFound
	}
	if name, ok := fields["name"].(string); ok {
		g.Name = name
	}
	if cafe, ok := fields["cafe"].(string); ok {
		g.Cafe = cafe
	}
	return nil
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	delete(m.games, id)
	return nil
}

func (m *memStore) AddFavorite(ctx context.Context, id, email string) error {
	g, ok := m.games[id]
	if !ok {
		return domain.ErrGameNotFound
	}
	if !g.LikedByContains(email) {
		g.LikedBy = append(g.LikedBy, email)
	}
	return nil
}

func (m *memStore) RemoveFavorite(ctx context.Context, id, email string) error {
	g, ok := m.games[id]
	if !ok {
		return domain.ErrGameNotFound
	}
	out := []string{}
	for _, e := range g.LikedBy {
		if e != email {
			out = append(out, e)
		}
	}
	g.LikedBy = out
	return nil
}

// newRouter builds an engine with fake guards: anonymous passthrough for
// optionalUser, a fixed signed-in user for requireUser, and an admin
// guard driven by the admin flag.
func newRouter(store *memStore, admin bool) *gin.Engine {
	r := gin.New()
	api := r.Group("/api/v1")

	optionalUser := func(c *gin.Context) { c.Next() }
	requireUser := func(c *gin.Context) { c.Set(auth.CtxEmail, "a@x.com") }
	requireAdmin := func(c *gin.Context) {
		if !admin {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
			c.Abort()
		}
	}

	New(service.NewGameService(store)).Register(api, optionalUser, requireUser, requireAdmin)
	return r
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedGame(store *memStore, name, cafe string, likedBy ...string) string {
	store.nextID++
	id := fmt.Sprintf("game-%d", store.nextID)
	store.games[id] = &domain.Game{ID: id, Name: name, Cafe: cafe, LikedBy: likedBy}
	return id
}

func TestListGrouped(t *testing.T) {
	store := newMemStore()
	seedGame(store, "Catan", "Aalborg")
	seedGame(store, "Azul", "Vestergade")
	seedGame(store, "Root", "Odense") // unknown café, dropped
	r := newRouter(store, false)

	w := perform(r, http.MethodGet, "/api/v1/games", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK    bool `json:"ok"`
		Cafes []struct {
			Cafe  string         `json:"cafe"`
			Games []*domain.Game `json:"games"`
		} `json:"cafes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.OK)
	require.Len(t, resp.Cafes, 4)

	assert.Equal(t, "Vestergade", resp.Cafes[0].Cafe)
	assert.Equal(t, "Fredensgade", resp.Cafes[1].Cafe)
	assert.Equal(t, "Aalborg", resp.Cafes[2].Cafe)
	assert.Equal(t, "Kolding", resp.Cafes[3].Cafe)

	total := 0
	for _, group := range resp.Cafes {
		total += len(group.Games)
	}
	assert.Equal(t, 2, total)
}

func TestGetGame(t *testing.T) {
	store := newMemStore()
	id := seedGame(store, "Catan", "Aalborg")
	r := newRouter(store, false)

	w := perform(r, http.MethodGet, "/api/v1/games/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Catan"`)

	w = perform(r, http.MethodGet, "/api/v1/games/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleFavoriteEndpoint(t *testing.T) {
	store := newMemStore()
	id := seedGame(store, "Catan", "Aalborg")
	r := newRouter(store, false)

	w := perform(r, http.MethodPost, "/api/v1/games/"+id+"/favorite", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"favorited":true`)
	assert.Contains(t, w.Body.String(), `"a@x.com"`)

	w = perform(r, http.MethodPost, "/api/v1/games/"+id+"/favorite", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"favorited":false`)
	assert.Contains(t, w.Body.String(), `"likedBy":[]`)
}

func TestFavoritesEndpoint(t *testing.T) {
	store := newMemStore()
	seedGame(store, "Catan", "Aalborg", "a@x.com")
	seedGame(store, "Azul", "Vestergade")
	r := newRouter(store, false)

	w := perform(r, http.MethodGet, "/api/v1/favorites", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Games []*domain.Game `json:"games"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Games, 1)
	assert.Equal(t, "Catan", resp.Games[0].Name)
}

func TestAdminRoutes(t *testing.T) {
	body := `{"name":"Catan","cafe":"Aalborg","location":"2nd floor","category":"Strategy",` +
		`"age":"10+","players":"3-4","playtime":"90 min","imgurl":"http://x/y.png"}`

	t.Run("create as admin", func(t *testing.T) {
		store := newMemStore()
		r := newRouter(store, true)

		w := perform(r, http.MethodPost, "/api/v1/games", body)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id"`)
		assert.Len(t, store.games, 1)
	})

	t.Run("create with missing required field", func(t *testing.T) {
		r := newRouter(newMemStore(), true)

		w := perform(r, http.MethodPost, "/api/v1/games", `{"name":"Catan"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("authoring surface is absent for non-admins", func(t *testing.T) {
		store := newMemStore()
		id := seedGame(store, "Catan", "Aalborg")
		r := newRouter(store, false)

		for _, req := range [][2]string{
			{http.MethodPost, "/api/v1/games"},
			{http.MethodPatch, "/api/v1/games/" + id},
			{http.MethodDelete, "/api/v1/games/" + id},
		} {
			w := perform(r, req[0], req[1], body)
			assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", req[0], req[1])
		}
		assert.Len(t, store.games, 1, "nothing mutated")
	})

	t.Run("partial update merges", func(t *testing.T) {
		store := newMemStore()
		id := seedGame(store, "Catan", "Aalborg")
		r := newRouter(store, true)

		w := perform(r, http.MethodPatch, "/api/v1/games/"+id, `{"name":"Catan 3D"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Catan 3D", store.games[id].Name)
		assert.Equal(t, "Aalborg", store.games[id].Cafe)
	})

	t.Run("update with no fields", func(t *testing.T) {
		store := newMemStore()
		id := seedGame(store, "Catan", "Aalborg")
		r := newRouter(store, true)

		w := perform(r, http.MethodPatch, "/api/v1/games/"+id, `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		store := newMemStore()
		id := seedGame(store, "Catan", "Aalborg")
		r := newRouter(store, true)

		w := perform(r, http.MethodDelete, "/api/v1/games/"+id, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, store.games)
	})
}
