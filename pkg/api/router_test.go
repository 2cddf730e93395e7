package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urmzd/homeview/pkg/api/handlers"
	"github.com/urmzd/homeview/pkg/api/types"
	"github.com/urmzd/homeview/pkg/db"
	"github.com/urmzd/homeview/pkg/entity"
	"github.com/urmzd/homeview/pkg/entity/schema"
	"github.com/urmzd/homeview/pkg/route"
)

const fixture = `
devices:
  - id: lamp-1
    name: Hallway lamp
    attributes:
      - name: power
        string-state: "On"
        boolean-state: true
      - name: level
        numeric-state: 0
groups:
  - id: downstairs
    name: Downstairs
    attributes:
      - name: all-on
        string-state: ""
        boolean-state: false
adapters:
  - id: "42"
    name: Hue bridge
`

type testServer struct {
	handler http.Handler
	store   entity.Store
	broker  *entity.Broker
}

func newTestServer(t *testing.T, basePath string) *testServer {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	ctx := context.Background()
	require.NoError(t, database.Migrate(ctx))
	entities, err := db.ParseSeed([]byte(fixture))
	require.NoError(t, err)
	require.NoError(t, database.ImportSeed(ctx, entities))

	broker := entity.NewBroker(8)
	t.Cleanup(broker.Close)

	router, err := NewRouter(database.Entities(), broker, schema.NewValidator(), Options{
		BasePath: basePath,
		Site:     handlers.Site{Profile: "default", Timezone: "UTC"},
	})
	require.NoError(t, err)

	return &testServer{handler: router.Handler(), store: database.Entities(), broker: broker}
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestPages_RootRedirect(t *testing.T) {
	s := newTestServer(t, "/")

	w := s.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/home", w.Header().Get("Location"))
}

func TestPages_Home(t *testing.T) {
	s := newTestServer(t, "/")

	w := s.do(http.MethodGet, "/home", "")
	require.Equal(t, http.StatusOK, w.Code)

	p := decodeJSON[homePage](t, w)
	assert.Equal(t, route.NameHome, p.View)
	assert.Equal(t, "default", p.Data.Profile)
	assert.Equal(t, map[string]int{"devices": 1, "groups": 1, "adapters": 1}, p.Data.Counts)
	assert.Contains(t, p.Data.Links, types.Link{Name: route.NameAdapters, Href: "/adapters"})
}

type homePage struct {
	View string         `json:"view"`
	Data types.HomeData `json:"data"`
}

type detailPage struct {
	View   string            `json:"view"`
	Chain  []string          `json:"chain"`
	Params map[string]string `json:"params"`
	Data   struct {
		Collection struct {
			Count int `json:"count"`
		} `json:"collection"`
		Entity *struct {
			ID         string `json:"id"`
			Href       string `json:"href"`
			Attributes []struct {
				Name  string `json:"name"`
				Value any    `json:"value"`
			} `json:"attributes"`
		} `json:"entity"`
	} `json:"data"`
	Error *types.ErrorResponse `json:"error"`
}

func TestPages_AdapterDetail(t *testing.T) {
	s := newTestServer(t, "/")

	w := s.do(http.MethodGet, "/adapters/42", "")
	require.Equal(t, http.StatusOK, w.Code)

	p := decodeJSON[detailPage](t, w)
	assert.Equal(t, route.NameAdapterDetail, p.View)
	assert.Equal(t, []string{route.NameAdapters, route.NameAdapterDetail}, p.Chain)
	assert.Equal(t, "42", p.Params["id"])
	assert.Equal(t, 1, p.Data.Collection.Count)
	require.NotNil(t, p.Data.Entity)
	assert.Equal(t, "42", p.Data.Entity.ID)
	assert.Equal(t, "/adapters/42", p.Data.Entity.Href)
	assert.Empty(t, p.Data.Entity.Attributes)
}

func TestPages_DetailExtractsValues(t *testing.T) {
	s := newTestServer(t, "/")

	p := decodeJSON[detailPage](t, s.do(http.MethodGet, "/devices/lamp-1", ""))
	require.NotNil(t, p.Data.Entity)
	require.Len(t, p.Data.Entity.Attributes, 2)
	assert.Equal(t, "On", p.Data.Entity.Attributes[0].Value)
	assert.Equal(t, 0.0, p.Data.Entity.Attributes[1].Value)

	p = decodeJSON[detailPage](t, s.do(http.MethodGet, "/groups/downstairs", ""))
	require.NotNil(t, p.Data.Entity)
	assert.Equal(t, false, p.Data.Entity.Attributes[0].Value)
}

func TestPages_DetailUnknownEntity(t *testing.T) {
	s := newTestServer(t, "/")

	w := s.do(http.MethodGet, "/devices/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	p := decodeJSON[detailPage](t, w)
	assert.Equal(t, route.NameDeviceDetail, p.View)
	assert.Nil(t, p.Data.Entity)
	require.NotNil(t, p.Error)
	assert.Equal(t, "not_found", p.Error.Error)
}

func TestPages_NotFound(t *testing.T) {
	s := newTestServer(t, "/")

	w := s.do(http.MethodGet, "/bogus/path", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	p := decodeJSON[types.Page](t, w)
	assert.Equal(t, route.NameNotFound, p.View)
	assert.Equal(t, "/bogus/path", p.Path)
	require.NotNil(t, p.Error)
}

func TestPages_BasePath(t *testing.T) {
	s := newTestServer(t, "/ui")

	w := s.do(http.MethodGet, "/ui/", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/ui/home", w.Header().Get("Location"))

	p := decodeJSON[detailPage](t, s.do(http.MethodGet, "/ui/adapters/42", ""))
	require.NotNil(t, p.Data.Entity)
	assert.Equal(t, "/ui/adapters/42", p.Data.Entity.Href)

	w = s.do(http.MethodGet, "/adapters/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type collectionPage struct {
	View string `json:"view"`
	Data struct {
		Items []struct {
			ID   string `json:"id"`
			Href string `json:"href"`
		} `json:"items"`
	} `json:"data"`
}

func TestPages_CollectionHrefsOpenDetail(t *testing.T) {
	for _, base := range []string{"/", "/ui"} {
		s := newTestServer(t, base)
		ctx := context.Background()
		for _, id := range []string{"hall lamp", "50%", "ünï"} {
			require.NoError(t, s.store.Put(ctx, &entity.Entity{Kind: entity.KindDevice, ID: id, Name: id}))
		}

		for _, tt := range []struct {
			collection string
			detail     string
		}{
			{"devices", route.NameDeviceDetail},
			{"groups", route.NameGroupDetail},
			{"adapters", route.NameAdapterDetail},
		} {
			w := s.do(http.MethodGet, strings.TrimSuffix(base, "/")+"/"+tt.collection, "")
			require.Equal(t, http.StatusOK, w.Code)
			list := decodeJSON[collectionPage](t, w)
			require.NotEmpty(t, list.Data.Items, tt.collection)

			for _, item := range list.Data.Items {
				w := s.do(http.MethodGet, item.Href, "")
				require.Equal(t, http.StatusOK, w.Code, item.Href)
				p := decodeJSON[detailPage](t, w)
				assert.Equal(t, tt.detail, p.View, item.Href)
				assert.Equal(t, item.ID, p.Params["id"], item.Href)
				require.NotNil(t, p.Data.Entity, item.Href)
				assert.Equal(t, item.ID, p.Data.Entity.ID)
			}
		}
	}
}

func TestAPI_ListAndGet(t *testing.T) {
	s := newTestServer(t, "/")

	w := s.do(http.MethodGet, "/api/v1/devices", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeJSON[types.ListEntitiesResponse](t, w)
	assert.Equal(t, 1, list.Count)

	w = s.do(http.MethodGet, "/api/v1/groups/downstairs", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/v1/groups/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/v1/scenes", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_GetAttribute(t *testing.T) {
	s := newTestServer(t, "/")

	tests := []struct {
		target string
		want   any
	}{
		{"/api/v1/devices/lamp-1/attributes/power", "On"},
		{"/api/v1/devices/lamp-1/attributes/level", 0.0},
		{"/api/v1/devices/lamp-1/attributes/missing", entity.Unknown},
		{"/api/v1/groups/downstairs/attributes/all-on", false},
		{"/api/v1/adapters/42/attributes/status", entity.Unknown},
	}
	for _, tt := range tests {
		w := s.do(http.MethodGet, tt.target, "")
		require.Equal(t, http.StatusOK, w.Code, tt.target)
		resp := decodeJSON[map[string]any](t, w)
		assert.Equal(t, tt.want, resp["value"], tt.target)
	}
}

func TestAPI_PutPublishesAndDelete(t *testing.T) {
	s := newTestServer(t, "/")
	events := s.broker.Subscribe()

	w := s.do(http.MethodPut, "/api/v1/adapters/7", `{
		"name": "Zigbee stick",
		"attributes": [{"name": "status", "string-state": "online"}]
	}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	ev := <-events
	assert.Equal(t, entity.EventUpdated, ev.Type)
	assert.Equal(t, entity.KindAdapter, ev.Kind)
	assert.Equal(t, "7", ev.ID)

	stored, err := s.store.Get(context.Background(), entity.KindAdapter, "7")
	require.NoError(t, err)
	assert.Equal(t, "online", entity.Extract(stored, "status").Any())

	w = s.do(http.MethodDelete, "/api/v1/adapters/7", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	ev = <-events
	assert.Equal(t, entity.EventRemoved, ev.Type)

	w = s.do(http.MethodDelete, "/api/v1/adapters/7", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_PutValidation(t *testing.T) {
	s := newTestServer(t, "/")

	w := s.do(http.MethodPut, "/api/v1/devices/x", `{"name": "x", "attributes": [{"name": "a", "numeric-state": "high"}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", decodeJSON[types.ErrorResponse](t, w).Error)

	w = s.do(http.MethodPut, "/api/v1/devices/x", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", decodeJSON[types.ErrorResponse](t, w).Error)
}

func TestAPI_PutBodyTooLarge(t *testing.T) {
	s := newTestServer(t, "/")

	name := strings.Repeat("x", 1<<20)
	w := s.do(http.MethodPut, "/api/v1/devices/x", `{"name": "`+name+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "payload_too_large", decodeJSON[types.ErrorResponse](t, w).Error)

	_, err := s.store.Get(context.Background(), entity.KindDevice, "x")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestAPI_HealthAndRoutes(t *testing.T) {
	s := newTestServer(t, "/")

	w := s.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decodeJSON[types.HealthResponse](t, w).Status)

	w = s.do(http.MethodGet, "/api/v1/routes", "")
	require.Equal(t, http.StatusOK, w.Code)
	routes := decodeJSON[types.RoutesResponse](t, w)
	assert.Equal(t, route.Table(), routes.Routes)
}

func TestMiddleware_RequestID(t *testing.T) {
	s := newTestServer(t, "/")

	w := s.do(http.MethodGet, "/health", "")
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
}

func TestNewRouter_NullSourceIsDegraded(t *testing.T) {
	router, err := NewRouter(nullStore{entity.NewNullSource()}, entity.NewBroker(1), schema.NewValidator(), Options{})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// nullStore adapts NullSource to entity.Store.
type nullStore struct{ *entity.NullSource }

func (nullStore) Put(context.Context, *entity.Entity) error         { return entity.ErrNotConnected }
func (nullStore) Delete(context.Context, entity.Kind, string) error { return entity.ErrNotConnected }

// countFailStore fails every Count.
type countFailStore struct{ entity.Store }

func (countFailStore) Count(context.Context, entity.Kind) (int, error) {
	return 0, errors.New("disk I/O error")
}

func TestPages_HomeLinksSurviveCountFailure(t *testing.T) {
	router, err := NewRouter(countFailStore{nullStore{entity.NewNullSource()}}, entity.NewBroker(1), schema.NewValidator(), Options{})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/home", nil))
	require.Equal(t, http.StatusOK, w.Code)

	p := decodeJSON[homePage](t, w)
	assert.Empty(t, p.Data.Counts)
	assert.Equal(t, []types.Link{
		{Name: route.NameDevices, Href: "/devices"},
		{Name: route.NameGroups, Href: "/groups"},
		{Name: route.NameAdapters, Href: "/adapters"},
	}, p.Data.Links)
}
