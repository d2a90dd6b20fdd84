package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Antivenom-Brazil/antivenom-app/internal/adapter/handler"
	"github.com/Antivenom-Brazil/antivenom-app/internal/adapter/repository/jsonfile"
	"github.com/Antivenom-Brazil/antivenom-app/internal/infrastructure/metrics"
	"github.com/Antivenom-Brazil/antivenom-app/internal/infrastructure/server"
	"github.com/Antivenom-Brazil/antivenom-app/internal/usecase/center"
	"github.com/Antivenom-Brazil/antivenom-app/internal/usecase/search"
	"github.com/Antivenom-Brazil/antivenom-app/internal/usecase/stats"
)

// newTestRouter wires the real stack on top of the testdata dataset, as
// main does, minus redis.
func newTestRouter(t *testing.T) *server.Router {
	t.Helper()

	logger := zap.NewNop()
	repo := jsonfile.NewCenterRepo("testdata/centros.json", logger)

	return server.NewRouter(server.RouterConfig{
		SearchHandler: handler.NewSearchHandler(search.NewService(repo), metrics.New()),
		CenterHandler: handler.NewCenterHandler(center.NewService(repo)),
		StatsHandler:  handler.NewStatsHandler(stats.NewService(repo)),
		Metrics:       metrics.New(),
		Logger:        logger,
		Environment:   "test",
	})
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_NearestEndToEnd(t *testing.T) {
	router := newTestRouter(t)

	// Origin in central São Paulo: Butantan first, Rio second.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/centers/nearest?lat=-23.5505&lng=-46.6333&limit=2", nil)
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Results []struct {
			Center struct {
				ID string `json:"id"`
			} `json:"center"`
			DistanceKm    float64 `json:"distance_km"`
			DistanceLabel string  `json:"distance_label"`
		} `json:"results"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "1", resp.Results[0].Center.ID)
	assert.Equal(t, "2", resp.Results[1].Center.ID)
	assert.Less(t, resp.Results[0].DistanceKm, resp.Results[1].DistanceKm)
	assert.NotEmpty(t, resp.Results[0].DistanceLabel)
}

func TestRouter_NearestWithFilters(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/centers/nearest?lat=-23.5505&lng=-46.6333&serum_type=Antilaquético&uf=AM", nil)
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Results []struct {
			Center struct {
				ID string `json:"id"`
			} `json:"center"`
		} `json:"results"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "3", resp.Results[0].Center.ID)
}

func TestRouter_NearestRejectsOutOfRangeOrigin(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/centers/nearest?lat=91&lng=0", nil)
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_LOCATION", resp["code"])
}

func TestRouter_FiltersAndStats(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/filters", nil)
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var filters struct {
		UFs        []string `json:"ufs"`
		SerumTypes []string `json:"serum_types"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &filters))
	assert.Equal(t, []string{"AM", "RJ", "SP"}, filters.UFs)
	assert.Contains(t, filters.SerumTypes, "Antilaquético")

	req = httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	w = httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var summary struct {
		TotalCenters int            `json:"total_centers"`
		ByRegion     map[string]int `json:"by_region"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 3, summary.TotalCenters)
	assert.Equal(t, 2, summary.ByRegion["Sudeste"])
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
