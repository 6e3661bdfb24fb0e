package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasa/framework/config"
	"github.com/lucasa/framework/core/query"
	"github.com/lucasa/framework/internal/server"
)

type stubStore struct {
	result *query.Result
	last   *query.Context
}

func (s *stubStore) List(_ context.Context, qc *query.Context) (*query.Result, error) {
	s.last = qc
	return s.result, nil
}

func testConfig() config.Config {
	return config.Config{
		SortEnabled:       true,
		FilterEnabled:     true,
		PaginationEnabled: true,
		DefaultPagination: 20,
		MaxPageSize:       100,
	}
}

func TestNewRouter(t *testing.T) {
	store := &stubStore{result: &query.Result{
		Content: []interface{}{
			map[string]interface{}{"name": "orders", "service": "kafka"},
		},
		EntityType: "asset",
		TotalCount: 1,
	}}

	router, err := server.NewRouter(server.Deps{
		Logger: log.NewNoop(),
		Config: testConfig(),
		Assets: store,
	})
	require.NoError(t, err)

	t.Run("should serve the asset list", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/assets?sort=name", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var body []map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "orders", body[0]["name"])

		require.NotNil(t, store.last)
		assert.True(t, store.last.Sort.Enabled)
		assert.Equal(t, []query.SortEntry{{Field: "name", Direction: query.ASC}}, store.last.Sort.Sorts)
	})

	t.Run("should reject unknown sort fields", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/assets?sort=ghost", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "asset 100", rr.Header().Get(query.HeaderAcceptRange))
	})
}
