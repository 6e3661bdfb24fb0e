package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"

	"github.com/lucasa/framework/api"
	"github.com/lucasa/framework/config"
	"github.com/lucasa/framework/core/query"
	"github.com/lucasa/framework/core/query/filtering"
	"github.com/lucasa/framework/core/query/pagination"
	"github.com/lucasa/framework/core/query/projection"
	"github.com/lucasa/framework/core/query/sorting"
	"github.com/lucasa/framework/core/schema"
	"github.com/lucasa/framework/internal/store/postgres"
)

// AssetStore is the slice of the storage layer the asset endpoint needs.
type AssetStore interface {
	List(ctx context.Context, qc *query.Context) (*query.Result, error)
}

type Deps struct {
	Logger log.Logger
	Config config.Config
	Assets AssetStore
}

// NewRouter wires the query layer: the schema registry and capability
// resolver are built once here, and every list route goes through the
// api.Handler adapter.
func NewRouter(deps Deps) (*mux.Router, error) {
	registry := schema.NewRegistry()
	if err := registry.Register("asset", Asset{}); err != nil {
		return nil, err
	}

	resolver := api.NewResolver(registry)
	handler := &api.Handler{
		Logger:   deps.Logger,
		Resolver: resolver,
		Sort: sorting.Builder{
			Schema:  registry,
			Enabled: deps.Config.SortEnabled,
		},
		Filter: filtering.Builder{
			Schema:  registry,
			Enabled: deps.Config.FilterEnabled,
		},
		Pagination: pagination.Builder{
			Enabled:     deps.Config.PaginationEnabled,
			DefaultSize: deps.Config.DefaultPagination,
			MaxSize:     deps.Config.MaxPageSize,
		},
		Projection:   projection.Builder{Schema: registry},
		Transformers: map[string]query.Transform{},
	}

	router := mux.NewRouter()
	router.Handle("/v1/assets", handler.List(listAssets(deps.Assets))).
		Methods(http.MethodGet).
		Name("assets.list")
	if err := resolver.Register("assets.list", query.Capability{
		ListResource: true,
		Entity:       "asset",
		SearchFields: []string{query.Wildcard},
	}); err != nil {
		return nil, err
	}

	return router, nil
}

func listAssets(store AssetStore) api.ListHandler {
	return func(r *http.Request, qc *query.Context) (*query.Result, error) {
		return store.List(r.Context(), qc)
	}
}

// Serve runs the HTTP server until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, logger log.Logger, cfg config.Config, router *mux.Router) error {
	addr := net.JoinHostPort(cfg.ServerHost, cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()
	logger.Info("server started", "addr", addr)

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("server shutting down")
	return srv.Shutdown(shutdownCtx)
}

var _ AssetStore = (*postgres.ListRepository)(nil)
