package api

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/lucasa/framework/core/query"
	"github.com/lucasa/framework/core/schema"
)

// Resolver maps matched routes to their declared capability. Capabilities
// are registered once during route wiring and looked up by route name, so
// resolution per request is a single map read.
type Resolver struct {
	mu      sync.RWMutex
	byRoute map[string]query.Capability
	schema  *schema.Registry
}

func NewResolver(registry *schema.Registry) *Resolver {
	return &Resolver{
		byRoute: map[string]query.Capability{},
		schema:  registry,
	}
}

// Register declares the capability of a named route. A capability naming an
// unregistered entity is a wiring bug and fails here, never per request.
func (r *Resolver) Register(route string, cap query.Capability) error {
	if cap.Entity != "" && !r.schema.Has(cap.Entity) {
		return fmt.Errorf("route %q: entity %q is not registered", route, cap.Entity)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byRoute[route]; exists {
		return fmt.Errorf("route %q already has a capability", route)
	}
	r.byRoute[route] = cap
	return nil
}

func (r *Resolver) MustRegister(route string, cap query.Capability) {
	if err := r.Register(route, cap); err != nil {
		panic(err)
	}
}

// Resolve returns the capability of the route that matched req.
func (r *Resolver) Resolve(req *http.Request) (query.Capability, bool) {
	route := mux.CurrentRoute(req)
	if route == nil {
		return query.Capability{}, false
	}
	name := route.GetName()
	if name == "" {
		return query.Capability{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	cap, ok := r.byRoute[name]
	return cap, ok
}
