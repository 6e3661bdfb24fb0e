package projection_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasa/framework/core/query"
	"github.com/lucasa/framework/core/query/projection"
	"github.com/lucasa/framework/core/schema"
)

type testAsset struct {
	Name    string `json:"name"`
	Service string `json:"service"`
	Owner   string `json:"owner"`
}

func newTestBuilder(t *testing.T) projection.Builder {
	t.Helper()
	registry := schema.NewRegistry()
	require.NoError(t, registry.Register("asset", testAsset{}))
	return projection.Builder{Schema: registry}
}

func TestBuild(t *testing.T) {
	capability := query.Capability{
		ListResource: true,
		Entity:       "asset",
		SearchFields: []string{query.Wildcard},
	}

	t.Run("should parse the fields parameter in order", func(t *testing.T) {
		builder := newTestBuilder(t)
		params, err := url.ParseQuery("fields=service,name")
		require.NoError(t, err)

		fc, err := builder.Build(params, capability)
		require.NoError(t, err)
		assert.Equal(t, []string{"service", "name"}, fc.Fields)
	})

	t.Run("should produce an empty context without the parameter", func(t *testing.T) {
		builder := newTestBuilder(t)
		fc, err := builder.Build(url.Values{}, capability)
		require.NoError(t, err)
		assert.Empty(t, fc.Fields)
	})

	t.Run("should reject fields outside the search fields", func(t *testing.T) {
		builder := newTestBuilder(t)
		params, err := url.ParseQuery("fields=owner")
		require.NoError(t, err)

		_, err = builder.Build(params, query.Capability{
			ListResource: true,
			Entity:       "asset",
			SearchFields: []string{"name"},
		})
		assert.Equal(t, query.FieldNotAllowedError{Field: "owner"}, err)
	})

	t.Run("should reject fields that are not entity properties", func(t *testing.T) {
		builder := newTestBuilder(t)
		params, err := url.ParseQuery("fields=ghost")
		require.NoError(t, err)

		_, err = builder.Build(params, capability)
		assert.Equal(t, query.UnknownFieldError{Entity: "asset", Field: "ghost"}, err)
	})
}

func TestProject(t *testing.T) {
	t.Run("should reduce map elements to the requested fields", func(t *testing.T) {
		content := []interface{}{
			map[string]interface{}{"name": "orders", "service": "kafka", "owner": "de"},
			map[string]interface{}{"name": "users", "service": "postgres"},
		}

		projected := projection.Project([]string{"name", "owner"}, content)
		assert.Equal(t, []interface{}{
			map[string]interface{}{"name": "orders", "owner": "de"},
			map[string]interface{}{"name": "users"},
		}, projected)
	})

	t.Run("should project structs through their json representation", func(t *testing.T) {
		content := []interface{}{
			testAsset{Name: "orders", Service: "kafka", Owner: "de"},
		}

		projected := projection.Project([]string{"service"}, content)
		assert.Equal(t, []interface{}{
			map[string]interface{}{"service": "kafka"},
		}, projected)
	})

	t.Run("should return content untouched without fields", func(t *testing.T) {
		content := []interface{}{map[string]interface{}{"name": "orders"}}
		assert.Equal(t, content, projection.Project(nil, content))
	})
}
