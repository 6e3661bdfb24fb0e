package set_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucasa/framework/lib/set"
)

func TestStringSet(t *testing.T) {
	t.Run("should deduplicate members", func(t *testing.T) {
		ss := set.NewStringSet("name", "service", "name")
		assert.Len(t, ss, 2)
		assert.True(t, ss["name"])
		assert.True(t, ss["service"])
		assert.False(t, ss["owner"])
	})

	t.Run("should allow map-like membership access", func(t *testing.T) {
		ss := set.NewStringSet()
		assert.False(t, ss["name"])
		ss.Add("name")
		assert.True(t, ss["name"])
	})

	t.Run("should list its values", func(t *testing.T) {
		values := set.NewStringSet("b", "a").Values()
		sort.Strings(values)
		assert.Equal(t, []string{"a", "b"}, values)
	})
}
