package pagination_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasa/framework/core/query"
	"github.com/lucasa/framework/core/query/pagination"
)

func listCapability() query.Capability {
	return query.Capability{
		ListResource: true,
		Entity:       "asset",
		SearchFields: []string{query.Wildcard},
	}
}

func TestBuild(t *testing.T) {
	type testCase struct {
		Description string
		RawQuery    string
		Expect      query.PaginationContext
		ExpectErr   string
	}

	builder := pagination.Builder{Enabled: true, DefaultSize: 20, MaxSize: 100}

	testCases := []testCase{
		{
			Description: "should apply the default window without a range parameter",
			RawQuery:    "",
			Expect:      query.PaginationContext{Enabled: true, Offset: 0, Limit: 20},
		},
		{
			Description: "should parse range into offset and limit",
			RawQuery:    "range=10-19",
			Expect:      query.PaginationContext{Enabled: true, Offset: 10, Limit: 10},
		},
		{
			Description: "should match the range key case-insensitively",
			RawQuery:    "RANGE=0-9",
			Expect:      query.PaginationContext{Enabled: true, Offset: 0, Limit: 10},
		},
		{
			Description: "should reject a malformed range",
			RawQuery:    "range=abc",
			ExpectErr:   `invalid range parameter "abc", expected start-end`,
		},
		{
			Description: "should reject a range with a non-numeric bound",
			RawQuery:    "range=0-x",
			ExpectErr:   `invalid range parameter "0-x", expected start-end`,
		},
		{
			Description: "should reject a range starting past its end",
			RawQuery:    "range=9-0",
			ExpectErr:   `invalid range parameter "9-0", start is past the end`,
		},
		{
			Description: "should reject a window above the maximum page size",
			RawQuery:    "range=0-150",
			ExpectErr:   "the requested page size 151 exceeds the maximum of 100",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			params, err := url.ParseQuery(tc.RawQuery)
			require.NoError(t, err)

			pc, err := builder.Build(params, listCapability())
			if tc.ExpectErr != "" {
				require.Error(t, err)
				assert.Equal(t, tc.ExpectErr, err.Error())
				assert.True(t, query.IsBadRequest(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expect, pc)
		})
	}
}

func TestIsPartialContent(t *testing.T) {
	builder := pagination.Builder{Enabled: true}

	type testCase struct {
		Description string
		Result      *query.Result
		Expect      bool
	}

	testCases := []testCase{
		{
			Description: "full collection from the start is not partial",
			Result:      &query.Result{Content: make([]interface{}, 3), TotalCount: 3, Offset: 0},
			Expect:      false,
		},
		{
			Description: "a window smaller than the collection is partial",
			Result:      &query.Result{Content: make([]interface{}, 2), TotalCount: 5, Offset: 0},
			Expect:      true,
		},
		{
			Description: "an offset window is partial",
			Result:      &query.Result{Content: make([]interface{}, 2), TotalCount: 5, Offset: 3},
			Expect:      true,
		},
		{
			Description: "an empty collection is not partial",
			Result:      &query.Result{Content: []interface{}{}, TotalCount: 0},
			Expect:      false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			assert.Equal(t, tc.Expect, builder.IsPartialContent(tc.Result))
		})
	}
}

func TestBuildHeaders(t *testing.T) {
	builder := pagination.Builder{Enabled: true, DefaultSize: 10, MaxSize: 100}
	u, err := url.Parse("http://localhost:8080/v1/assets?sort=name&range=10-19")
	require.NoError(t, err)

	result := &query.Result{
		Content:    make([]interface{}, 10),
		EntityType: "asset",
		TotalCount: 35,
		Offset:     10,
		Limit:      10,
	}

	headers := builder.BuildHeaders(listCapability(), u, result)

	assert.Equal(t, "10-19/35", headers[query.HeaderContentRange])
	assert.Equal(t, "asset 100", headers[query.HeaderAcceptRange])

	link := headers[query.HeaderLink]
	assert.Contains(t, link, `<http://localhost:8080/v1/assets?range=0-9&sort=name>; rel="first"`)
	assert.Contains(t, link, `<http://localhost:8080/v1/assets?range=0-9&sort=name>; rel="prev"`)
	assert.Contains(t, link, `<http://localhost:8080/v1/assets?range=20-29&sort=name>; rel="next"`)
	assert.Contains(t, link, `<http://localhost:8080/v1/assets?range=30-39&sort=name>; rel="last"`)
}

func TestAcceptRange(t *testing.T) {
	builder := pagination.Builder{Enabled: true, MaxSize: 50}
	key, value := builder.AcceptRange(query.Capability{Entity: "Asset"})
	assert.Equal(t, query.HeaderAcceptRange, key)
	assert.Equal(t, "asset 50", value)
}
