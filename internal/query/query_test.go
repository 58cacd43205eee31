package query

import (
	"fmt"
	"testing"
	"time"

	"robomart/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []model.Product {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []model.Product{
		{ProductID: 1, Name: "Pro Widget", Value: 50.00, Weight: 10, CreatedAt: base},
		{ProductID: 2, Name: "Basic Widget", Value: 20.00, Weight: 5, CreatedAt: base.Add(time.Hour)},
		{ProductID: 3, Name: "Pro Gadget", Value: 80.00, Weight: 15, CreatedAt: base.Add(2 * time.Hour)},
		{ProductID: 4, Name: "prototype kit", Value: 50.00, Weight: 8, CreatedAt: base.Add(3 * time.Hour)},
		{ProductID: 5, Name: "Gizmo Pro", Value: 35.00, Weight: 12, CreatedAt: base.Add(4 * time.Hour)},
	}
}

func productDef() Definition[model.Product] {
	return Definition[model.Product]{
		Columns: map[string]func(model.Product) string{
			"name": func(p model.Product) string { return p.Name },
		},
		Sort: map[string]func(a, b model.Product) int{
			"name": func(a, b model.Product) int {
				switch {
				case a.Name < b.Name:
					return -1
				case a.Name > b.Name:
					return 1
				default:
					return 0
				}
			},
			"value": func(a, b model.Product) int {
				switch {
				case a.Value < b.Value:
					return -1
				case a.Value > b.Value:
					return 1
				default:
					return 0
				}
			},
		},
		ID: func(p model.Product) int64 { return p.ProductID },
	}
}

func TestParseMatchType(t *testing.T) {
	tests := []struct {
		input       string
		expected    MatchType
		expectError bool
	}{
		{input: "", expected: MatchExact},
		{input: "exact", expected: MatchExact},
		{input: "partial", expected: MatchPartial},
		{input: "prefix", expected: MatchPrefix},
		{input: "fuzzy", expectError: true},
		{input: "PARTIAL", expectError: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("type %q", tt.input), func(t *testing.T) {
			match, err := ParseMatchType(tt.input)
			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, model.ErrCodeValidation, model.ErrorCode(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, match)
			}
		})
	}
}

func TestRun_Matching(t *testing.T) {
	tests := []struct {
		name        string
		keyword     string
		match       MatchType
		expectedIDs []int64
	}{
		{
			name:        "partial match is case-insensitive substring",
			keyword:     "pro",
			match:       MatchPartial,
			expectedIDs: []int64{1, 3, 4, 5},
		},
		{
			name:        "prefix match anchors at start",
			keyword:     "Pro",
			match:       MatchPrefix,
			expectedIDs: []int64{1, 3, 4},
		},
		{
			name:        "exact match requires full equality",
			keyword:     "pro widget",
			match:       MatchExact,
			expectedIDs: []int64{1},
		},
		{
			name:        "no matches is an empty success",
			keyword:     "missing",
			match:       MatchPartial,
			expectedIDs: []int64{},
		},
		{
			name:        "empty keyword selects all",
			keyword:     "",
			match:       MatchPartial,
			expectedIDs: []int64{1, 2, 3, 4, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Run(testProducts(), productDef(), Spec{
				Column:   "name",
				Keyword:  tt.keyword,
				Match:    tt.match,
				Page:     1,
				PageSize: 20,
			})
			require.NoError(t, err)

			ids := make([]int64, 0, len(result.Items))
			for _, p := range result.Items {
				ids = append(ids, p.ProductID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
			assert.Equal(t, len(tt.expectedIDs), result.Total)
		})
	}
}

func TestRun_PartialIsSupersetOfPrefix(t *testing.T) {
	keywords := []string{"pro", "widget", "g", "kit", "zzz"}

	for _, keyword := range keywords {
		partial, err := Run(testProducts(), productDef(), Spec{
			Column: "name", Keyword: keyword, Match: MatchPartial, Page: 1, PageSize: 100,
		})
		require.NoError(t, err)

		prefix, err := Run(testProducts(), productDef(), Spec{
			Column: "name", Keyword: keyword, Match: MatchPrefix, Page: 1, PageSize: 100,
		})
		require.NoError(t, err)

		partialIDs := make(map[int64]bool)
		for _, p := range partial.Items {
			partialIDs[p.ProductID] = true
		}
		for _, p := range prefix.Items {
			assert.True(t, partialIDs[p.ProductID],
				"prefix hit %d for %q must also be a partial hit", p.ProductID, keyword)
		}
		assert.GreaterOrEqual(t, partial.Total, prefix.Total)
	}
}

func TestRun_Sorting(t *testing.T) {
	tests := []struct {
		name        string
		sortField   string
		sortOrder   string
		expectedIDs []int64
	}{
		{
			name:        "sort by value ascending breaks ties by ID",
			sortField:   "value",
			sortOrder:   OrderAsc,
			expectedIDs: []int64{2, 5, 1, 4, 3},
		},
		{
			name:      "sort by value descending keeps ascending-ID tie-break",
			sortField: "value",
			sortOrder: OrderDesc,
			// Products 1 and 4 tie on value; ID 1 still comes first.
			expectedIDs: []int64{3, 1, 4, 5, 2},
		},
		{
			name:        "empty sort field keeps natural order",
			sortField:   "",
			sortOrder:   "",
			expectedIDs: []int64{1, 2, 3, 4, 5},
		},
		{
			name:        "empty sort order defaults to ascending",
			sortField:   "value",
			sortOrder:   "",
			expectedIDs: []int64{2, 5, 1, 4, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Run(testProducts(), productDef(), Spec{
				Match:     MatchExact,
				SortField: tt.sortField,
				SortOrder: tt.sortOrder,
				Page:      1,
				PageSize:  20,
			})
			require.NoError(t, err)

			ids := make([]int64, 0, len(result.Items))
			for _, p := range result.Items {
				ids = append(ids, p.ProductID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestRun_SortDoesNotMutateSnapshot(t *testing.T) {
	records := testProducts()

	_, err := Run(records, productDef(), Spec{
		Match:     MatchExact,
		SortField: "value",
		SortOrder: OrderDesc,
		Page:      1,
		PageSize:  20,
	})
	require.NoError(t, err)

	for i, p := range records {
		assert.Equal(t, int64(i+1), p.ProductID, "input snapshot must stay in natural order")
	}
}

func TestRun_Pagination(t *testing.T) {
	tests := []struct {
		name          string
		page          int
		pageSize      int
		expectedIDs   []int64
		expectedTotal int
	}{
		{name: "first page", page: 1, pageSize: 2, expectedIDs: []int64{1, 2}, expectedTotal: 5},
		{name: "middle page", page: 2, pageSize: 2, expectedIDs: []int64{3, 4}, expectedTotal: 5},
		{name: "short last page", page: 3, pageSize: 2, expectedIDs: []int64{5}, expectedTotal: 5},
		{name: "page past the end is empty", page: 4, pageSize: 2, expectedIDs: []int64{}, expectedTotal: 5},
		{name: "page size beyond total", page: 1, pageSize: 50, expectedIDs: []int64{1, 2, 3, 4, 5}, expectedTotal: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Run(testProducts(), productDef(), Spec{
				Match:    MatchExact,
				Page:     tt.page,
				PageSize: tt.pageSize,
			})
			require.NoError(t, err)

			ids := make([]int64, 0, len(result.Items))
			for _, p := range result.Items {
				ids = append(ids, p.ProductID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
			assert.Equal(t, tt.expectedTotal, result.Total)
		})
	}
}

// Enumerating every page of a filtered, sorted listing must reproduce the
// full result set exactly once per record, with no overlap between pages.
func TestRun_PageEnumerationCoversAllMatchesOnce(t *testing.T) {
	specs := []Spec{
		{Match: MatchExact, Page: 1, PageSize: 2},
		{Column: "name", Keyword: "pro", Match: MatchPartial, SortField: "value", SortOrder: OrderDesc, Page: 1, PageSize: 1},
		{Column: "name", Keyword: "widget", Match: MatchPartial, SortField: "name", SortOrder: OrderAsc, Page: 1, PageSize: 3},
	}

	for i, spec := range specs {
		t.Run(fmt.Sprintf("spec %d", i), func(t *testing.T) {
			seen := make(map[int64]int)
			total := -1

			for page := 1; ; page++ {
				spec.Page = page
				result, err := Run(testProducts(), productDef(), spec)
				require.NoError(t, err)

				if total == -1 {
					total = result.Total
				} else {
					assert.Equal(t, total, result.Total, "total must be stable across pages")
				}

				if len(result.Items) == 0 {
					break
				}
				for _, p := range result.Items {
					seen[p.ProductID]++
				}
			}

			assert.Len(t, seen, total)
			for id, count := range seen {
				assert.Equal(t, 1, count, "record %d must appear exactly once", id)
			}
		})
	}
}

func TestRun_Validation(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{name: "unknown match type", spec: Spec{Column: "name", Keyword: "x", Match: "fuzzy", Page: 1, PageSize: 10}},
		{name: "unknown search column", spec: Spec{Column: "price", Keyword: "x", Match: MatchPartial, Page: 1, PageSize: 10}},
		{name: "unknown sort field", spec: Spec{Match: MatchExact, SortField: "secret", Page: 1, PageSize: 10}},
		{name: "unknown sort order", spec: Spec{Match: MatchExact, SortField: "name", SortOrder: "sideways", Page: 1, PageSize: 10}},
		{name: "zero page", spec: Spec{Match: MatchExact, Page: 0, PageSize: 10}},
		{name: "negative page", spec: Spec{Match: MatchExact, Page: -1, PageSize: 10}},
		{name: "zero page size", spec: Spec{Match: MatchExact, Page: 1, PageSize: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(testProducts(), productDef(), tt.spec)
			require.Error(t, err)
			assert.Equal(t, model.ErrCodeValidation, model.ErrorCode(err))
		})
	}
}

func TestRun_EmptySnapshot(t *testing.T) {
	result, err := Run(nil, productDef(), Spec{
		Match:    MatchExact,
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Zero(t, result.Total)
}
