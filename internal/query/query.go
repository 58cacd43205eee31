// Package query implements keyword search, whitelisted sorting, and stable
// pagination over an in-memory record snapshot. It is shared by the product
// catalogue and order history listings.
//
// All keyword matching is case-insensitive at the codepoint level: both the
// keyword and the field text are lowered with strings.ToLower before
// comparison. Ties within a sort key always break by ascending record ID,
// which keeps pagination stable across repeated calls.
package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"robomart/internal/model"
)

// MatchType selects how the keyword is compared against the column text.
type MatchType string

const (
	// MatchExact requires the whole field to equal the keyword.
	MatchExact MatchType = "exact"
	// MatchPartial matches the keyword anywhere within the field.
	MatchPartial MatchType = "partial"
	// MatchPrefix matches the keyword anchored at the start of the field.
	MatchPrefix MatchType = "prefix"
)

// ParseMatchType maps the wire-level type parameter to a MatchType. An empty
// value means exact matching, per the listing contract.
func ParseMatchType(s string) (MatchType, error) {
	switch s {
	case "":
		return MatchExact, nil
	case string(MatchExact), string(MatchPartial), string(MatchPrefix):
		return MatchType(s), nil
	default:
		return "", model.NewValidationError(fmt.Sprintf("unknown match type %q", s))
	}
}

// Sort directions.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Spec describes one query: an optional keyword filter on a single column,
// an optional sort, and a mandatory 1-indexed page window.
type Spec struct {
	Column    string
	Keyword   string
	Match     MatchType
	SortField string
	SortOrder string
	Page      int
	PageSize  int
}

// Definition declares the queryable surface of an entity: which columns may
// be searched, which fields may be sorted on, and how to read the record's
// identifier for tie-breaking. Columns and sort fields form an explicit
// whitelist; anything outside it is rejected at validation time.
type Definition[T any] struct {
	Columns map[string]func(T) string
	Sort    map[string]func(a, b T) int
	ID      func(T) int64
}

// Result is one page of matches plus the total match count before paging.
type Result[T any] struct {
	Items []T
	Total int
}

// Run filters, sorts, and pages records according to spec.
//
// An empty keyword or column selects all records. An empty sort field keeps
// the snapshot's natural order. A page past the last one returns an empty
// page, not an error. Enumerating page 1..ceil(total/pageSize) reproduces
// the full filtered, sorted set exactly once per record.
func Run[T any](records []T, def Definition[T], spec Spec) (Result[T], error) {
	if err := validate(def, spec); err != nil {
		return Result[T]{}, err
	}

	matched := filter(records, def, spec)

	if spec.SortField != "" {
		compare := def.Sort[spec.SortField]
		desc := spec.SortOrder == OrderDesc
		slices.SortStableFunc(matched, func(a, b T) int {
			c := compare(a, b)
			if desc {
				c = -c
			}
			if c != 0 {
				return c
			}
			// Tie-break by ascending ID regardless of direction so pages
			// stay stable and non-overlapping.
			return cmp.Compare(def.ID(a), def.ID(b))
		})
	}

	total := len(matched)
	start := (spec.Page - 1) * spec.PageSize
	if start >= total {
		return Result[T]{Items: []T{}, Total: total}, nil
	}
	end := min(start+spec.PageSize, total)

	return Result[T]{Items: matched[start:end], Total: total}, nil
}

func validate[T any](def Definition[T], spec Spec) error {
	switch spec.Match {
	case MatchExact, MatchPartial, MatchPrefix:
	default:
		return model.NewValidationError(fmt.Sprintf("unknown match type %q", spec.Match))
	}
	if spec.Column != "" {
		if _, ok := def.Columns[spec.Column]; !ok {
			return model.NewValidationError(fmt.Sprintf("column %q is not searchable", spec.Column))
		}
	}
	if spec.SortField != "" {
		if _, ok := def.Sort[spec.SortField]; !ok {
			return model.NewValidationError(fmt.Sprintf("sort field %q is not sortable", spec.SortField))
		}
	}
	switch spec.SortOrder {
	case "", OrderAsc, OrderDesc:
	default:
		return model.NewValidationError(fmt.Sprintf("unknown sort order %q", spec.SortOrder))
	}
	if spec.Page < 1 {
		return model.NewValidationError("page must be positive")
	}
	if spec.PageSize < 1 {
		return model.NewValidationError("page size must be positive")
	}
	return nil
}

// filter returns the matching records. The result is always a fresh slice
// so sorting never mutates the caller's snapshot.
func filter[T any](records []T, def Definition[T], spec Spec) []T {
	if spec.Column == "" || spec.Keyword == "" {
		return slices.Clone(records)
	}

	field := def.Columns[spec.Column]
	keyword := strings.ToLower(spec.Keyword)

	matched := make([]T, 0, len(records))
	for _, rec := range records {
		text := strings.ToLower(field(rec))
		var ok bool
		switch spec.Match {
		case MatchPartial:
			ok = strings.Contains(text, keyword)
		case MatchPrefix:
			ok = strings.HasPrefix(text, keyword)
		default:
			ok = text == keyword
		}
		if ok {
			matched = append(matched, rec)
		}
	}
	return matched
}
