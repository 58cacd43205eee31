package model

// ListRequest is the search/sort/pagination payload shared by the product
// and order listing endpoints. Type selects the match mode: "partial",
// "prefix", or empty for exact matching (match-all when Search is empty).
type ListRequest struct {
	Search    string `json:"search"`
	Type      string `json:"type,omitempty"`
	Page      int    `json:"page"`
	PageSize  int    `json:"page_size"`
	SortField string `json:"sort_field"`
	SortOrder string `json:"sort_order"`
}

// Page is a single page of a filtered, sorted listing. Total is the number
// of matching records before pagination.
type Page[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}
