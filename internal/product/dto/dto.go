package dto

type ProductFilters struct {
	SearchQuery string // name or sku substring, case-insensitive
	SortBy      string // name, price; catalog order when empty
	SortOrder   string // asc, desc
	Page        int
	PageSize    int
}
