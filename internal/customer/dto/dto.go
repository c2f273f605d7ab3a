package dto

type CustomerFilters struct {
	SearchQuery string // name or CI substring, case-insensitive
}
