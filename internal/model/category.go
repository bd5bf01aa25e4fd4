package model

// Category is a menu section. Products lists every product whose
// category_id points at it.
type Category struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	ExtRef    string           `json:"extref"`
	SortOrder int64            `json:"sortorder"`
	Products  []ProductSummary `json:"products"`
}
