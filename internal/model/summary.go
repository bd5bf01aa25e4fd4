package model

// Summaries are the projections of related entities embedded in a parent
// record: identity plus one display attribute.

type ProductSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type OptionGroupSummary struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

type OptionSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
