package model

type OptionGroup struct {
	ID                       int64           `json:"id"`
	Description              string          `json:"description"`
	Mandatory                bool            `json:"mandatory"`
	SupportsChoiceQuantities bool            `json:"supports_choice_quantities"`
	ChoiceQuantityIncrement  int64           `json:"choice_quantity_increment"`
	ExplanationText          *string         `json:"explanation_text"`
	SortOrder                int64           `json:"sort_order"`
	Options                  []OptionSummary `json:"options"`
}
