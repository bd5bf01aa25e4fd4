package model

import "github.com/shopspring/decimal"

type Product struct {
	ID                int64                `json:"id"`
	CategoryID        int64                `json:"category_id"`
	ChainProductID    int64                `json:"chainproduct_id"`
	Name              string               `json:"name"`
	Description       *string              `json:"description"`
	Cost              decimal.Decimal      `json:"cost"`
	BaseCalories      *int64               `json:"base_calories"`
	MaxCalories       *int64               `json:"max_calories"`
	ExtRef            string               `json:"extref"`
	IsDisabled        bool                 `json:"is_disabled"`
	MinimumQuantity   int64                `json:"minimum_quantity"`
	QuantityIncrement int64                `json:"quantity_increment"`
	ShortDescription  *string              `json:"short_description"`
	SortOrder         int64                `json:"sort_order"`
	OptionGroups      []OptionGroupSummary `json:"option_groups"` // via product_option_group_link
}
