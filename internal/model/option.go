package model

import "github.com/shopspring/decimal"

type Option struct {
	ID                    int64                `json:"id"`
	Name                  string               `json:"name"`
	IsDefault             bool                 `json:"is_default"`
	Cost                  decimal.Decimal      `json:"cost"`
	AdjustsParentCalories bool                 `json:"adjusts_parent_calories"`
	AdjustsParentPrice    bool                 `json:"adjusts_parent_price"`
	SortOrder             int64                `json:"sort_order"`
	Price                 *decimal.Decimal     `json:"price"`
	OptionGroups          []OptionGroupSummary `json:"option_groups"`
}
