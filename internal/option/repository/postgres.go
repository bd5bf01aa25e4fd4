package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/option/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/fekuna/omnipos-catalog-service/internal/schema"
	"github.com/jmoiron/sqlx"
)

const (
	table     = "option"
	linkTable = "option_group_option_link"
)

var columns = []string{
	"id", "name", "is_default", "cost", "adjusts_parent_calories",
	"adjusts_parent_price", "sort_order", "price",
}

var optionSchema = schema.Schema{
	Entity: "option",
	Fields: []schema.Field{
		{Name: "id", Kind: schema.Int},
		{Name: "name", Kind: schema.String},
		{Name: "is_default", Kind: schema.Bool},
		{Name: "cost", Kind: schema.Decimal},
		{Name: "adjusts_parent_calories", Kind: schema.Bool},
		{Name: "adjusts_parent_price", Kind: schema.Bool},
		{Name: "sort_order", Kind: schema.Int},
		{Name: "price", Kind: schema.Decimal, Optional: true},
		{Name: "option_groups", Kind: schema.Children, ChildKey: "description"},
	},
}

// inGroup matches options linked to one group. It runs against its own
// alias of the link table so the joined rows feeding option_groups are left
// untouched.
var inGroup = fmt.Sprintf(
	"SELECT 1 FROM %s AS %s WHERE %s = %s AND %s = ?",
	query.Ident(linkTable), query.Ident("group_filter"),
	query.Ident("group_filter", "option_id"), query.Ident(table, "id"),
	query.Ident("group_filter", "option_group_id"),
)

type PGRepository struct {
	engine *query.Engine
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{engine: query.NewEngine(db)}
}

func selectOptions(brandID string) *query.Select {
	return query.From(table, columns...).
		Brand("brand_id", brandID).
		LeftJoin(linkTable, query.On(linkTable, "option_id", table, "id")).
		LeftJoin("option_group", query.On("option_group", "id", linkTable, "option_group_id")).
		Aggregate(query.Aggregate{Alias: "option_groups", Table: "option_group", Key: "description", Display: "description"})
}

func (r *PGRepository) FindAll(ctx context.Context, brandID string, f *dto.OptionFilters) ([]model.Option, error) {
	s := selectOptions(brandID)

	if f != nil {
		if f.Name != "" {
			s.Where(query.Contains(query.Ident(table, "name"), f.Name))
		}
		if f.IsDefault != nil {
			s.Where(query.Eq(query.Ident(table, "is_default"), *f.IsDefault))
		}
		if f.AdjustsParentPrice != nil {
			s.Where(query.Eq(query.Ident(table, "adjusts_parent_price"), *f.AdjustsParentPrice))
		}
		if f.OptionGroupID != nil {
			s.Where(query.Exists(inGroup, *f.OptionGroupID))
		}
	}

	s.OrderBy(query.Asc(table, "sort_order"), query.Asc(table, "id"))

	rows, err := r.engine.Rows(ctx, s)
	if err != nil {
		return nil, err
	}

	options := make([]model.Option, 0, len(rows))
	for _, row := range rows {
		o, err := decodeOption(row)
		if err != nil {
			return nil, err
		}
		options = append(options, *o)
	}
	return options, nil
}

func (r *PGRepository) FindByID(ctx context.Context, brandID string, id int64) (*model.Option, error) {
	s := selectOptions(brandID).Where(query.Eq(query.Ident(table, "id"), id))

	row, err := r.engine.Row(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("option %d: %w", id, err)
	}
	return decodeOption(row)
}

func decodeOption(row query.Row) (*model.Option, error) {
	rec, err := optionSchema.Validate(row)
	if err != nil {
		return nil, err
	}

	children := rec.Children("option_groups")
	groups := make([]model.OptionGroupSummary, len(children))
	for i, ch := range children {
		groups[i] = model.OptionGroupSummary{ID: ch.ID, Description: ch.Display}
	}

	return &model.Option{
		ID:                    rec.Int64("id"),
		Name:                  rec.String("name"),
		IsDefault:             rec.Bool("is_default"),
		Cost:                  rec.Decimal("cost"),
		AdjustsParentCalories: rec.Bool("adjusts_parent_calories"),
		AdjustsParentPrice:    rec.Bool("adjusts_parent_price"),
		SortOrder:             rec.Int64("sort_order"),
		Price:                 rec.DecimalPtr("price"),
		OptionGroups:          groups,
	}, nil
}
