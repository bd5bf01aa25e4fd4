package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/optiongroup/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/fekuna/omnipos-catalog-service/internal/schema"
	"github.com/jmoiron/sqlx"
)

const (
	table     = "option_group"
	linkTable = "option_group_option_link"
)

var columns = []string{
	"id", "description", "mandatory", "supports_choice_quantities",
	"choice_quantity_increment", "explanation_text", "sort_order",
}

var optionGroupSchema = schema.Schema{
	Entity: "option_group",
	Fields: []schema.Field{
		{Name: "id", Kind: schema.Int},
		{Name: "description", Kind: schema.String},
		{Name: "mandatory", Kind: schema.Bool},
		{Name: "supports_choice_quantities", Kind: schema.Bool},
		{Name: "choice_quantity_increment", Kind: schema.Int},
		{Name: "explanation_text", Kind: schema.String, Optional: true},
		{Name: "sort_order", Kind: schema.Int},
		{Name: "options", Kind: schema.Children, ChildKey: "name"},
	},
}

type PGRepository struct {
	engine *query.Engine
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{engine: query.NewEngine(db)}
}

// selectOptionGroups reaches options through the link table. Both joins are
// outer so a group without options is still returned.
func selectOptionGroups(brandID string) *query.Select {
	return query.From(table, columns...).
		Brand("brand_id", brandID).
		LeftJoin(linkTable, query.On(linkTable, "option_group_id", table, "id")).
		LeftJoin("option", query.On("option", "id", linkTable, "option_id")).
		Aggregate(query.Aggregate{Alias: "options", Table: "option", Key: "name", Display: "name"})
}

func (r *PGRepository) FindAll(ctx context.Context, brandID string, f *dto.OptionGroupFilters) ([]model.OptionGroup, error) {
	s := selectOptionGroups(brandID)

	if f != nil {
		if f.Description != "" {
			s.Where(query.Contains(query.Ident(table, "description"), f.Description))
		}
		if f.ExplanationText != "" {
			s.Where(query.Contains(query.Ident(table, "explanation_text"), f.ExplanationText))
		}
		if f.Mandatory != nil {
			s.Where(query.Eq(query.Ident(table, "mandatory"), *f.Mandatory))
		}
		if f.SupportsChoiceQuantities != nil {
			s.Where(query.Eq(query.Ident(table, "supports_choice_quantities"), *f.SupportsChoiceQuantities))
		}
	}

	s.OrderBy(query.Asc(table, "sort_order"), query.Asc(table, "id"))

	rows, err := r.engine.Rows(ctx, s)
	if err != nil {
		return nil, err
	}

	groups := make([]model.OptionGroup, 0, len(rows))
	for _, row := range rows {
		g, err := decodeOptionGroup(row)
		if err != nil {
			return nil, err
		}
		groups = append(groups, *g)
	}
	return groups, nil
}

func (r *PGRepository) FindByID(ctx context.Context, brandID string, id int64) (*model.OptionGroup, error) {
	s := selectOptionGroups(brandID).Where(query.Eq(query.Ident(table, "id"), id))

	row, err := r.engine.Row(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("option group %d: %w", id, err)
	}
	return decodeOptionGroup(row)
}

func decodeOptionGroup(row query.Row) (*model.OptionGroup, error) {
	rec, err := optionGroupSchema.Validate(row)
	if err != nil {
		return nil, err
	}

	children := rec.Children("options")
	options := make([]model.OptionSummary, len(children))
	for i, ch := range children {
		options[i] = model.OptionSummary{ID: ch.ID, Name: ch.Display}
	}

	return &model.OptionGroup{
		ID:                       rec.Int64("id"),
		Description:              rec.String("description"),
		Mandatory:                rec.Bool("mandatory"),
		SupportsChoiceQuantities: rec.Bool("supports_choice_quantities"),
		ChoiceQuantityIncrement:  rec.Int64("choice_quantity_increment"),
		ExplanationText:          rec.StringPtr("explanation_text"),
		SortOrder:                rec.Int64("sort_order"),
		Options:                  options,
	}, nil
}
