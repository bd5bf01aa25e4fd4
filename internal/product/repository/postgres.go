package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/fekuna/omnipos-catalog-service/internal/schema"
	"github.com/jmoiron/sqlx"
)

const (
	table     = "product"
	linkTable = "product_option_group_link"
)

var columns = []string{
	"id", "category_id", "chainproduct_id", "name", "description", "cost",
	"base_calories", "max_calories", "extref", "is_disabled",
	"minimum_quantity", "quantity_increment", "short_description", "sort_order",
}

var productSchema = schema.Schema{
	Entity: "product",
	Fields: []schema.Field{
		{Name: "id", Kind: schema.Int},
		{Name: "category_id", Kind: schema.Int},
		{Name: "chainproduct_id", Kind: schema.Int},
		{Name: "name", Kind: schema.String},
		{Name: "description", Kind: schema.String, Optional: true},
		{Name: "cost", Kind: schema.Decimal},
		{Name: "base_calories", Kind: schema.Int, Optional: true},
		{Name: "max_calories", Kind: schema.Int, Optional: true},
		{Name: "extref", Kind: schema.String},
		{Name: "is_disabled", Kind: schema.Bool},
		{Name: "minimum_quantity", Kind: schema.Int},
		{Name: "quantity_increment", Kind: schema.Int},
		{Name: "short_description", Kind: schema.String, Optional: true},
		{Name: "sort_order", Kind: schema.Int},
		{Name: "option_groups", Kind: schema.Children, ChildKey: "description"},
	},
}

type PGRepository struct {
	engine *query.Engine
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{engine: query.NewEngine(db)}
}

func selectProducts(brandID string) *query.Select {
	return query.From(table, columns...).
		Brand("brand_id", brandID).
		LeftJoin(linkTable, query.On(linkTable, "product_id", table, "id")).
		LeftJoin("option_group", query.On("option_group", "id", linkTable, "option_group_id")).
		Aggregate(query.Aggregate{Alias: "option_groups", Table: "option_group", Key: "description", Display: "description"})
}

func (r *PGRepository) FindAll(ctx context.Context, brandID string, f *dto.ProductFilters) ([]model.Product, error) {
	s := selectProducts(brandID)

	if f != nil {
		if f.Name != "" {
			s.Where(query.Contains(query.Ident(table, "name"), f.Name))
		}
		if f.Description != "" {
			s.Where(query.Contains(query.Ident(table, "description"), f.Description))
		}
		if f.ExtRef != "" {
			s.Where(query.Eq(query.Ident(table, "extref"), f.ExtRef))
		}
		if f.CategoryID != nil {
			s.Where(query.Eq(query.Ident(table, "category_id"), *f.CategoryID))
		}
		if f.IsDisabled != nil {
			s.Where(query.Eq(query.Ident(table, "is_disabled"), *f.IsDisabled))
		}
	}

	s.OrderBy(query.Asc(table, "sort_order"), query.Asc(table, "id"))

	rows, err := r.engine.Rows(ctx, s)
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		p, err := decodeProduct(row)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, nil
}

func (r *PGRepository) FindByID(ctx context.Context, brandID string, id int64) (*model.Product, error) {
	s := selectProducts(brandID).Where(query.Eq(query.Ident(table, "id"), id))

	row, err := r.engine.Row(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("product %d: %w", id, err)
	}
	return decodeProduct(row)
}

func decodeProduct(row query.Row) (*model.Product, error) {
	rec, err := productSchema.Validate(row)
	if err != nil {
		return nil, err
	}

	children := rec.Children("option_groups")
	groups := make([]model.OptionGroupSummary, len(children))
	for i, ch := range children {
		groups[i] = model.OptionGroupSummary{ID: ch.ID, Description: ch.Display}
	}

	return &model.Product{
		ID:                rec.Int64("id"),
		CategoryID:        rec.Int64("category_id"),
		ChainProductID:    rec.Int64("chainproduct_id"),
		Name:              rec.String("name"),
		Description:       rec.StringPtr("description"),
		Cost:              rec.Decimal("cost"),
		BaseCalories:      rec.Int64Ptr("base_calories"),
		MaxCalories:       rec.Int64Ptr("max_calories"),
		ExtRef:            rec.String("extref"),
		IsDisabled:        rec.Bool("is_disabled"),
		MinimumQuantity:   rec.Int64("minimum_quantity"),
		QuantityIncrement: rec.Int64("quantity_increment"),
		ShortDescription:  rec.StringPtr("short_description"),
		SortOrder:         rec.Int64("sort_order"),
		OptionGroups:      groups,
	}, nil
}
