package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/category/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/query"
	"github.com/fekuna/omnipos-catalog-service/internal/schema"
	"github.com/jmoiron/sqlx"
)

const table = "category"

var columns = []string{"id", "name", "extref", "sortorder"}

var categorySchema = schema.Schema{
	Entity: "category",
	Fields: []schema.Field{
		{Name: "id", Kind: schema.Int},
		{Name: "name", Kind: schema.String},
		{Name: "extref", Kind: schema.String},
		{Name: "sortorder", Kind: schema.Int},
		{Name: "products", Kind: schema.Children, ChildKey: "name"},
	},
}

type PGRepository struct {
	engine *query.Engine
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{engine: query.NewEngine(db)}
}

// selectCategories joins product on category_id and folds the matches into
// "products".
func selectCategories(brandID string) *query.Select {
	return query.From(table, columns...).
		Brand("brand_id", brandID).
		LeftJoin("product", query.On("product", "category_id", table, "id")).
		Aggregate(query.Aggregate{Alias: "products", Table: "product", Key: "name", Display: "name"})
}

func (r *PGRepository) FindAll(ctx context.Context, brandID string, f *dto.CategoryFilters) ([]model.Category, error) {
	s := selectCategories(brandID)

	if f != nil {
		if f.Name != "" {
			s.Where(query.Contains(query.Ident(table, "name"), f.Name))
		}
		if f.ExtRef != "" {
			s.Where(query.Eq(query.Ident(table, "extref"), f.ExtRef))
		}
	}

	s.OrderBy(query.Asc(table, "sortorder"), query.Asc(table, "id"))

	rows, err := r.engine.Rows(ctx, s)
	if err != nil {
		return nil, err
	}

	categories := make([]model.Category, 0, len(rows))
	for _, row := range rows {
		c, err := decodeCategory(row)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, nil
}

func (r *PGRepository) FindByID(ctx context.Context, brandID string, id int64) (*model.Category, error) {
	s := selectCategories(brandID).Where(query.Eq(query.Ident(table, "id"), id))

	row, err := r.engine.Row(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("category %d: %w", id, err)
	}
	return decodeCategory(row)
}

func decodeCategory(row query.Row) (*model.Category, error) {
	rec, err := categorySchema.Validate(row)
	if err != nil {
		return nil, err
	}

	children := rec.Children("products")
	products := make([]model.ProductSummary, len(children))
	for i, ch := range children {
		products[i] = model.ProductSummary{ID: ch.ID, Name: ch.Display}
	}

	return &model.Category{
		ID:        rec.Int64("id"),
		Name:      rec.String("name"),
		ExtRef:    rec.String("extref"),
		SortOrder: rec.Int64("sortorder"),
		Products:  products,
	}, nil
}
