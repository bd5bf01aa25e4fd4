package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdent(t *testing.T) {
	assert.Equal(t, `"option"`, Ident("option"))
	assert.Equal(t, `"option"."id"`, Ident("option", "id"))
	assert.Equal(t, `"we""ird"`, Ident(`we"ird`))
}

func TestContainsEscapesWildcards(t *testing.T) {
	p := Contains(`"product"."name"`, `50%_off\`)

	assert.Equal(t, `"product"."name" ILIKE ?`, p.SQL)
	assert.Equal(t, []any{`%50\%\_off\\%`}, p.Args)
}

func TestToSQLRequiresBrand(t *testing.T) {
	_, _, err := From("category", "id").Where(Eq(`"category"."id"`, 1)).ToSQL()
	assert.ErrorIs(t, err, ErrUnscoped)
}

func TestToSQLPlainList(t *testing.T) {
	s := From("option_group", "id", "description").
		Where(Eq(Ident("option_group", "mandatory"), true)).
		Brand("brand_id", "brand-1").
		OrderBy(`"option_group"."sort_order" ASC`, `"option_group"."id" ASC`)

	sql, args, err := s.ToSQL()
	require.NoError(t, err)

	assert.Equal(t,
		`SELECT "option_group"."id", "option_group"."description" FROM "option_group" `+
			`WHERE "option_group"."brand_id" = ? AND "option_group"."mandatory" = ? `+
			`ORDER BY "option_group"."sort_order" ASC, "option_group"."id" ASC`,
		sql)
	// brand comes first even when set after another predicate
	assert.Equal(t, []any{"brand-1", true}, args)
}

func TestToSQLAggregate(t *testing.T) {
	s := From("category", "id", "name").
		Brand("brand_id", "brand-1").
		Where(Contains(Ident("category", "name"), "Sand")).
		LeftJoin("product", `"product"."category_id" = "category"."id"`).
		Aggregate(Aggregate{Alias: "products", Table: "product", Key: "name", Display: "name"}).
		OrderBy(`"category"."sortorder" ASC`, `"category"."id" ASC`)

	sql, args, err := s.ToSQL()
	require.NoError(t, err)

	assert.Equal(t,
		`SELECT "category"."id", "category"."name", `+
			`COALESCE(JSONB_AGG(JSONB_BUILD_OBJECT('id', "product"."id", 'name', "product"."name") ORDER BY "product"."id") `+
			`FILTER (WHERE "product"."id" IS NOT NULL), '[]'::JSONB) AS "products" `+
			`FROM "category" LEFT JOIN "product" ON "product"."category_id" = "category"."id" `+
			`WHERE "category"."brand_id" = ? AND "category"."name" ILIKE ? `+
			`GROUP BY "category"."id", "category"."name" `+
			`ORDER BY "category"."sortorder" ASC, "category"."id" ASC`,
		sql)
	assert.Equal(t, []any{"brand-1", "%Sand%"}, args)
}

func TestToSQLExistsAndLimit(t *testing.T) {
	s := From("option", "id").
		Brand("brand_id", "b").
		Where(Exists(`SELECT 1 FROM "link" WHERE "link"."option_id" = "option"."id" AND "link"."option_group_id" = ?`, int64(7))).
		Where(Eq(Ident("option", "id"), int64(3))).
		Limit(1)

	sql, args, err := s.ToSQL()
	require.NoError(t, err)

	assert.Equal(t,
		`SELECT "option"."id" FROM "option" WHERE "option"."brand_id" = ? `+
			`AND EXISTS (SELECT 1 FROM "link" WHERE "link"."option_id" = "option"."id" AND "link"."option_group_id" = ?) `+
			`AND "option"."id" = ? LIMIT 1`,
		sql)
	assert.Equal(t, []any{"b", int64(7), int64(3)}, args)
}

func TestOnAndAsc(t *testing.T) {
	assert.Equal(t, `"product"."category_id" = "category"."id"`, On("product", "category_id", "category", "id"))
	assert.Equal(t, `"option"."sort_order" ASC`, Asc("option", "sort_order"))
}
