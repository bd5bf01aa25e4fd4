package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/option/dto"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var optionColumns = append(append([]string{}, columns...), "option_groups")

func newMockRepo(t *testing.T) (*PGRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPGRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestFindAll(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`FROM "option" ` +
			`LEFT JOIN "option_group_option_link" ON "option_group_option_link"."option_id" = "option"."id" ` +
			`LEFT JOIN "option_group" ON "option_group"."id" = "option_group_option_link"."option_group_id" ` +
			`WHERE "option"."brand_id" = $1 GROUP BY`)).
		WithArgs("brand-1").
		WillReturnRows(sqlmock.NewRows(optionColumns).
			AddRow(int64(1), "Rye", true, "0.00", false, false, int64(0), nil, []byte(`[{"id": 10, "description": "Bread"}]`)).
			AddRow(int64(3), "No Bacon", false, "0.50", false, true, int64(2), "1.25", []byte(`[]`)))

	options, err := repo.FindAll(context.Background(), "brand-1", nil)
	require.NoError(t, err)
	require.Len(t, options, 2)

	assert.Equal(t, []model.OptionGroupSummary{{ID: 10, Description: "Bread"}}, options[0].OptionGroups)
	assert.Nil(t, options[0].Price)

	noBacon := options[1]
	assert.Equal(t, "No Bacon", noBacon.Name)
	assert.Equal(t, "0.5", noBacon.Cost.String())
	require.NotNil(t, noBacon.Price)
	assert.Equal(t, "1.25", noBacon.Price.String())
	assert.NotNil(t, noBacon.OptionGroups)
	assert.Empty(t, noBacon.OptionGroups)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAllFilters(t *testing.T) {
	repo, mock := newMockRepo(t)

	isDefault := false
	adjusts := true
	groupID := int64(10)

	mock.ExpectQuery(regexp.QuoteMeta(
		`WHERE "option"."brand_id" = $1 AND "option"."name" ILIKE $2 ` +
			`AND "option"."is_default" = $3 AND "option"."adjusts_parent_price" = $4 ` +
			`AND EXISTS (SELECT 1 FROM "option_group_option_link" AS "group_filter" ` +
			`WHERE "group_filter"."option_id" = "option"."id" AND "group_filter"."option_group_id" = $5) ` +
			`GROUP BY`)).
		WithArgs("brand-1", "%bacon%", false, true, int64(10)).
		WillReturnRows(sqlmock.NewRows(optionColumns))

	options, err := repo.FindAll(context.Background(), "brand-1", &dto.OptionFilters{
		Name:               "bacon",
		IsDefault:          &isDefault,
		AdjustsParentPrice: &adjusts,
		OptionGroupID:      &groupID,
	})
	require.NoError(t, err)
	assert.Empty(t, options)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDWithoutGroups(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`AND "option"."id" = $2 GROUP BY`)).
		WithArgs("brand-1", int64(3)).
		WillReturnRows(sqlmock.NewRows(optionColumns).
			AddRow(int64(3), "No Bacon", false, "0.00", false, false, int64(2), nil, []byte(`[]`)))

	o, err := repo.FindByID(context.Background(), "brand-1", 3)
	require.NoError(t, err)
	assert.Equal(t, "No Bacon", o.Name)
	assert.Equal(t, []model.OptionGroupSummary{}, o.OptionGroups)
}

func TestFindByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM "option"`).
		WithArgs("brand-2", int64(3)).
		WillReturnRows(sqlmock.NewRows(optionColumns))

	_, err := repo.FindByID(context.Background(), "brand-2", 3)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestFindByIDMalformedGroups(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM "option"`).
		WillReturnRows(sqlmock.NewRows(optionColumns).
			AddRow(int64(3), "No Bacon", false, "0.00", false, false, int64(2), nil, []byte(`[{"id": "x"}]`)))

	_, err := repo.FindByID(context.Background(), "brand-1", 3)
	var verr *apperror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "option", verr.Entity)
	assert.Equal(t, "option_groups", verr.Field)
}
