package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hr-payroll-api/internal/domain"
)

func TestEmployeeRepository_CRUD(t *testing.T) {
	db := openTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	org := createOrganization(t, db, "Head Office", nil)
	emp := createEmployee(t, db, "12345678901234", org.ID)

	got, err := repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	require.Equal(t, emp.Pinfl, got.Pinfl)
	require.NotNil(t, got.HireDate)
	require.Equal(t, "2020-01-15", got.HireDate.Format("2006-01-02"))

	got.LastName = "Renamed"
	require.NoError(t, repo.Update(ctx, got))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "Renamed", all[0].LastName)

	require.NoError(t, repo.Delete(ctx, emp.ID))
	require.ErrorIs(t, repo.Delete(ctx, emp.ID), domain.ErrEmployeeNotFound)
}

func TestEmployeeRepository_ExistsChecks(t *testing.T) {
	db := openTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	org := createOrganization(t, db, "Head Office", nil)
	emp := createEmployee(t, db, "111", org.ID)

	exists, err := repo.ExistsByID(ctx, emp.ID)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.ExistsByID(ctx, emp.ID+100)
	require.NoError(t, err)
	require.False(t, exists)

	exists, err = repo.ExistsByFullName(ctx, emp.FirstName, emp.LastName, nil)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.ExistsByFullName(ctx, emp.FirstName, emp.LastName, &emp.ID)
	require.NoError(t, err)
	require.False(t, exists)

	exists, err = repo.ExistsByPinfl(ctx, "111", nil)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.ExistsByPinfl(ctx, "111", &emp.ID)
	require.NoError(t, err)
	require.False(t, exists)

	exists, err = repo.ExistsByPinfl(ctx, "222", nil)
	require.NoError(t, err)
	require.False(t, exists)
}
