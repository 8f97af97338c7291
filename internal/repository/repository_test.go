package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hr-payroll-api/internal/domain"
)

// openTestDB открывает SQLite в памяти и накатывает схему по моделям
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&domain.Region{},
		&domain.Organization{},
		&domain.Employee{},
		&domain.CalculationRecord{},
	)
	require.NoError(t, err)

	return db
}

func createOrganization(t *testing.T, db *gorm.DB, name string, parentID *int64) *domain.Organization {
	t.Helper()
	org := &domain.Organization{Name: name, ParentID: parentID}
	require.NoError(t, db.Create(org).Error)
	return org
}

func createEmployee(t *testing.T, db *gorm.DB, pinfl string, orgID int64) *domain.Employee {
	t.Helper()
	hireDate := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)
	emp := &domain.Employee{
		FirstName:      "Test",
		LastName:       "Employee" + pinfl,
		Pinfl:          pinfl,
		HireDate:       &hireDate,
		OrganizationID: orgID,
	}
	require.NoError(t, db.Create(emp).Error)
	return emp
}

func createCalculation(t *testing.T, db *gorm.DB, empID int64, amount float64, date time.Time, orgID *int64, calcType string) *domain.CalculationRecord {
	t.Helper()
	calc := &domain.CalculationRecord{
		EmployeeID:      empID,
		Amount:          amount,
		Rate:            1,
		Date:            date,
		OrganizationID:  orgID,
		CalculationType: calcType,
	}
	require.NoError(t, db.Create(calc).Error)
	return calc
}

func TestRegionRepository_CRUD(t *testing.T) {
	db := openTestDB(t)
	repo := NewRegionRepository(db)
	ctx := context.Background()

	region := &domain.Region{Name: "Tashkent"}
	require.NoError(t, repo.Create(ctx, region))
	require.NotZero(t, region.ID)

	got, err := repo.GetByID(ctx, region.ID)
	require.NoError(t, err)
	require.Equal(t, "Tashkent", got.Name)

	got.Name = "Samarkand"
	require.NoError(t, repo.Update(ctx, got))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "Samarkand", all[0].Name)

	require.NoError(t, repo.Delete(ctx, region.ID))
	require.ErrorIs(t, repo.Delete(ctx, region.ID), domain.ErrRegionNotFound)

	_, err = repo.GetByID(ctx, region.ID)
	require.ErrorIs(t, err, domain.ErrRegionNotFound)
}

func TestRegionRepository_ExistsByName(t *testing.T) {
	db := openTestDB(t)
	repo := NewRegionRepository(db)
	ctx := context.Background()

	region := &domain.Region{Name: "Tashkent"}
	require.NoError(t, repo.Create(ctx, region))

	exists, err := repo.ExistsByName(ctx, "Tashkent", nil)
	require.NoError(t, err)
	require.True(t, exists)

	// Собственная строка не считается дубликатом при исключении по id
	exists, err = repo.ExistsByName(ctx, "Tashkent", &region.ID)
	require.NoError(t, err)
	require.False(t, exists)

	exists, err = repo.ExistsByName(ctx, "Bukhara", nil)
	require.NoError(t, err)
	require.False(t, exists)
}
