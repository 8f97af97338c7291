package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/dto"
)

func setupEmployeeService() (EmployeeService, *mockEmployeeRepo, *mockOrganizationRepo) {
	empRepo := newMockEmployeeRepo()
	orgRepo := newMockOrganizationRepo()
	return NewEmployeeService(empRepo, orgRepo), empRepo, orgRepo
}

func seedOrganization(t *testing.T, orgRepo *mockOrganizationRepo, name string) *domain.Organization {
	t.Helper()
	org := &domain.Organization{Name: name}
	if err := orgRepo.Create(context.Background(), org); err != nil {
		t.Fatalf("failed to seed organization: %v", err)
	}
	return org
}

func TestEmployeeService_Create_Success(t *testing.T) {
	svc, _, orgRepo := setupEmployeeService()
	org := seedOrganization(t, orgRepo, "Zero:One Group")

	hireDate := "2024-05-10"
	emp, err := svc.Create(context.Background(), &dto.EmployeeRequest{
		FirstName:      "Nizomiddin",
		LastName:       "Mirzanazarov",
		Pinfl:          "12345678901234",
		HireDate:       &hireDate,
		OrganizationID: org.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emp.ID == 0 {
		t.Error("expected id to be assigned")
	}
	if emp.HireDate == nil || emp.HireDate.Format("2006-01-02") != hireDate {
		t.Errorf("expected hire date %s, got %v", hireDate, emp.HireDate)
	}
}

func TestEmployeeService_Create_OrganizationNotFound(t *testing.T) {
	svc, _, _ := setupEmployeeService()

	_, err := svc.Create(context.Background(), &dto.EmployeeRequest{
		FirstName:      "John",
		LastName:       "Doe",
		Pinfl:          "111",
		OrganizationID: 999,
	})
	if !errors.Is(err, domain.ErrOrganizationNotFound) {
		t.Errorf("expected ErrOrganizationNotFound, got %v", err)
	}
}

func TestEmployeeService_Create_DuplicateFullName(t *testing.T) {
	svc, _, orgRepo := setupEmployeeService()
	ctx := context.Background()
	first := seedOrganization(t, orgRepo, "First Org")
	second := seedOrganization(t, orgRepo, "Second Org")

	if _, err := svc.Create(ctx, &dto.EmployeeRequest{
		FirstName: "John", LastName: "Doe", Pinfl: "111", OrganizationID: first.ID,
	}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	// Пара (имя, фамилия) отклоняется глобально, даже в другой организации
	_, err := svc.Create(ctx, &dto.EmployeeRequest{
		FirstName: "John", LastName: "Doe", Pinfl: "222", OrganizationID: second.ID,
	})
	if !errors.Is(err, domain.ErrDuplicateEmployeeName) {
		t.Errorf("expected ErrDuplicateEmployeeName, got %v", err)
	}
}

func TestEmployeeService_Create_DuplicatePinfl(t *testing.T) {
	svc, _, orgRepo := setupEmployeeService()
	ctx := context.Background()
	org := seedOrganization(t, orgRepo, "Org")

	svc.Create(ctx, &dto.EmployeeRequest{
		FirstName: "John", LastName: "Doe", Pinfl: "111", OrganizationID: org.ID,
	})

	_, err := svc.Create(ctx, &dto.EmployeeRequest{
		FirstName: "Jane", LastName: "Smith", Pinfl: "111", OrganizationID: org.ID,
	})
	if !errors.Is(err, domain.ErrDuplicatePinfl) {
		t.Errorf("expected ErrDuplicatePinfl, got %v", err)
	}
}

func TestEmployeeService_Update_MutableFields(t *testing.T) {
	svc, _, orgRepo := setupEmployeeService()
	ctx := context.Background()
	org := seedOrganization(t, orgRepo, "First Org")
	other := seedOrganization(t, orgRepo, "Second Org")

	created, err := svc.Create(ctx, &dto.EmployeeRequest{
		FirstName: "John", LastName: "Doe", Pinfl: "111", OrganizationID: org.ID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, &dto.EmployeeRequest{
		FirstName: "Jane", LastName: "Smith", Pinfl: "222", OrganizationID: other.ID,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("expected id preserved, got %d", updated.ID)
	}
	if updated.FirstName != "Jane" || updated.LastName != "Smith" || updated.Pinfl != "222" {
		t.Errorf("mutable fields not applied: %+v", updated)
	}
	if updated.OrganizationID != other.ID {
		t.Errorf("expected organization %d, got %d", other.ID, updated.OrganizationID)
	}
}

func TestEmployeeService_Update_OwnNamePairAllowed(t *testing.T) {
	svc, _, orgRepo := setupEmployeeService()
	ctx := context.Background()
	org := seedOrganization(t, orgRepo, "Org")

	created, _ := svc.Create(ctx, &dto.EmployeeRequest{
		FirstName: "John", LastName: "Doe", Pinfl: "111", OrganizationID: org.ID,
	})

	if _, err := svc.Update(ctx, created.ID, &dto.EmployeeRequest{
		FirstName: "John", LastName: "Doe", Pinfl: "111", OrganizationID: org.ID,
	}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	svc, _, orgRepo := setupEmployeeService()
	org := seedOrganization(t, orgRepo, "Org")

	_, err := svc.Update(context.Background(), 999, &dto.EmployeeRequest{
		FirstName: "John", LastName: "Doe", Pinfl: "111", OrganizationID: org.ID,
	})
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeService_Delete_Idempotent(t *testing.T) {
	svc, _, orgRepo := setupEmployeeService()
	ctx := context.Background()
	org := seedOrganization(t, orgRepo, "Org")

	created, _ := svc.Create(ctx, &dto.EmployeeRequest{
		FirstName: "John", LastName: "Doe", Pinfl: "111", OrganizationID: org.ID,
	})

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}

	err := svc.Delete(ctx, created.ID)
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound on repeat delete, got %v", err)
	}
}
