package dto

// RegionRequest - тело запроса на создание/обновление региона
type RegionRequest struct {
	Name string `json:"name" validate:"required,min=1,max=20"`
}

// OrganizationRequest - тело запроса на создание/обновление организации
type OrganizationRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=50"`
	RegionID *int64 `json:"region_id" validate:"omitempty,min=1"`
	ParentID *int64 `json:"parent_id" validate:"omitempty,min=1"`
}

// EmployeeRequest - тело запроса на создание/обновление сотрудника
type EmployeeRequest struct {
	FirstName      string  `json:"first_name" validate:"required,min=2,max=100"`
	LastName       string  `json:"last_name" validate:"required,min=2,max=100"`
	Pinfl          string  `json:"pinfl" validate:"required,min=2,max=14"`
	HireDate       *string `json:"hire_date" validate:"omitempty,datetime=2006-01-02"`
	OrganizationID int64   `json:"organization_id" validate:"required,min=1"`
}

// CalculationRequest - тело запроса на создание/обновление начисления
type CalculationRequest struct {
	EmployeeID      int64   `json:"employee_id" validate:"required,min=1"`
	Amount          float64 `json:"amount"`
	Rate            float64 `json:"rate"`
	Date            string  `json:"date" validate:"required,datetime=2006-01-02"`
	OrganizationID  *int64  `json:"organization_id" validate:"omitempty,min=1"`
	CalculationType string  `json:"calculation_type" validate:"required,min=1,max=20"`
}

// RegionResponse - ответ с данными региона
type RegionResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// OrganizationResponse - ответ с данными организации
type OrganizationResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	RegionID *int64 `json:"region_id"`
	ParentID *int64 `json:"parent_id"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Pinfl          string  `json:"pinfl"`
	HireDate       *string `json:"hire_date,omitempty"`
	OrganizationID int64   `json:"organization_id"`
}

// CalculationResponse - ответ с данными начисления
type CalculationResponse struct {
	ID              int64   `json:"id"`
	EmployeeID      int64   `json:"employee_id"`
	Amount          float64 `json:"amount"`
	Rate            float64 `json:"rate"`
	Date            string  `json:"date"`
	OrganizationID  *int64  `json:"organization_id"`
	CalculationType string  `json:"calculation_type"`
}

// HighSalaryRow - строка отчёта high-salary
type HighSalaryRow struct {
	Pinfl       string  `json:"pinfl"`
	TotalAmount float64 `json:"total_amount"`
}

// OrganizationSummaryRow - строка отчёта region
type OrganizationSummaryRow struct {
	Pinfl             string  `json:"pinfl"`
	OrganizationCount int64   `json:"organization_count"`
	TotalAmount       float64 `json:"total_amount"`
}

// AverageSalaryRow - строка отчёта average-salary
type AverageSalaryRow struct {
	OrganizationID   int64   `json:"organization_id"`
	OrganizationName string  `json:"organization_name"`
	AverageAmount    float64 `json:"average_amount"`
}

// SalaryVacationRow - строка отчёта salaries-vacations, данные сотрудника
// вложены в строку
type SalaryVacationRow struct {
	Employee EmployeeResponse `json:"employee"`
	Amount   float64          `json:"amount"`
}

// APIResponse - единый конверт ответа
type APIResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	Data    any    `json:"data"`
}
