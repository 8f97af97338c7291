package domain

import "time"

// Строки отчётов по начислениям. Все отчёты параметризованы номером месяца
// (компонент месяца из даты начисления).

// HighSalaryRow - суммарное начисление по pinfl, превысившее порог
type HighSalaryRow struct {
	Pinfl       string  `json:"pinfl"`
	TotalAmount float64 `json:"total_amount"`
}

// OrganizationSummaryRow - по pinfl: число различных организаций в записях
// месяца и суммарное начисление
type OrganizationSummaryRow struct {
	Pinfl             string  `json:"pinfl"`
	OrganizationCount int64   `json:"organization_count"`
	TotalAmount       float64 `json:"total_amount"`
}

// AverageSalaryRow - средняя величина начислений по организации
type AverageSalaryRow struct {
	OrganizationID   int64   `json:"organization_id"`
	OrganizationName string  `json:"organization_name"`
	AverageAmount    float64 `json:"average_amount"`
}

// SalaryVacationRow - запись SALARY или VACATION с данными сотрудника
type SalaryVacationRow struct {
	EmployeeID     int64      `json:"employee_id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Pinfl          string     `json:"pinfl"`
	HireDate       *time.Time `json:"hire_date"`
	OrganizationID int64      `json:"organization_id"`
	Amount         float64    `json:"amount"`
}
