package domain

import (
	"time"
)

// Типы начислений. Хранятся строкой, список открытый.
const (
	CalculationTypeSalary   = "SALARY"
	CalculationTypeVacation = "VACATION"
	CalculationTypeBonus    = "BONUS"
)

// Region представляет регион
type Region struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"type:varchar(20);not null;uniqueIndex"`
}

// TableName задаёт имя таблицы для GORM
func (Region) TableName() string {
	return "region"
}

// Organization представляет организацию. Родительская организация и регион
// хранятся как id-ссылки, связанные строки подгружаются по необходимости.
type Organization struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"type:varchar(50);not null;uniqueIndex"`
	RegionID *int64 `json:"region_id" gorm:"index"`
	ParentID *int64 `json:"parent_id" gorm:"index"`

	Region *Region       `json:"-" gorm:"foreignKey:RegionID"`
	Parent *Organization `json:"-" gorm:"foreignKey:ParentID"`
}

// TableName задаёт имя таблицы для GORM
func (Organization) TableName() string {
	return "organization"
}

// Employee представляет сотрудника
type Employee struct {
	ID             int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName      string     `json:"first_name" gorm:"type:varchar(100);not null"`
	LastName       string     `json:"last_name" gorm:"type:varchar(100);not null"`
	Pinfl          string     `json:"pinfl" gorm:"type:varchar(14);not null;uniqueIndex"`
	HireDate       *time.Time `json:"hire_date" gorm:"type:date"`
	OrganizationID int64      `json:"organization_id" gorm:"not null;index"`

	Organization *Organization `json:"-" gorm:"foreignKey:OrganizationID"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employee"
}

// CalculationRecord представляет запись начисления. Организация в записи
// денормализована: может отличаться от текущей организации сотрудника.
type CalculationRecord struct {
	ID              int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID      int64     `json:"employee_id" gorm:"not null;index"`
	Amount          float64   `json:"amount" gorm:"not null"`
	Rate            float64   `json:"rate" gorm:"not null"`
	Date            time.Time `json:"date" gorm:"type:date;not null"`
	OrganizationID  *int64    `json:"organization_id" gorm:"index"`
	CalculationType string    `json:"calculation_type" gorm:"type:varchar(20);not null"`

	Employee     *Employee     `json:"-" gorm:"foreignKey:EmployeeID"`
	Organization *Organization `json:"-" gorm:"foreignKey:OrganizationID"`
}

// TableName задаёт имя таблицы для GORM
func (CalculationRecord) TableName() string {
	return "calculation_table"
}
