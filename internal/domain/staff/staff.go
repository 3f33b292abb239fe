// Package staff defines the people a project or task can be assigned to:
// employees and interns.
package staff

import (
	"fmt"

	"github.com/jsamuelsen11/club-records/internal/domain/record"
)

// RuleSalaryForAge names the minimum-salary-for-age rule.
const RuleSalaryForAge = "salary_for_age"

// DefaultSalary is the salary an Employee gets when none is supplied.
const DefaultSalary = 1400.0

// Employee is a salaried staff member.
type Employee struct {
	Name   string  `json:"name" validate:"excludesall=0123456789"`
	Age    int     `json:"age" validate:"gt=18"`
	Salary float64 `json:"salary"`
}

// MinSalary is the lowest salary considered realistic for the employee's age.
func (e Employee) MinSalary() float64 {
	return float64(e.Age) * 1000
}

// Intern is a student placed in a department.
type Intern struct {
	Name           string         `json:"name"`
	Age            int            `json:"age" validate:"gt=16"`
	EducationLevel EducationLevel `json:"education_level"`
	Department     Department     `json:"department"`
}

// Assignee is whoever a project or task is assigned to: an Employee or an Intern.
type Assignee interface {
	DisplayName() string
	assignee()
}

// DisplayName implements Assignee.
func (e Employee) DisplayName() string { return e.Name }

// DisplayName implements Assignee.
func (i Intern) DisplayName() string { return i.Name }

func (Employee) assignee() {}
func (Intern) assignee()   {}

// EmployeeSchema builds an Employee. The salary floor is only enforced on an
// explicitly supplied salary.
var EmployeeSchema = &record.Schema[Employee]{
	Name: "employee",
	Read: func(r *record.Reader) Employee {
		return Employee{
			Name:   r.String("name"),
			Age:    r.Int("age"),
			Salary: r.FloatDefault("salary", DefaultSalary),
		}
	},
	Rules: []record.Rule[Employee]{{
		Name:     RuleSalaryForAge,
		Path:     "salary",
		Fields:   []string{"age", "salary"},
		Explicit: true,
		Check: func(e *Employee, _ record.Env) error {
			if e.Salary < e.MinSalary() {
				return fmt.Errorf("salary is unrealistically low for age %d (minimum %.0f)", e.Age, e.MinSalary())
			}
			return nil
		},
	}},
}

// InternSchema builds an Intern. Department defaults to Data Science.
var InternSchema = &record.Schema[Intern]{
	Name: "intern",
	Read: func(r *record.Reader) Intern {
		return Intern{
			Name:           r.String("name"),
			Age:            r.Int("age"),
			EducationLevel: record.Enum(r, "education_level", EducationLevels()),
			Department:     record.EnumDefault(r, "department", Departments(), DepartmentData),
		}
	},
}

// Assignees lists the candidate shapes of an Assignee in resolution order.
// An adult payload without a salary satisfies Employee first.
var Assignees = []record.Variant[Assignee]{
	record.As(EmployeeSchema, func(e Employee) Assignee { return e }),
	record.As(InternSchema, func(i Intern) Assignee { return i }),
}

// ParseEmployee builds an Employee from raw field values.
func ParseEmployee(raw record.Raw, opts ...record.Option) (Employee, error) {
	return EmployeeSchema.Parse(raw, opts...)
}

// ParseIntern builds an Intern from raw field values.
func ParseIntern(raw record.Raw, opts ...record.Option) (Intern, error) {
	return InternSchema.Parse(raw, opts...)
}
