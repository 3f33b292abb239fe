package staff

// EducationLevel is the highest degree an intern is studying for.
type EducationLevel string

const (
	EducationBachelor   EducationLevel = "bachelor"
	EducationMaster     EducationLevel = "master"
	EducationPhD        EducationLevel = "phd"
	EducationHighSchool EducationLevel = "high_school"
)

// EducationLevels returns every defined education level in declaration order.
func EducationLevels() []EducationLevel {
	return []EducationLevel{EducationBachelor, EducationMaster, EducationPhD, EducationHighSchool}
}

// IsValid returns true if the education level is one of the defined constants.
func (e EducationLevel) IsValid() bool {
	switch e {
	case EducationBachelor, EducationMaster, EducationPhD, EducationHighSchool:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (e EducationLevel) String() string {
	return string(e)
}

// Department is the team an intern is placed in.
type Department string

const (
	DepartmentAI   Department = "Artificial Intelligence"
	DepartmentData Department = "Data Science"
	DepartmentCom  Department = "Software Development"
	DepartmentHR   Department = "Human Resources"
)

// Departments returns every defined department in declaration order.
func Departments() []Department {
	return []Department{DepartmentAI, DepartmentData, DepartmentCom, DepartmentHR}
}

// IsValid returns true if the department is one of the defined constants.
func (d Department) IsValid() bool {
	switch d {
	case DepartmentAI, DepartmentData, DepartmentCom, DepartmentHR:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (d Department) String() string {
	return string(d)
}
