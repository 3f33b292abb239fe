package people

// Specialty is a freelancer's area of expertise.
type Specialty string

const (
	SpecialtySoftwareDevelopment Specialty = "Software Development"
	SpecialtyDataScience         Specialty = "Data Science"
	SpecialtyCybersecurity       Specialty = "Cybersecurity"
	SpecialtyDevOps              Specialty = "DevOps"
)

// Specialties returns every defined specialty in declaration order.
func Specialties() []Specialty {
	return []Specialty{
		SpecialtySoftwareDevelopment,
		SpecialtyDataScience,
		SpecialtyCybersecurity,
		SpecialtyDevOps,
	}
}

// IsValid returns true if the specialty is one of the defined constants.
func (s Specialty) IsValid() bool {
	switch s {
	case SpecialtySoftwareDevelopment, SpecialtyDataScience, SpecialtyCybersecurity, SpecialtyDevOps:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Specialty) String() string {
	return string(s)
}

// MinDailyRate is the lowest daily rate in euros a freelancer of this
// specialty may charge. Unknown specialties have no floor.
func (s Specialty) MinDailyRate() int {
	switch s {
	case SpecialtySoftwareDevelopment:
		return 300
	case SpecialtyDataScience:
		return 350
	case SpecialtyCybersecurity:
		return 400
	case SpecialtyDevOps:
		return 375
	default:
		return 0
	}
}

// FieldOfStudy is a researcher's discipline.
type FieldOfStudy string

const (
	FieldComputerScience FieldOfStudy = "Computer Science"
	FieldBiology         FieldOfStudy = "Biology"
	FieldPhysics         FieldOfStudy = "Physics"
	FieldChemistry       FieldOfStudy = "Chemistry"
)

// FieldsOfStudy returns every defined field of study in declaration order.
func FieldsOfStudy() []FieldOfStudy {
	return []FieldOfStudy{FieldComputerScience, FieldBiology, FieldPhysics, FieldChemistry}
}

// IsValid returns true if the field of study is one of the defined constants.
func (f FieldOfStudy) IsValid() bool {
	switch f {
	case FieldComputerScience, FieldBiology, FieldPhysics, FieldChemistry:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (f FieldOfStudy) String() string {
	return string(f)
}
