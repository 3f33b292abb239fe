package company

// Sector is the industry a company operates in.
type Sector string

const (
	SectorTechnology Sector = "Technology"
	SectorHealthcare Sector = "Healthcare"
	SectorEducation  Sector = "Education"
	SectorFinance    Sector = "Finance"
)

// Sectors returns every defined sector in declaration order.
func Sectors() []Sector {
	return []Sector{SectorTechnology, SectorHealthcare, SectorEducation, SectorFinance}
}

// IsValid returns true if the sector is one of the defined constants.
func (s Sector) IsValid() bool {
	switch s {
	case SectorTechnology, SectorHealthcare, SectorEducation, SectorFinance:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Sector) String() string {
	return string(s)
}
