package event

// Type is the format of an event.
type Type string

const (
	TypeWorkshop   Type = "Workshop"
	TypeConference Type = "Conference"
	TypeSeminar    Type = "Seminar"
	TypeNetworking Type = "Networking"
	TypeDatathon   Type = "Datathon"
)

// Types returns every defined event type in declaration order.
func Types() []Type {
	return []Type{TypeWorkshop, TypeConference, TypeSeminar, TypeNetworking, TypeDatathon}
}

// IsValid returns true if the event type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeWorkshop, TypeConference, TypeSeminar, TypeNetworking, TypeDatathon:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}
