// Package people defines the person-like records a club registers: plain
// persons, members, freelancers and researchers.
package people

import (
	"fmt"

	"github.com/jsamuelsen11/club-records/internal/domain/company"
	"github.com/jsamuelsen11/club-records/internal/domain/record"
)

// RuleDailyRateFloor names the specialty-dependent minimum daily rate rule.
const RuleDailyRateFloor = "daily_rate_floor"

// Person holds the contact details shared by every person-like record.
type Person struct {
	Name  string `json:"name" validate:"min=2,max=50,person_name"`
	Email string `json:"email" validate:"email_shape"`
}

// Contact returns the shared contact details. Member, Freelancer and
// Researcher promote it.
func (p Person) Contact() Person { return p }

// Member belongs to a partner company of the club.
type Member struct {
	Person
	ID      int                    `json:"id" validate:"gt=0"`
	Company company.PartnerCompany `json:"company" validate:"-"`
}

// Freelancer works independently, possibly with several companies.
type Freelancer struct {
	Person
	ID        int                   `json:"id" validate:"gt=0"`
	Specialty Specialty             `json:"specialty"`
	Companies []company.Affiliation `json:"companies" validate:"-"`
	// DailyRate is in euros.
	DailyRate *int `json:"daily_rate" validate:"omitnil,gt=0,multiple_of=50"`
}

// Researcher publishes in a field of study.
type Researcher struct {
	Person
	ID               int                   `json:"id" validate:"gt=0"`
	FieldOfStudy     FieldOfStudy          `json:"field_of_study"`
	NumberOfArticles int                   `json:"number_of_articles" validate:"gte=0"`
	Companies        []company.Affiliation `json:"companies" validate:"-"`
}

// Registrant is any person-like record that can join a club or register
// for an event: a Member, Freelancer or Researcher.
type Registrant interface {
	Contact() Person
	registrant()
}

func (Member) registrant()     {}
func (Freelancer) registrant() {}
func (Researcher) registrant() {}

func readPerson(r *record.Reader) Person {
	return Person{
		Name:  r.String("name"),
		Email: r.String("email"),
	}
}

// PersonSchema builds a Person.
var PersonSchema = &record.Schema[Person]{
	Name: "person",
	Read: readPerson,
}

// MemberSchema builds a Member.
var MemberSchema = &record.Schema[Member]{
	Name: "member",
	Read: func(r *record.Reader) Member {
		return Member{
			Person:  readPerson(r),
			ID:      r.Int("id"),
			Company: record.Nested(r, "company", company.PartnerSchema),
		}
	},
}

// FreelancerSchema builds a Freelancer.
var FreelancerSchema = &record.Schema[Freelancer]{
	Name: "freelancer",
	Read: func(r *record.Reader) Freelancer {
		return Freelancer{
			Person:    readPerson(r),
			ID:        r.Int("id"),
			Specialty: record.Enum(r, "specialty", Specialties()),
			Companies: record.ListOneOf(r, "companies", company.Affiliations...),
			DailyRate: r.OptInt("daily_rate"),
		}
	},
	Rules: []record.Rule[Freelancer]{{
		Name:   RuleDailyRateFloor,
		Path:   "daily_rate",
		Fields: []string{"specialty", "daily_rate"},
		Check: func(f *Freelancer, _ record.Env) error {
			if f.DailyRate == nil {
				return nil
			}
			if floor := f.Specialty.MinDailyRate(); *f.DailyRate < floor {
				return fmt.Errorf("daily rate for %s must be at least %d euros", f.Specialty, floor)
			}
			return nil
		},
	}},
}

// ResearcherSchema builds a Researcher.
var ResearcherSchema = &record.Schema[Researcher]{
	Name: "researcher",
	Read: func(r *record.Reader) Researcher {
		return Researcher{
			Person:           readPerson(r),
			ID:               r.Int("id"),
			FieldOfStudy:     record.Enum(r, "field_of_study", FieldsOfStudy()),
			NumberOfArticles: r.IntDefault("number_of_articles", 0),
			Companies:        record.ListOneOf(r, "companies", company.Affiliations...),
		}
	},
}

// Registrants lists the candidate shapes of a Registrant in resolution order.
var Registrants = []record.Variant[Registrant]{
	record.As(MemberSchema, func(m Member) Registrant { return m }),
	record.As(FreelancerSchema, func(f Freelancer) Registrant { return f }),
	record.As(ResearcherSchema, func(r Researcher) Registrant { return r }),
}

// ParsePerson builds a Person from raw field values.
func ParsePerson(raw record.Raw, opts ...record.Option) (Person, error) {
	return PersonSchema.Parse(raw, opts...)
}

// ParseMember builds a Member from raw field values.
func ParseMember(raw record.Raw, opts ...record.Option) (Member, error) {
	return MemberSchema.Parse(raw, opts...)
}

// ParseFreelancer builds a Freelancer from raw field values.
func ParseFreelancer(raw record.Raw, opts ...record.Option) (Freelancer, error) {
	return FreelancerSchema.Parse(raw, opts...)
}

// ParseResearcher builds a Researcher from raw field values.
func ParseResearcher(raw record.Raw, opts ...record.Option) (Researcher, error) {
	return ResearcherSchema.Parse(raw, opts...)
}
