// Package company defines the Company and PartnerCompany records.
package company

import (
	"errors"

	"github.com/jsamuelsen11/club-records/internal/domain/record"
)

// RuleFinanceWebsite names the rule requiring finance companies to publish a website.
const RuleFinanceWebsite = "finance_website_required"

var errFinanceWebsite = errors.New("website is required for companies in the Finance sector")

// Company is an organization a club works with.
type Company struct {
	Name          string  `json:"name" validate:"min=2,max=100"`
	Website       *string `json:"website" validate:"omitnil,http_url"`
	Sector        Sector  `json:"sector"`
	EmployeeCount int     `json:"employee_count" validate:"gt=0,lt=100000"`
}

// PartnerCompany is a Company with an active partnership flag.
type PartnerCompany struct {
	Company
	IsActive bool `json:"is_active"`
}

// Affiliation is a company a freelancer or researcher works with. It is
// either a PartnerCompany or a plain Company.
type Affiliation interface {
	Base() Company
	affiliation()
}

// Base returns the company itself. PartnerCompany promotes it.
func (c Company) Base() Company { return c }

func (Company) affiliation() {}

// Schema builds a Company.
var Schema = &record.Schema[Company]{
	Name:  "company",
	Read:  readCompany,
	Rules: []record.Rule[Company]{financeWebsite(func(c *Company) *Company { return c })},
}

// PartnerSchema builds a PartnerCompany. is_active defaults to true.
var PartnerSchema = &record.Schema[PartnerCompany]{
	Name: "partner_company",
	Read: func(r *record.Reader) PartnerCompany {
		return PartnerCompany{
			Company:  readCompany(r),
			IsActive: r.BoolDefault("is_active", true),
		}
	},
	Rules: []record.Rule[PartnerCompany]{
		financeWebsite(func(p *PartnerCompany) *Company { return &p.Company }),
	},
}

// Affiliations lists the candidate shapes of an Affiliation, most specific first.
var Affiliations = []record.Variant[Affiliation]{
	record.As(PartnerSchema, func(p PartnerCompany) Affiliation { return p }),
	record.As(Schema, func(c Company) Affiliation { return c }),
}

func readCompany(r *record.Reader) Company {
	return Company{
		Name:          r.String("name"),
		Website:       r.OptString("website"),
		Sector:        record.Enum(r, "sector", Sectors()),
		EmployeeCount: r.Int("employee_count"),
	}
}

func financeWebsite[T any](company func(*T) *Company) record.Rule[T] {
	return record.Rule[T]{
		Name:   RuleFinanceWebsite,
		Path:   "website",
		Fields: []string{"sector", "website"},
		Check: func(v *T, _ record.Env) error {
			c := company(v)
			if c.Sector == SectorFinance && c.Website == nil {
				return errFinanceWebsite
			}
			return nil
		},
	}
}

// Parse builds a Company from raw field values.
func Parse(raw record.Raw, opts ...record.Option) (Company, error) {
	return Schema.Parse(raw, opts...)
}

// ParsePartner builds a PartnerCompany from raw field values.
func ParsePartner(raw record.Raw, opts ...record.Option) (PartnerCompany, error) {
	return PartnerSchema.Parse(raw, opts...)
}
