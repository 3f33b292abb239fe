// Package domain contains shared domain types used across record sub-packages.
// Record-specific types live in sub-packages (domain/company, domain/people,
// domain/event, domain/club, domain/staff, domain/project, domain/task) and are
// built by the construction pipeline in domain/record. This root package holds
// sentinel errors and the aggregated ValidationError shared by all of them.
package domain
