// Package record builds validated, immutable domain records from untyped input.
//
// A record type is described by a Schema. Parsing runs four stages in a fixed
// order:
//
//  1. Before checks inspect the raw mapping. Any failure stops the parse.
//  2. The schema's Read function pulls each field out through a Reader, which
//     coerces JSON-friendly values and fills defaults for absent fields.
//  3. Field constraints declared in `validate` struct tags are checked.
//  4. Cross-field Rules run against the assembled value, skipping any rule
//     that reads a field which already failed.
//
// Every violation found in a pass is returned together in a single
// *domain.ValidationError.
package record
