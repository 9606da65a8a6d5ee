// Package validation implements the write-path pipeline shared by every record kind.
//
// A record kind is described once by a Schema: an ordered list of fields with their type,
// optionality, read-only flag, TTL flag and format rules. Schema.Validate turns a raw
// request payload into a normalized Payload in a fixed order:
//
//   - unknown keys are rejected (CheckKeys)
//   - the -1 sentinel is translated to nil (Normalize)
//   - read-only keys are dropped
//   - values are coerced to the field type and checked against the field rules
//   - TTL fields are range checked (ValidateTTL)
//   - required fields are enforced on create
//
// Cross-record lookups (for example resolving a HINFO preset id) are not part of this
// package. They run after Validate in the record package.
package validation
