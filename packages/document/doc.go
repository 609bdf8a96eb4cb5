// Package document provides assertion helpers over structured documents.
//
// Helpers cover:
//   - EqualJSON / EqualYAML: semantic equality, ignoring formatting and key order
//   - PathEquals / PathExists: assertions against a gjson path within a document
//   - MatchesSchema: JSON Schema validation
//
// All helpers raise the same failure signal as package verify.
package document
