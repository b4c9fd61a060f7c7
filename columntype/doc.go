// Package columntype provides the closed set of built-in column types for
// Reshape Schemas, together with their per-kind constraints (numeric
// ranges, categorical value sets) and value admissibility rules.
package columntype
