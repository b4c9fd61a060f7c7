// Package transform provides the built-in TransformStep variants: column
// removal and renaming, row filtering, conditional value replacement, time
// parsing and time-field derivation. Each step implements its effect twice,
// once against a Schema (MapSchema) and once against a Row (ApplyToRow).
package transform
