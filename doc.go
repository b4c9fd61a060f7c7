// Package reshape contains the core components of Reshape, an engine for
// schema-driven transformation of tabular records. This root package defines
// types which are employed during the regular use of the engine, as well as
// in the extension of the engine, and is an excellent overview of Reshape's
// key concepts: Schemas describe the shape of Rows, TransformSteps rewrite
// Schemas and Rows in lockstep, a Process is a validated sequence of steps
// with a precomputed final Schema, and the execute package applies a Process
// to a collection of Rows.
package reshape
