// Package tool holds the canonical tool definition shared by every backend.
//
// A Definition pairs a name and description with a JSON-schema parameter
// object. The schema is the single source of truth: the three provider wire
// shapes (flat function object, inline custom tool, upper-cased function
// declaration) are all derived from it at call time by the toolshape
// package.
package tool
