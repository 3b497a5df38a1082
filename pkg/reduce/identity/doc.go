// Package identity infers the neutral element of a binary operation over
// a numeric type.
//
// The inference is a heuristic: it probes the operation once at (8, 8)
// and recognises the four arithmetic shapes by their result. An operation
// outside those shapes silently receives the type's zero value, which is
// only correct when zero happens to be its true identity. Callers with
// such operations should pass an explicit identity to the reducer rather
// than rely on inference.
package identity
