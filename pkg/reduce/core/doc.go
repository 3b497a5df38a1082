// Package core contains reduction plumbing: chunk partitioning, tuning
// options carried via context, and the fold lines that fan chunk jobs out
// to workers and fan partials back in. It does not decide reduction
// semantics; package parallel composes these pieces into the public
// reducer.
package core
