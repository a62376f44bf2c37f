// Package format reshapes the per-order scattering layers into the flat
// numeric tables consumed by feature-database and classifier code.
//
// Four target formats:
//   - Raw        — the layers themselves, untouched, no metadata extraction.
//   - OrderTable — per order, a 2-D table of shape paths×coefficients plus
//     one metadata record per path.
//   - Table      — all orders' tables concatenated into one; requires every
//     order to share the same per-coefficient resolution (row length).
//   - Vector     — the Table flattened into a single row: one feature
//     vector per sample.
//
// Row order follows entry order exactly: positional alignment between
// coefficient rows and path metadata is the contract the downstream
// classifier relies on. Incompatible row lengths fail eagerly with
// ErrIncompatibleResolution — never a silent truncation.
package format
