// Package rota reconstructs the rota table's nested date/event/role
// structure from a flat sequence of rows.
//
// The source page renders a two-level hierarchy (date headings containing
// timed events containing role assignments) as a flat table with no nesting
// markers. The walker threads a date/event context across the row sequence,
// classifying each row by cell-content heuristics, and emits a candidate
// record whenever a row matches the target role under resolved context.
// Incomplete sections, such as a role row arriving before any date heading,
// drop silently instead of producing malformed records.
package rota
