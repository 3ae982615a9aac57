// Package pagination provides page arithmetic, page-link windows, and sorting
// shared by the list controller, the CLI, and the TUI.
//
// This package contains:
//   - Params: page/page-size/sort flag values and their validation
//   - Meta: metadata for one rendered page ("Showing X to Y of Z")
//   - Window: the page-number links shown in a pagination bar
//   - Sorter: a stable, field-keyed sorter over any item type
//
// All page numbers are 1-based. A result with zero items still reports one
// page so callers can always render "page 1 of 1".
package pagination
