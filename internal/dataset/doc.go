// Package dataset defines the Users and Products entity schemas and the
// sample collections each list page is seeded with.
package dataset
