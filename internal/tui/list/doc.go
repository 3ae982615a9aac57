// Package listview provides the row cursor used by paged Bubble Tea tables.
//
// A page holds a handful of rows, so every row is rendered on each frame;
// the cursor only tracks which row is selected and keeps that selection in
// range when the page contents change underneath it.
package listview
