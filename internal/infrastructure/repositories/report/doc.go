// Package report renders license reports and writes them to disk.
//
// Rendering and writing are split: Render* functions are pure functions of the
// entries and options writing to any io.Writer, while the repositories own the
// output file. Files are written to a temporary sibling and renamed into place,
// so a failed run never leaves a truncated report behind.
package report
