// Package filegroup flattens a project's group tree into emission units, one
// per contiguous run of files inside a group, and writes them as
// jucer_project_files and jucer_project_resources calls.
//
// The traversal is depth-first and pre-order. Output order is the document
// order; nothing is ever sorted.
package filegroup
