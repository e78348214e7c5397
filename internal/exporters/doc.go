// Package exporters writes the jucer_export_target and
// jucer_export_target_configuration calls for the export targets a project
// declares.
//
// Supported targets form a fixed, ordered table. Output follows the table's
// order, never the document's, so regenerated scripts stay stable when a
// project reorders its exporters.
package exporters
