// Package jucer is a typed, read-only view over a parsed .jucer project
// document: project metadata, the group tree, declared modules, module
// search paths, global module options and export targets.
//
// Every accessor reads through xmltree.Node, so the model never copies the
// document and never mutates it.
package jucer
