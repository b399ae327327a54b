// Package project generates a new project tree from a template catalog.
//
// The catalog manifest drives the whole run: its directories are created,
// its file entries are rendered with the project options (entries gated by
// when/unless are skipped when the option says so) and its module entries are
// handed to the scaffold assembler, either as a full module of the default
// set or as an explicit file list from a named set.
package project
