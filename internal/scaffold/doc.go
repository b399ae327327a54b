// Package scaffold assembles module files from catalog templates. It powers
// the "exgen generate:module" command: a module name and a kind selection are
// resolved through the Kinds table into template identifiers and output
// names, each template is rendered with the module variables, and the result
// is written through a FileSink.
package scaffold
