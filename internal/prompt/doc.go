// Package prompt asks the interactive questions of the CLI. Questions go
// through a Driver so commands can be tested without a terminal; the default
// driver is backed by survey.
package prompt
