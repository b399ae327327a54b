// Package render implements the small template language used by the exgen
// template catalog: {{key}} placeholders, {{#if key}}, {{#if !key}} and
// {{#if_eq key = word}} blocks, and the capitalizeFirstLetter helper.
//
// A template is tokenized once, openers are paired with their closers into a
// node tree, and the tree is evaluated in a single pass. Rendering never fails:
// anything that cannot be resolved is written back verbatim and reported as a
// Warning.
package render
