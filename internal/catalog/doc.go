// Package catalog loads the template catalog exgen generates from. The default
// catalog is embedded in the binary; a directory on disk can replace it. Every
// catalog carries a catalog.yaml manifest that is validated against an
// embedded JSON Schema and checked for compatibility with the running
// generator version before any template is read.
package catalog
