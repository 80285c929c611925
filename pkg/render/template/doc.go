// Package template defines the template engine seam used by the HTML
// renderer. The gotemplate subpackage provides the built-in pongo2 engine and
// a constructor for the stock go-template engine.
package template
