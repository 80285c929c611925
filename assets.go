package signup

import (
	"io/fs"

	signuphtml "github.com/goliatone/go-signup/pkg/renderers/html"
)

// EmbeddedTemplates exposes the built-in html templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return signuphtml.TemplatesFS()
}

// AssetsFS exposes the stylesheet bundle so Go applications can serve it
// without a frontend build step.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(signup.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return signuphtml.AssetsFS()
}
