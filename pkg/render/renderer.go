package render

import (
	"context"
	"errors"

	"github.com/goliatone/go-signup/pkg/components"
	"github.com/goliatone/go-signup/pkg/form"
)

// ErrNoForm is returned when a view is rendered without a form container.
var ErrNoForm = errors.New("render: view has no form")

// View is the input every renderer consumes: the static page shell, the form
// container driving it and per-request options.
type View struct {
	Page    components.Page
	Form    *form.Form
	Options RenderOptions
}

// Validate reports whether the view can be rendered.
func (v View) Validate() error {
	if v.Form == nil {
		return ErrNoForm
	}
	return nil
}

// Renderer turns a View into a byte representation. Static renderers draw the
// current snapshot; interactive renderers drive the form until it completes
// and return the completion payload.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view View) ([]byte, error)
}
