package canvas

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	dc := canvas.NewContext(800, 600)
//
//	surf := canvas.NewSurface(800, 600)
//	dc := canvas.NewContext(800, 600, canvas.WithSurface(surf))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	surface              *Surface
	forceGenericPipeline bool
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{}
}

// WithSurface backs the Context with an existing Surface instead of
// allocating a new one. The surface's dimensions become the Context's
// width and height.
func WithSurface(s *Surface) ContextOption {
	return func(o *contextOptions) {
		o.surface = s
	}
}

// WithRasterizerInstrumentation forces every Fill and Stroke call
// through the generic scanline pipeline, bypassing shape-detection fast
// paths entirely. It exists so tests can render the same path both ways
// and diff the result, verifying the fast paths and the generic
// pipeline produce identical pixels.
func WithRasterizerInstrumentation() ContextOption {
	return func(o *contextOptions) {
		o.forceGenericPipeline = true
	}
}
