package editor

import "github.com/ondeweb/material-icon-gen/svgdoc"

// ControlSurface is the UI seam: the editor pushes outcomes and
// redraw requests through it, and receives parameter changes via the
// Set methods on Editor. Implementations run on the caller side and
// must be cheap; the editor invokes them synchronously.
type ControlSurface interface {
	// IconLoaded delivers the normalized shape after a successful
	// import. The shape is owned by the scene until the next import.
	IconLoaded(icon svgdoc.Node)

	// ImportFailed reports the single, terminal error of an import
	// attempt.
	ImportFailed(err *ImportError)

	// RedrawRequested signals that a composition parameter changed
	// and the preview should be repainted.
	RedrawRequested()
}

// NopSurface discards every notification. Useful for headless use
// such as the CLI, where outcomes are polled instead.
type NopSurface struct{}

func (NopSurface) IconLoaded(svgdoc.Node)    {}
func (NopSurface) ImportFailed(*ImportError) {}
func (NopSurface) RedrawRequested()          {}
