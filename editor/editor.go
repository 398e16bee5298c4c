// Package editor orchestrates the icon pipeline: it imports SVG
// sources, owns the drawing scene, applies the normalization result
// to it, and exposes the composition parameters driven by the
// control surface.
package editor

import (
	"context"
	"errors"
	"image"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/ondeweb/material-icon-gen/compose"
	"github.com/ondeweb/material-icon-gen/export"
	"github.com/ondeweb/material-icon-gen/normalize"
	"github.com/ondeweb/material-icon-gen/scene"
	"github.com/ondeweb/material-icon-gen/svgdoc"
)

// parseFunc parses raw SVG markup. Replaceable in tests.
type parseFunc func(io.Reader) (*svgdoc.Document, error)

// Editor owns the scene, the current icon and the composition
// parameters. Its state is guarded by a single mutex: imports
// complete on their own goroutine, everything else is expected to be
// driven from one event loop.
type Editor struct {
	surface ControlSurface
	logger  *log.Logger
	parse   parseFunc

	mu        sync.Mutex
	scene     *scene.Scene
	icon      svgdoc.Node
	iconH     scene.Handle
	opts      compose.Options
	importSeq uint64
	cancel    context.CancelFunc
}

// New returns an editor with default composition options reporting
// to the given surface. A nil surface discards notifications.
func New(surface ControlSurface, logger *log.Logger) *Editor {
	if surface == nil {
		surface = NopSurface{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Editor{
		surface: surface,
		logger:  logger,
		parse: func(r io.Reader) (*svgdoc.Document, error) {
			return svgdoc.ReadDocumentStream(r, svgdoc.WarnErrorMode)
		},
		scene: scene.New(),
		opts:  compose.DefaultOptions(),
	}
}

// Import parses the SVG source asynchronously and, on success,
// installs the normalized shape as the active icon. Triggering a new
// import invalidates any in-flight one: the superseded result is
// discarded when it arrives, it never produces a second outcome.
// The per-import outcome is delivered once through the control
// surface.
func (ed *Editor) Import(ctx context.Context, src io.Reader) {
	ctx, token := ed.begin(ctx)
	go func() {
		doc, err := ed.parse(src)
		ed.complete(ctx, token, doc, err)
	}()
}

// ImportFile imports the named SVG file.
func (ed *Editor) ImportFile(ctx context.Context, path string) {
	ctx, token := ed.begin(ctx)
	go func() {
		doc, err := svgdoc.ReadDocument(path, svgdoc.WarnErrorMode)
		ed.complete(ctx, token, doc, err)
	}()
}

// begin claims a new import token and invalidates the context of any
// import still in flight.
func (ed *Editor) begin(ctx context.Context) (context.Context, uint64) {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	ed.importSeq++
	if ed.cancel != nil {
		ed.cancel()
	}
	ctx, ed.cancel = context.WithCancel(ctx)
	return ctx, ed.importSeq
}

// complete applies one parse result, unless a later import has
// superseded it in the meantime.
func (ed *Editor) complete(ctx context.Context, token uint64, doc *svgdoc.Document, err error) {
	ed.mu.Lock()
	defer ed.mu.Unlock()

	if token != ed.importSeq || ctx.Err() != nil {
		ed.logger.Debug("discarding superseded import result", "token", token)
		return
	}
	if err != nil {
		if !errors.Is(err, svgdoc.ErrInvalidDocument) {
			// I/O and similar failures are still parse-level failures
			// from the caller's point of view
			ed.logger.Warn("import parse failed", "err", err)
		}
		ed.surface.ImportFailed(&ImportError{Code: CodeInvalidDocument, Err: err})
		return
	}

	// The parse succeeded: the previous icon is gone regardless of
	// how normalization turns out. Removal happens before any
	// insertion; ordering is the only safety mechanism the scene has.
	ed.clearIconLocked()

	// The scene is the ownership arena for everything the import
	// produced.
	insertPathLike(ed.scene, doc.Root)

	result, discarded, nerr := normalize.Normalize(doc.Root)
	for _, n := range discarded {
		ed.scene.RemoveNode(n)
	}
	if nerr != nil {
		ed.logger.Info("import yielded no drawable path")
		ed.surface.ImportFailed(&ImportError{Code: CodeNoPathFound, Err: nerr})
		return
	}

	ed.iconH = ed.scene.Insert(result)
	ed.icon = result
	ed.logger.Debug("icon imported", "scene_shapes", ed.scene.Len())
	ed.surface.IconLoaded(result)
	ed.surface.RedrawRequested()
}

// clearIconLocked removes the previously imported geometry.
func (ed *Editor) clearIconLocked() {
	if ed.icon != nil {
		ed.scene.Remove(ed.iconH)
		ed.icon = nil
	}
}

// insertPathLike registers every path-like shape of the imported
// tree with the scene, preserving document order.
func insertPathLike(s *scene.Scene, n svgdoc.Node) {
	switch n := n.(type) {
	case *svgdoc.Group:
		for _, child := range n.Children {
			insertPathLike(s, child)
		}
	default:
		if svgdoc.PathLike(n) {
			s.Insert(n)
		}
	}
}

// Icon returns the active normalized shape, or nil when no import
// has succeeded yet.
func (ed *Editor) Icon() svgdoc.Node {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.icon
}

// Scene exposes the ownership arena. Callers must respect the
// single-goroutine discipline.
func (ed *Editor) Scene() *scene.Scene { return ed.scene }

// Options returns a copy of the current composition parameters.
func (ed *Editor) Options() compose.Options {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.opts
}

// SetOptions replaces the composition parameters wholesale.
func (ed *Editor) SetOptions(o compose.Options) {
	ed.mu.Lock()
	ed.opts = o
	ed.mu.Unlock()
	ed.surface.RedrawRequested()
}

// update applies one parameter mutation and requests a repaint.
func (ed *Editor) update(f func(*compose.Options)) {
	ed.mu.Lock()
	f(&ed.opts)
	ed.mu.Unlock()
	ed.surface.RedrawRequested()
}

// The Set methods below are the parameter surface the UI sliders and
// pickers drive.

func (ed *Editor) SetBaseShape(b compose.BaseShape) {
	ed.update(func(o *compose.Options) { o.Base = b })
}

func (ed *Editor) SetBaseColor(c [4]uint8) {
	ed.update(func(o *compose.Options) {
		o.BaseColor.R, o.BaseColor.G, o.BaseColor.B, o.BaseColor.A = c[0], c[1], c[2], c[3]
	})
}

func (ed *Editor) SetIconColor(c [4]uint8) {
	ed.update(func(o *compose.Options) {
		o.IconColor.R, o.IconColor.G, o.IconColor.B, o.IconColor.A = c[0], c[1], c[2], c[3]
	})
}

func (ed *Editor) SetIconScale(s float64) {
	ed.update(func(o *compose.Options) { o.IconScale = s })
}

func (ed *Editor) SetShadow(s compose.Shadow) {
	ed.update(func(o *compose.Options) { o.Shadow = s })
}

// Render composes the current icon with the current parameters.
func (ed *Editor) Render() (*image.RGBA, error) {
	ed.mu.Lock()
	icon, opts := ed.icon, ed.opts
	ed.mu.Unlock()
	return compose.Render(icon, opts)
}

// ExportZip renders the current state and writes the launcher asset
// archive to w.
func (ed *Editor) ExportZip(w io.Writer, densities []export.Density) error {
	master, err := ed.Render()
	if err != nil {
		return err
	}
	return export.WriteZip(w, master, densities)
}
