package recording

import (
	"io"

	"github.com/gogpu/ggseries"
)

// Backend is the interface that all output backends must implement.
// A backend is a ggseries.Canvas with a lifecycle: Begin sizes the output,
// the recording is replayed onto it, and End finalizes it.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Handle all Canvas methods (even if no-op for some)
//  3. Manage own state stack for Save/Restore
//  4. Resolve brush colors with the colors package, falling back instead of
//     failing on unparseable strings
type Backend interface {
	ggseries.Canvas

	// Begin initializes the backend for rendering at the given dimensions.
	Begin(width, height int) error

	// End finalizes the rendering and prepares the output.
	End() error
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}
