// Package recording captures series draw calls as commands.
//
// A [Recorder] implements [ggseries.Canvas]. Renderers draw into it exactly as
// they would into a live canvas; the resulting [Recording] can be inspected
// (tests count fills and strokes and check their brushes) or played back to
// a registered [Backend] to produce an image.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: Captures canvas calls as commands
//   - Recording: Stores commands and resources for playback
//   - Backend: Renders commands to a specific output format
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 600)
//	renderer.Draw(ggseries.NewTarget(ggseries.RenderingScope{
//	    Canvas:               rec,
//	    HorizontalPixelRatio: 1,
//	    VerticalPixelRatio:   1,
//	    BitmapSize:           ggseries.Size{Width: 800, Height: 600},
//	}), priceToCoordinate, false, nil)
//	r := rec.FinishRecording()
//
//	fills := r.Count(recording.CmdFillPath)
//
// # Playback to Backends
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register it:
//
//	import (
//	    "github.com/gogpu/ggseries/recording"
//	    _ "github.com/gogpu/ggseries/recording/backends/raster" // "png"
//	    _ "github.com/gogpu/ggseries/recording/backends/svg"    // "svg"
//	)
//
//	backend, err := recording.NewBackend("png")
//	if err != nil {
//	    return err
//	}
//	if err := r.Playback(backend); err != nil {
//	    return err
//	}
//	backend.(recording.WriterBackend).WriteTo(w)
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Recording objects are immutable
// after FinishRecording and can be played back from multiple goroutines.
package recording
