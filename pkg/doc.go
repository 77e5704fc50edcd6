// Package pkg provides the core libraries for dashgrid layout computation.
//
// # Overview
//
// Dashgrid computes dashboard grid layouts: rectangular items on an
// integer grid with a fixed column count, kept overlap-free through
// compaction, drag and resize resolution, auto-placement, and
// defragmentation. The pkg directory is organized into four areas:
//
//  1. [grid] - Geometry primitives (items, layouts, collision, sorting)
//  2. [grid/compact] - Compaction strategies (gravity, skyline, overlap-only)
//  3. [grid/engine] - Interactive operations (move, resize, place, optimize)
//  4. [gridio] - JSON serialization for layout documents
//
// # Architecture
//
// The typical data flow through dashgrid:
//
//	layout JSON
//	         ↓
//	    [gridio] package (decode + validate)
//	         ↓
//	    [grid/engine] package (move / resize / place / optimize)
//	         ↓
//	    [grid/compact] package (close gaps, restore invariants)
//	         ↓
//	    layout JSON
//
// The engine packages are pure: no I/O, no logging, no errors on the hot
// path. Degenerate inputs resolve to defined no-op behavior, and
// diagnostics surface through [observability] hooks registered by the
// application.
//
// # Quick Start
//
// Move an item and compact the result:
//
//	import (
//	    "github.com/matzehuels/dashgrid/pkg/grid"
//	    "github.com/matzehuels/dashgrid/pkg/grid/compact"
//	    "github.com/matzehuels/dashgrid/pkg/grid/engine"
//	)
//
//	l := grid.Layout{
//	    grid.NewItem("chart", 0, 0, 6, 4),
//	    grid.NewItem("table", 6, 0, 6, 4),
//	}
//	l = engine.MoveElement(l, "table", 0, 4, engine.MoveOptions{Columns: 12})
//	l = compact.Compact(l, compact.TypeVertical, 12, false)
//
// # Supporting Packages
//
// [errors] - Structured error codes for the layers around the engine
// (codec, validation, configuration).
//
// [observability] - Hook interfaces for engine diagnostics without
// coupling the engine to a logging backend.
//
// [buildinfo] - Build-time version information set via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/grid/compact     # Specific package
//	go test -run Example ./pkg/... # Examples only
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/dashgrid/pkg/grid
// [grid/compact]: https://pkg.go.dev/github.com/matzehuels/dashgrid/pkg/grid/compact
// [grid/engine]: https://pkg.go.dev/github.com/matzehuels/dashgrid/pkg/grid/engine
// [gridio]: https://pkg.go.dev/github.com/matzehuels/dashgrid/pkg/gridio
// [errors]: https://pkg.go.dev/github.com/matzehuels/dashgrid/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/dashgrid/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/dashgrid/pkg/buildinfo
package pkg
