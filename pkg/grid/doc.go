// Package grid defines the data model and collision primitives for the
// dashgrid layout engine.
//
// A layout is an ordered sequence of rectangular items positioned on an
// integer grid with a fixed number of columns and unbounded rows. The
// package provides the axis-aligned overlap test and the collision-set
// queries every higher-level algorithm is built on, plus the sorting
// helpers used to establish deterministic processing order.
//
// # Purity
//
// Everything in this package is a pure function of its inputs. Items are
// value types: no function mutates an Item or Layout it receives, and
// helpers that reorder items return copies. This makes the engine safe to
// call concurrently on independent layouts without coordination.
//
// # Coordinates
//
// X is the column index (cross axis), Y the row index (main axis). An item
// occupies the half-open cell range [X, X+W) x [Y, Y+H). Rows grow without
// bound; columns are limited by the caller-supplied column count.
package grid
