// Package format: output formats and sentinel errors.
package format

import (
	"errors"

	"github.com/katalvlaran/scatter/signal"
)

// Sentinel errors for output formatting.
var (
	// ErrIncompatibleResolution indicates orders (or paths within an order)
	// whose coefficient lengths differ, making tabular concatenation
	// impossible.
	ErrIncompatibleResolution = errors.New("format: coefficient resolutions are incompatible for tabular output")
	// ErrUnsupportedFormat indicates an unrecognized format name or tag.
	ErrUnsupportedFormat = errors.New("format: unsupported output format")
)

// Format is the closed set of output layouts.
type Format int

const (
	// Raw passes the layers through untouched.
	Raw Format = iota
	// OrderTable emits one paths×coefficients table per order.
	OrderTable
	// Table concatenates all orders into one table.
	Table
	// Vector flattens the Table into a single feature row.
	Vector
)

// String implements fmt.Stringer; the names round-trip through ParseFormat.
func (f Format) String() string {
	switch f {
	case Raw:
		return "raw"
	case OrderTable:
		return "order_table"
	case Table:
		return "table"
	case Vector:
		return "vector"
	default:
		return "unknown"
	}
}

// OrderBlock is one order's tabular output: row i holds the flattened
// coefficients of path i, aligned with Meta[i].
type OrderBlock struct {
	Order int
	Rows  [][]float64
	Meta  []signal.PathMeta
}

// Result carries the output of Apply; exactly the fields implied by Format
// are populated.
type Result struct {
	Format Format
	Layers []signal.Layer    // Raw
	Orders []OrderBlock      // OrderTable
	Rows   [][]float64       // Table
	Meta   []signal.PathMeta // Table, Vector
	Vec    []float64         // Vector
}
