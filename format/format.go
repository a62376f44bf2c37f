package format

import (
	"fmt"

	"github.com/katalvlaran/scatter/signal"
)

// ParseFormat resolves a format name from string-keyed configuration.
// Unknown names are an unsupported-mode error, reported eagerly.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "raw":
		return Raw, nil
	case "order_table":
		return OrderTable, nil
	case "table":
		return Table, nil
	case "vector":
		return Vector, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// AsOrderTables flattens each order's layer into one paths×coefficients
// table. Every path within an order must have the same coefficient length
// (they share one output resolution); a ragged order fails with
// ErrIncompatibleResolution before any output is produced.
func AsOrderTables(uPhis []signal.Layer) ([]OrderBlock, error) {
	out := make([]OrderBlock, len(uPhis))
	for i, layer := range uPhis {
		block := OrderBlock{
			Order: layer.Order,
			Rows:  make([][]float64, len(layer.Entries)),
			Meta:  make([]signal.PathMeta, len(layer.Entries)),
		}
		for p, e := range layer.Entries {
			if e.Sig.Len() != layer.Entries[0].Sig.Len() {
				return nil, fmt.Errorf("%w: order %d, path %d has %d coefficients, path 0 has %d",
					ErrIncompatibleResolution, layer.Order, p, e.Sig.Len(), layer.Entries[0].Sig.Len())
			}
			block.Rows[p] = e.Sig.Real()
			block.Meta[p] = e.Path.Clone()
		}
		out[i] = block
	}

	return out, nil
}

// AsTable concatenates all orders into one table. All non-empty orders must
// share one per-coefficient resolution; differing row lengths fail with
// ErrIncompatibleResolution rather than truncating.
func AsTable(uPhis []signal.Layer) ([][]float64, []signal.PathMeta, error) {
	blocks, err := AsOrderTables(uPhis)
	if err != nil {
		return nil, nil, err
	}

	width := -1
	total := 0
	for _, b := range blocks {
		if len(b.Rows) == 0 {
			continue
		}
		if width < 0 {
			width = len(b.Rows[0])
		} else if len(b.Rows[0]) != width {
			return nil, nil, fmt.Errorf("%w: order %d has %d coefficients per path, previous orders have %d",
				ErrIncompatibleResolution, b.Order, len(b.Rows[0]), width)
		}
		total += len(b.Rows)
	}

	rows := make([][]float64, 0, total)
	meta := make([]signal.PathMeta, 0, total)
	for _, b := range blocks {
		rows = append(rows, b.Rows...)
		meta = append(meta, b.Meta...)
	}

	return rows, meta, nil
}

// AsVector flattens the full table into one feature row, path-major. Same
// compatibility requirement as AsTable.
func AsVector(uPhis []signal.Layer) ([]float64, []signal.PathMeta, error) {
	rows, meta, err := AsTable(uPhis)
	if err != nil {
		return nil, nil, err
	}
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	vec := make([]float64, 0, len(rows)*width)
	for _, row := range rows {
		vec = append(vec, row...)
	}

	return vec, meta, nil
}

// Apply dispatches on the closed format enum; exactly the Result fields
// implied by f are populated.
func Apply(uPhis []signal.Layer, f Format) (*Result, error) {
	switch f {
	case Raw:
		return &Result{Format: Raw, Layers: uPhis}, nil
	case OrderTable:
		blocks, err := AsOrderTables(uPhis)
		if err != nil {
			return nil, err
		}

		return &Result{Format: OrderTable, Orders: blocks}, nil
	case Table:
		rows, meta, err := AsTable(uPhis)
		if err != nil {
			return nil, err
		}

		return &Result{Format: Table, Rows: rows, Meta: meta}, nil
	case Vector:
		vec, meta, err := AsVector(uPhis)
		if err != nil {
			return nil, err
		}

		return &Result{Format: Vector, Vec: vec, Meta: meta}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, int(f))
	}
}
