package signal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scatter/signal"
)

// TestNewInput_WrapsOrderZero checks the order-0 lifecycle: one entry, empty
// path, default full band.
func TestNewInput_WrapsOrderZero(t *testing.T) {
	s, err := signal.New1D([]float64{1, 2, 3, 4})
	require.NoError(t, err)

	layer := signal.NewInput(s)

	assert.Equal(t, 0, layer.Order)
	require.Len(t, layer.Entries, 1)
	p := layer.Entries[0].Path
	assert.Empty(t, p.Scales)
	assert.Empty(t, p.Orientations)
	assert.Equal(t, 0, p.Resolution)
	assert.InDelta(t, 2*math.Pi, p.Bandwidth, 0)
	assert.Equal(t, signal.NoPhi, p.PhiScale)
	assert.Equal(t, 0, p.Order())
}

// TestExtendScale_CopiesAndAppends verifies path extension produces a fresh
// record: the parent's slices never alias the child's.
func TestExtendScale_CopiesAndAppends(t *testing.T) {
	parent := signal.PathMeta{Scales: []int{1}, Resolution: 0, Bandwidth: math.Pi, PhiScale: signal.NoPhi}

	child := parent.ExtendScale(3, 1, math.Pi/2)

	assert.Equal(t, []int{1, 3}, child.Scales)
	assert.Equal(t, 1, child.Resolution)
	assert.InDelta(t, math.Pi/2, child.Bandwidth, 0)
	assert.Equal(t, signal.NoPhi, child.PhiScale)
	assert.Equal(t, 2, child.Order())

	child.Scales[0] = 42
	assert.Equal(t, 1, parent.Scales[0], "parent scales must not alias the child's")

	j, ok := parent.LastScale()
	require.True(t, ok)
	assert.Equal(t, 1, j)
	_, ok = (signal.PathMeta{}).LastScale()
	assert.False(t, ok, "empty path has no last scale")
}

// TestExtendScaleOrientation_JointDecision checks the 2-D form appends one
// orientation per scale.
func TestExtendScaleOrientation_JointDecision(t *testing.T) {
	parent := signal.PathMeta{Bandwidth: math.Pi, PhiScale: signal.NoPhi}

	child := parent.ExtendScaleOrientation(2, 5, 1, math.Pi/4)

	assert.Equal(t, []int{2}, child.Scales)
	assert.Equal(t, []int{5}, child.Orientations)
	assert.Len(t, child.Orientations, len(child.Scales))
}

// TestExtendPhi_TagsTerminal checks the terminal tag: history untouched,
// PhiScale set, new resolution/bandwidth recorded.
func TestExtendPhi_TagsTerminal(t *testing.T) {
	parent := signal.PathMeta{Scales: []int{2, 4}, Resolution: 1, Bandwidth: 1.0, PhiScale: signal.NoPhi}

	term := parent.ExtendPhi(6, 3, 0.25)

	assert.Equal(t, []int{2, 4}, term.Scales, "terminal path keeps its decision history")
	assert.Equal(t, 6, term.PhiScale)
	assert.Equal(t, 3, term.Resolution)
	assert.InDelta(t, 0.25, term.Bandwidth, 0)
	assert.Equal(t, signal.NoPhi, parent.PhiScale, "parent stays continuable")
}
