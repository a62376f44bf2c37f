package conv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/scatter/conv"
)

// TestDownsamplingRate_Formula checks the exact decimation formula over a
// grid of scales, quality factors, resolutions and margins.
func TestDownsamplingRate_Formula(t *testing.T) {
	for scale := 1; scale <= 8; scale++ {
		for q := 1; q <= 3; q++ {
			for res := 0; res <= 4; res++ {
				for over := 0; over <= 2; over++ {
					want := scale/q - res - over
					if want < 0 {
						want = 0
					}
					got := conv.DownsamplingRate(scale, q, res, over)
					assert.Equal(t, want, got, "scale=%d q=%d res=%d over=%d", scale, q, res, over)
					assert.GreaterOrEqual(t, got, 0, "rate must never go negative")
				}
			}
		}
	}
}

// TestDownsamplingRate_GrowsWithScale verifies coarser filters decimate more.
func TestDownsamplingRate_GrowsWithScale(t *testing.T) {
	prev := 0
	for scale := 1; scale <= 10; scale++ {
		ds := conv.DownsamplingRate(scale, 1, 0, 1)
		assert.GreaterOrEqual(t, ds, prev, "rate must be non-decreasing in scale")
		prev = ds
	}
}

// TestDownsamplingRate_QBelowOne treats a degenerate quality factor as 1.
func TestDownsamplingRate_QBelowOne(t *testing.T) {
	assert.Equal(t, conv.DownsamplingRate(4, 1, 0, 1), conv.DownsamplingRate(4, 0, 0, 1))
}
