package conv

// DefaultOversampling is the decimation safety margin: one octave of
// headroom, so critical sampling is never hit exactly.
const DefaultOversampling = 1

// DownsamplingRate returns the dyadic decimation exponent for a filter of
// the given scale under quality factor q, applied to a signal already at
// the given resolution, with an oversampling margin:
//
//	max(⌊scale/q⌋ - resolution - oversampling, 0)
//
// The rate never goes negative and grows with filter scale: coarser
// (lower-frequency) filters are decimated more. q below 1 is treated as 1.
func DownsamplingRate(scale, q, resolution, oversampling int) int {
	if q < 1 {
		q = 1
	}
	ds := scale/q - resolution - oversampling
	if ds < 0 {
		return 0
	}

	return ds
}
