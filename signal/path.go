package signal

// Clone deep-copies the path record. Paths are owned per-entry and never
// aliased across entries, so every extension starts from a copy.
func (p PathMeta) Clone() PathMeta {
	out := PathMeta{Resolution: p.Resolution, Bandwidth: p.Bandwidth, PhiScale: p.PhiScale}
	if p.Scales != nil {
		out.Scales = make([]int, len(p.Scales))
		copy(out.Scales, p.Scales)
	}
	if p.Orientations != nil {
		out.Orientations = make([]int, len(p.Orientations))
		copy(out.Orientations, p.Orientations)
	}

	return out
}

// Order reports the cascade order of the path: the number of wavelet
// decisions taken so far.
func (p PathMeta) Order() int { return len(p.Scales) }

// LastScale returns the most recent scale decision, or ok=false for the
// empty (order-0) path.
func (p PathMeta) LastScale() (j int, ok bool) {
	if len(p.Scales) == 0 {
		return 0, false
	}

	return p.Scales[len(p.Scales)-1], true
}

// ExtendScale appends one scale decision and updates the resolution and
// bandwidth bookkeeping, returning a fresh record.
func (p PathMeta) ExtendScale(scale, resolution int, bandwidth float64) PathMeta {
	out := p.Clone()
	out.Scales = append(out.Scales, scale)
	out.Resolution = resolution
	out.Bandwidth = bandwidth
	out.PhiScale = NoPhi

	return out
}

// ExtendScaleOrientation appends a joint (scale, orientation) decision —
// the 2-D and roto-translation form of ExtendScale.
func (p PathMeta) ExtendScaleOrientation(scale, orientation, resolution int, bandwidth float64) PathMeta {
	out := p.Clone()
	out.Scales = append(out.Scales, scale)
	out.Orientations = append(out.Orientations, orientation)
	out.Resolution = resolution
	out.Bandwidth = bandwidth
	out.PhiScale = NoPhi

	return out
}

// ExtendPhi tags the path as terminal: same decision history, new resolution
// and bandwidth from the low-pass convolution, PhiScale set to the layer's
// φ scale. Terminal paths are never continued.
func (p PathMeta) ExtendPhi(phiScale, resolution int, bandwidth float64) PathMeta {
	out := p.Clone()
	out.Resolution = resolution
	out.Bandwidth = bandwidth
	out.PhiScale = phiScale

	return out
}

// NewInput wraps a raw signal as the order-0 layer: a single entry with an
// empty path. Bandwidth and resolution default to full band (2π) and 0 when
// the signal carries zero values.
func NewInput(sig *Signal) Layer {
	bw := sig.Bandwidth
	if bw == 0 {
		bw = FullBand
	}
	s := sig.Clone()
	s.Bandwidth = bw

	return Layer{
		Order: 0,
		Entries: []Entry{{
			Sig:  s,
			Path: PathMeta{Resolution: s.Resolution, Bandwidth: bw, PhiScale: NoPhi},
		}},
	}
}
