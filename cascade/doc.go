// Package cascade is the scattering engine proper: path pruning, the
// per-dimension wavelet-layer transforms, and the factory that chains them
// into a full scattering network.
//
// 🧭 One layer invocation
//
//	Transform1D / Transform2D / TransformRoto consume one input Layer and an
//	immutable filter bank and produce two sibling layers:
//	  U_phi — the order-m scattering coefficients (low-pass averaged,
//	          terminal, never reprocessed);
//	  U_psi — the wavelet band-pass coefficients that, after the elementwise
//	          modulus, become the order-m+1 input.
//
// Each input entry is processed independently: the transform computes the
// active-filter mask (pruning), invokes the band-limited convolution once
// for φ and once per active ψ, and extends the entry's path metadata. Slot
// ownership in the output layers is precomputed by a prefix sum over the
// mask counts, so entries run in parallel without locks and the output
// ordering is deterministic regardless of completion order: children of
// parent p form a contiguous block, parents in input order, children in
// increasing filter index.
//
// 🌿 Pruning
//
// Two dimension-specific policies keep the path tree finite:
//   - 1-D: a ψ_p is active iff bandwidth·2^margin > ξ_p — only filters whose
//     center frequency lies below the (relaxed) current signal bandwidth.
//   - 2-D: a ψ_p is active iff j_p ≥ j_last + Q — each successive wavelet
//     probes at least one full octave-family step lower.
//
// The rules are intentionally not unified: they prune slightly different
// sets for a shared bank design, and each matches its dimension's filter
// parameterization.
//
// 🔁 Roto-translation
//
// TransformRoto treats the orientation axis of 2-D wavelet-modulus images
// as an extra periodic spatial dimension. The first roto order gathers each
// scale-group of L orientation slices, doubles it to 2·L samples (modulus
// images at θ and θ+π coincide), and from then on entries are 3-D stacks.
// Each order composes an angular 1-D periodic wavelet decomposition with the
// ordinary spatial 2-D one; U_phi is the doubly-averaged branch, U_psi every
// separable product with at least one band-pass factor.
//
// 🏗 Factory
//
// Build/BuildRoto return the ordered operator sequence — tagged variants
// carrying only their bank references — and Apply dispatches on the tag. Run
// drives the full composition (operator ∘ modulus ∘ operator ∘ …) and
// collects the per-order U_phi layers.
package cascade
