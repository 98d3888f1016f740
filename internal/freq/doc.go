// Package freq evaluates the frequency response of regular linear DAEs.
//
// The transfer matrix is sampled along the imaginary axis (s = jw) and
// converted entrywise to magnitude in decibels and phase in degrees:
//
//	mag, phase, err := freq.Response(sys, complex(0, 1))
//	sweep, err := freq.ResponseRange(sys, -2, 2, 400)
//
// Sweeps are log-spaced base 10, ascending and reproducible; samples are
// evaluated concurrently but land in frequency order.
package freq
