// SPDX-License-Identifier: EPL-2.0

// Package table builds waveform lookup tables for table-reading
// oscillators, either from harmonic amplitudes or from decoded audio.
package table
