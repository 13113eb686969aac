// Package player manipulates the MPD playback queue through the external mpc
// controller. Mutating sequences (clear, add, jump) are serialized across
// processes with an advisory file lock so concurrent invocations cannot
// interleave.
package player
