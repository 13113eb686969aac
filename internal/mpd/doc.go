// Package mpd implements a minimal client for the MPD line protocol. One
// client owns one TCP connection and issues commands strictly sequentially; a
// command is never written before the previous response's terminal line has
// been consumed.
package mpd
