// Package selector drives the interactive narrowing pipeline from a starting
// scope (none, artist, artist+album, quarantine set) down to a dispatched
// playback action. Empty candidate lists and picker cancellations terminate
// the pipeline as normal outcomes, never errors.
package selector
