// Package notifications announces dispatched playback actions. Delivery is
// cosmetic: callers fire and forget, and every backend failure is surfaced as
// an ordinary error the caller may log and drop.
package notifications
