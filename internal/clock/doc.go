// Package clock is the time source shared by the timer driven services.
//
// System schedules with the time package. Manual only moves when told to
// and runs due callbacks on the goroutine that advances it, which keeps
// tests of the player and the review policy deterministic.
package clock
