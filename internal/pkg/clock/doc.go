// Package clock provides a tiny time abstraction.
//
// Production code should depend on the Clocker interface instead of calling
// time.Now() directly. OTP expiry checks in particular need a swappable time
// source so tests can sit exactly on the expiry boundary.
package clock
