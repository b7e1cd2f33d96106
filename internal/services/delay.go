package services

import "time"

// Delay simulates network latency before a demo operation completes. It is
// injected so tests run with zero real wait.
//
// Deliberately not context-aware: a caller that abandons the call does not
// cancel the delay, and any scheduled mutation still applies once it elapses.
// That matches the deployed demo client's behavior.
type Delay func(d time.Duration)

// Sleep is the production Delay.
func Sleep(d time.Duration) {
	time.Sleep(d)
}

// NoDelay skips the simulated latency; used by tests.
func NoDelay(time.Duration) {}
