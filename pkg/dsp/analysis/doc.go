// Package analysis provides signal analysis for multichannel processors.
//
// ActivityMonitor tracks, per channel, whether a smoothed signal level
// crossed a fixed threshold within the last half second:
//
//	mon := analysis.NewActivityMonitor(6, 48000)
//	mon.Process(block) // audio thread, once per block
//
//	if mon.IsActive(2) { // any goroutine
//	    ...
//	}
//
// Results are published once per block through atomics, so readers never
// take a lock and never observe a half-updated block.
package analysis
