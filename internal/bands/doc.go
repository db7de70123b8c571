// Package bands holds the static band to channel-number tables used when
// configuring simulated cells.
//
// Two families exist:
//   - EARFCN for 4G/LTE cells, split into an FDD set (n1-n21) and a TDD set
//     (n22-n40) with disjoint band namespaces.
//   - NR-ARFCN for 5G cells, one namespace that also carries the SSB channel.
//
// Bands are a closed enumeration; ParseBand is the only way to turn user input
// into a Band and it rejects anything outside n1-n40.
//
// # Lookup Misses
//
// Lookup returns ok=false when a band has no entry for the requested
// technology. Callers keep the channel numbers they already hold in that case.
// The NR table only covers n1-n8, n34 and n38-n40, so a 5G cell on most TDD
// bands keeps its previous (or manually entered) numbers.
package bands
