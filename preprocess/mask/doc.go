// Package mask flags strain reading anomalies (SRAs), implausible local
// spikes in a strain profile, by replacing them with the invalid sentinel.
//
// All maskers share one contract: positions and valid samples pass through
// unchanged, output length equals input length, and masking only ever adds
// invalidity. Three interchangeable detectors are provided:
//
//   - GTM: gradient threshold method. A forward sweep (optionally combined
//     with a reverse sweep) compares each sample against the last plausible
//     reference; gradients steeper than DeltaMax flag the sample.
//   - OSCP: outlier segment comparison. Each sample is compared against the
//     median of its local segment; deviations beyond DeviationMax flag it.
//   - ZScore: sliding-window Z-score with a configurable threshold.
//
// Detection thresholds trade sensitivity against false positives; crack
// peaks are steep by nature, so DeltaMax must stay above the steepest
// physically plausible strain gradient of the structure under test.
package mask
