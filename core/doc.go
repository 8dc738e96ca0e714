// Package core provides the numeric primitives shared by the strain
// processing packages: the invalid-sample sentinel, neighbor searches that
// tolerate dropouts, interpolation kernels, and timestamp helpers.
//
// Distributed fiber-optic strain profiles are pairs of a strictly ascending
// position array x and a strain array y of equal length. Dropouts and masked
// anomalies are represented by NaN; every helper in this package either
// skips or reports such samples explicitly, never treats them as zero.
//
// Programmer errors (mismatched x/y lengths, non-ascending x) panic.
// Bad measurement data never panics; it surfaces as error returns in the
// packages building on top of this one.
package core
