// Package estimation implements the volumetric mix-ratio method for
// concrete material quantity take-off.
//
// Estimate is a pure function: given a target poured volume, a
// cement:sand:aggregate mix ratio, material densities, a dry-volume bulking
// factor and a wastage percentage, it produces per-material volumes, masses,
// practical unit counts and cost. Both the interactive preview path and the
// authoritative create path call into this single implementation.
package estimation
