// Package sparsifier implements the outer per-round driver that
// races a complement finder against a pivot finder and commits whichever
// move reduces the alpha/beta-weighted cost the most, halting when
// neither improves.
package sparsifier
