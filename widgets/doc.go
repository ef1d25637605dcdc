// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (popout card, scrim, overlay compositor)
//
// Not allowed here:
// - key or mouse handling, transition state, animation timing
package widgets
