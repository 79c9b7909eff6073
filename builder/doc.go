// Package builder resolves default field correspondences for class maps.
//
// Resolution runs an ordered pipeline of generators over a class map:
//
//  1. property directives (never terminal)
//  2. field directives, ancestors included (never terminal)
//  3. type options, reconciled between both sides (never terminal)
//  4. map shape (terminal)
//  5. collection shape (terminal)
//  6. plain-record fallback, build-time only (terminal)
//
// A class map is only resolved when it opts into wildcard inference.
// Generators never remove correspondences and skip names that are already
// mapped, so running a pipeline twice adds nothing the second time.
package builder
