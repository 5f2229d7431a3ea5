// Package hash implements the identity hashes used by the container format.
//
// Three families share one byte-derivation rule: numbers are passed through
// unchanged (narrowed to the target width), strings are case-folded unless
// asked otherwise and hashed over their UTF-8 bytes, and byte slices are
// hashed raw.
//
//   - [ShortID]: 16-bit CRC for low-stakes identifiers.
//   - [ResourceID]: 32-bit CRC for every name referenced inside a container.
//   - [ObjectID]: 32-bit hash for cross-references from text configuration.
//
// Lookups throughout the module key on these values, never on the strings
// themselves, so names that differ only by case resolve to the same slot.
package hash
