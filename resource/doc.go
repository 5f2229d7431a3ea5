// Package resource provides hash-indexed maps keyed by resource id.
//
// A [Map] accepts either a name or a precomputed id for every operation and
// stores values under [hash.ResourceID]. Names observed by [Map.Set] are
// recorded in a [Registry] so ids can be rendered back as readable labels.
// The registry serves display only; lookups never consult it.
package resource
