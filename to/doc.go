// Package to converts, combines and walks loosely typed values: mappings (map[string]any,
// *ordered.Map and other string keyed maps) and sequences (slices and arrays).
//
// The central operations are Clone, Merge and Flatten. Entries, Filter, Map and Reduce
// iterate containers uniformly; Keys, Values, Array, Sort, Number and String coerce
// values from one shape into another.
package to
