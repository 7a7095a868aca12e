// Package ordered provides the insertion-ordered mapping used across the library.
//
// Go maps do not keep the order in which keys were written, while the documents this
// library transforms (JSON objects, YAML mappings) usually do. Map keeps that order and
// round-trips it through its JSON and YAML codecs.
//
// # Mappings
//
// Every keyed container is accepted through the Mapping interface:
//
//   - *Map keeps insertion order; setting an existing key keeps its position.
//   - Plain adapts a map[string]any; writes land in the original map and keys are
//     reported in ascending order.
//
// # Codecs
//
//	m := ordered.New()
//	m.Set("b", 1)
//	m.Set("a", 2)
//	data, _ := json.Marshal(m) // {"b":1,"a":2}
//
// ParseJSON and DecodeYAML decode whole documents into *Map and []any trees.
//
// # Equality
//
// Equal is the deep equality used by the library. It never panics on values with
// unexported fields, treats funcs as unequal unless both are nil, and compares *Map
// values without regard to key order.
package ordered
