// Package tupleclass implements a mutable, inheritable named-tuple
// value type.
//
// A [Schema] declares an ordered set of named fields, some with default
// values, and may extend another schema, appending its own fields after
// all inherited ones. A [Tuple] built from a schema behaves both as a
// fixed-length ordered sequence (positional indexing, iteration,
// element-wise equality and ordering) and as a mutable record (field
// access by name), with changes through either view visible through the
// other.
package tupleclass
