// Package aggregate turns the flat item stream of parsed descriptors into
// the ordered documentation model: a top-level group index and namespace
// buckets of properties keyed by the first segment of the property name.
//
// Ordering is the whole contract here. Buckets appear in the order their
// first property was encountered, properties keep descriptor order inside a
// bucket, and duplicate groups or properties from different descriptors are
// all preserved. Nothing is sorted and nothing is merged.
package aggregate
