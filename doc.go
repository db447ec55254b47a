// Package jsonflow implements a high-throughput JSON transformation engine:
// key-path flattening, path-with-type extraction, Draft-07 schema inference
// with cross-document merging, value filtering, and regex-based key/value
// rewriting, composed through a fluent pipeline with optional multi-threaded
// fan-out for batch inputs.
package jsonflow
