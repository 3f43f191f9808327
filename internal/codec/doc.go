// Package codec decodes JSON and YAML documents into camel values and
// encodes them back, keeping mapping keys in source order.
//
// Both formats are read through go.yaml.in/yaml/v4 nodes (JSON is valid
// YAML), so key order survives a round trip. Scalars keep their YAML node,
// which makes YAML output lossless and lets JSON output reproduce numbers
// exactly as written.
package codec
