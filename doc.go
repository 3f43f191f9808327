// Package keycase converts the keys of nested structured data from
// snake_case to CamelCase or camelBack.
//
// # Overview
//
// The conversion engine lives in the camel package. It operates on in-memory
// values only: sequences, ordered mappings and opaque scalars. Mapping keys
// are rewritten, values are never inspected.
//
//   - camel: Value model, key camelizer and structural walker
//   - keyerrors: Typed errors shared by every package
//
// The keycase command wraps the engine for JSON and YAML documents and can
// also run as an MCP server over stdio.
//
// # Quick Start
//
// Convert a decoded document:
//
//	doc, err := camel.FromAny(map[string]any{
//		"user_id":   7,
//		"home_page": map[string]any{"page_url": "https://example.com"},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := camel.ToCamelKeys(doc, camel.Acronyms{"id": "ID", "url": "URL"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(camel.ToAny(out))
//	// map[HomePage:map[PageURL:https://example.com] UserID:7]
//
// Convert single keys:
//
//	camel.Camelize("namespace/sub_key", nil) // "Namespace::SubKey"
//	camel.Camelback("foo_bar", nil)          // "fooBar"
//
// # Command Line
//
//	keycase camel config.yaml
//	keycase camelback -acronym id=ID -o out.json payload.json
//	keycase key -camelback user_name
//	keycase mcp
//
// # Key Collisions
//
// Distinct input keys can map to the same output key ("foo_bar" and "FooBar").
// The later entry wins and keeps the position of the first. Collisions are
// not reported by the camel package; the command line and MCP tools report
// how many keys were overwritten.
package keycase
