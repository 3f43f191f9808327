package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/erraggy/keycase/camel"
	"go.yaml.in/yaml/v4"
)

// Encode serializes v in the given format. Mapping keys are written in
// insertion order. JSON output is indented with two spaces.
func Encode(v camel.Value, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		if err := writeJSON(&buf, v); err != nil {
			return nil, err
		}
		var out bytes.Buffer
		if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
			return nil, fmt.Errorf("codec: indenting json: %w", err)
		}
		out.WriteByte('\n')
		return out.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(toNode(v))
		if err != nil {
			return nil, fmt.Errorf("codec: marshaling yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("codec: unsupported format %q", format)
	}
}

// CountKeys returns the number of mapping entries in v at every depth.
func CountKeys(v camel.Value) int {
	switch x := v.(type) {
	case camel.Sequence:
		n := 0
		for _, elem := range x {
			n += CountKeys(elem)
		}
		return n
	case *camel.Mapping:
		n := x.Len()
		for _, val := range x.All() {
			n += CountKeys(val)
		}
		return n
	default:
		return 0
	}
}

func writeJSON(buf *bytes.Buffer, v camel.Value) error {
	switch x := v.(type) {
	case nil:
		buf.WriteString("null")
	case camel.Scalar:
		return writeJSONScalar(buf, x.V)
	case camel.Sequence:
		buf.WriteByte('[')
		for i, elem := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *camel.Mapping:
		buf.WriteByte('{')
		i := 0
		for k, val := range x.All() {
			if i > 0 {
				buf.WriteByte(',')
			}
			i++
			if err := writeJSONString(buf, keyText(k)); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, val); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("codec: marshaling string: %w", err)
	}
	buf.Write(data)
	return nil
}

func writeJSONScalar(buf *bytes.Buffer, v any) error {
	n, ok := v.(*yaml.Node)
	if !ok {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("codec: marshaling scalar: %w", err)
		}
		buf.Write(data)
		return nil
	}

	switch n.ShortTag() {
	case "!!null":
		buf.WriteString("null")
		return nil
	case "!!bool":
		if b, err := strconv.ParseBool(n.Value); err == nil {
			buf.WriteString(strconv.FormatBool(b))
			return nil
		}
	case "!!int", "!!float":
		if num, ok := jsonNumber(n.Value); ok {
			buf.WriteString(num)
			return nil
		}
	}
	return writeJSONString(buf, n.Value)
}

// jsonNumber converts a YAML number to JSON, keeping the source text when it
// is already valid JSON. Infinities and NaN have no JSON form.
func jsonNumber(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	if data, err := json.Marshal(json.Number(s)); err == nil {
		return string(data), true
	}
	clean := strings.ReplaceAll(s, "_", "")
	if i, err := strconv.ParseInt(clean, 0, 64); err == nil {
		return strconv.FormatInt(i, 10), true
	}
	if u, err := strconv.ParseUint(clean, 0, 64); err == nil {
		return strconv.FormatUint(u, 10), true
	}
	if f, err := strconv.ParseFloat(clean, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64), true
	}
	return "", false
}

func keyText(k camel.Key) string {
	if s, ok := k.Text(); ok {
		return s
	}
	switch raw := k.Raw().(type) {
	case scalarKey:
		return raw.Value
	case *yaml.Node:
		return raw.Value
	default:
		return fmt.Sprint(raw)
	}
}

func toNode(v camel.Value) *yaml.Node {
	switch x := v.(type) {
	case camel.Scalar:
		return scalarNode(x.V)
	case camel.Sequence:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, elem := range x {
			n.Content = append(n.Content, toNode(elem))
		}
		return n
	case *camel.Mapping:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for k, val := range x.All() {
			n.Content = append(n.Content, keyNode(k), toNode(val))
		}
		return n
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

func keyNode(k camel.Key) *yaml.Node {
	if s, ok := k.Text(); ok {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	}
	switch raw := k.Raw().(type) {
	case scalarKey:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: raw.Tag, Value: raw.Value}
	case *yaml.Node:
		return raw
	default:
		return scalarNode(raw)
	}
}

func scalarNode(v any) *yaml.Node {
	switch x := v.(type) {
	case *yaml.Node:
		return x
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(x)}
	case int:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(x)}
	case int64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(x, 10)}
	case uint64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(x, 10)}
	case float64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(x, 'g', -1, 64)}
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: x}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: fmt.Sprint(x)}
	}
}
