package codec

import (
	"strconv"

	"github.com/erraggy/keycase/camel"
	"github.com/erraggy/keycase/keyerrors"
	"go.yaml.in/yaml/v4"
)

// MaxNodes bounds how many nodes a single document may expand to,
// counting every alias expansion.
const MaxNodes = 1_000_000

// scalarKey is the key of a mapping entry whose key is a non-string scalar,
// such as 1 or true. It is comparable so such keys still deduplicate.
type scalarKey struct {
	Tag   string
	Value string
}

// Decode parses a JSON or YAML document into a camel value and reports the
// detected format. name identifies the source in errors. maxDepth bounds
// nesting; values <= 0 use camel.DefaultMaxDepth.
func Decode(name string, data []byte, maxDepth int) (camel.Value, Format, error) {
	format := DetectFormat(data)

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, format, &keyerrors.ParseError{Path: name, Message: "invalid " + string(format), Cause: err}
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, format, &keyerrors.ParseError{Path: name, Message: "empty document"}
		}
		doc = doc.Content[0]
	}
	if doc.Kind == 0 {
		return nil, format, &keyerrors.ParseError{Path: name, Message: "empty document"}
	}

	if maxDepth <= 0 {
		maxDepth = camel.DefaultMaxDepth
	}
	d := &decoder{maxDepth: maxDepth}
	v, err := d.value(doc, 0)
	if err != nil {
		return nil, format, err
	}
	return v, format, nil
}

type decoder struct {
	maxDepth int
	nodes    int
}

func (d *decoder) value(n *yaml.Node, depth int) (camel.Value, error) {
	d.nodes++
	if d.nodes > MaxNodes {
		return nil, &keyerrors.ResourceLimitError{
			ResourceType: "node_count",
			Limit:        MaxNodes,
			Message:      "document expands to too many nodes",
		}
	}

	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return camel.Scalar{}, nil
		}
		return d.value(n.Alias, depth)
	case yaml.ScalarNode:
		// Aliases may repeat a scalar; drop the anchor so it is not redefined.
		c := *n
		c.Anchor = ""
		return camel.Scalar{V: &c}, nil
	case yaml.SequenceNode:
		if err := d.checkDepth(n, depth); err != nil {
			return nil, err
		}
		seq := make(camel.Sequence, len(n.Content))
		for i, child := range n.Content {
			v, err := d.value(child, depth+1)
			if err != nil {
				return nil, err
			}
			seq[i] = v
		}
		return seq, nil
	case yaml.MappingNode:
		if err := d.checkDepth(n, depth); err != nil {
			return nil, err
		}
		m := camel.NewMapping(len(n.Content) / 2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := d.value(n.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			m.Set(decodeKey(n.Content[i]), v)
		}
		return m, nil
	default:
		return camel.Scalar{}, nil
	}
}

func (d *decoder) checkDepth(n *yaml.Node, depth int) error {
	if depth < d.maxDepth {
		return nil
	}
	return &keyerrors.ResourceLimitError{
		ResourceType: "nesting_depth",
		Limit:        int64(d.maxDepth),
		Actual:       int64(depth + 1),
		Message:      "document nested too deeply near line " + strconv.Itoa(n.Line),
	}
}

func decodeKey(n *yaml.Node) camel.Key {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return camel.OtherKey(n)
	}
	tag := n.ShortTag()
	if tag == "!!str" {
		return camel.TextKey(n.Value)
	}
	return camel.OtherKey(scalarKey{Tag: tag, Value: n.Value})
}
