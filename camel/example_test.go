package camel_test

import (
	"errors"
	"fmt"

	"github.com/erraggy/keycase/camel"
	"github.com/erraggy/keycase/keyerrors"
)

func ExampleToCamelKeys() {
	in := camel.MappingOf(
		camel.Entry{Key: camel.TextKey("data"), Value: camel.MappingOf(
			camel.Entry{Key: camel.TextKey("id_value"), Value: camel.Sequence{
				camel.MappingOf(camel.Entry{Key: camel.TextKey("created_at"), Value: camel.Scalar{V: "x"}}),
			}},
		)},
	)

	out, err := camel.ToCamelKeys(in, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(camel.ToAny(out))
	// Output: map[Data:map[IdValue:[map[CreatedAt:x]]]]
}

func ExampleToCamelbackKeys() {
	in := camel.MappingOf(
		camel.Entry{Key: camel.TextKey("widget_id"), Value: camel.Scalar{V: 5}},
	)

	out, _ := camel.ToCamelbackKeys(in, camel.Acronyms{"id": "ID"})
	fmt.Println(camel.ToAny(out))
	// Output: map[widgetID:5]
}

func ExampleCamelize() {
	fmt.Println(camel.Camelize("namespace/sub_key", nil))
	fmt.Println(camel.Camelback("created_at", nil))
	fmt.Println(camel.Camelize("http_url", camel.Acronyms{"http": "HTTP", "url": "URL"}))
	// Output:
	// Namespace::SubKey
	// createdAt
	// HTTPURL
}

func ExampleConverter_ConvertAny() {
	c := camel.New()
	out, _ := c.ConvertAny([]any{
		map[string]any{"a_b": 1},
		map[string]any{"c_d": 2},
	}, camel.ModeCamelBack)
	fmt.Println(out)
	// Output: [map[aB:1] map[cD:2]]
}

func ExampleConverter_Convert_depthLimit() {
	c := &camel.Converter{MaxDepth: 1}
	_, err := c.Convert(camel.Sequence{camel.Sequence{}}, camel.ModeCamelCase)
	fmt.Println(errors.Is(err, keyerrors.ErrResourceLimit))
	// Output: true
}
