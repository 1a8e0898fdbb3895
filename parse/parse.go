// Package parse provides value parsing support.
package parse

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/domfmt/go-xmldoc/debug"
	"github.com/domfmt/go-xmldoc/format"
	"github.com/domfmt/go-xmldoc/ir"
)

var ErrParse = errors.New("parse error")

// Parse decodes JSON or YAML text into an ordered value. Object
// member order is preserved. JSON is accepted by the YAML decoder, so
// the format option only matters to callers who want a strict suffix
// or error message.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if debug.Parse() {
		fmt.Fprintf(os.Stderr, "parse: %s, %d bytes\n", pOpts.format, len(d))
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrParse, pOpts.format, err)
	}
	return fromGo(v)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// fromGo lifts a decoded value into the ordered node form. All
// scalars become strings; the document model has no typed leaves.
func fromGo(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case string:
		return ir.FromString(t), nil
	case bool:
		return ir.FromString(strconv.FormatBool(t)), nil
	case int:
		return ir.FromString(strconv.Itoa(t)), nil
	case int64:
		return ir.FromString(strconv.FormatInt(t, 10)), nil
	case uint64:
		return ir.FromString(strconv.FormatUint(t, 10)), nil
	case float64:
		return ir.FromString(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case []any:
		res := &ir.Node{Type: ir.ArrayType}
		for _, e := range t {
			ev, err := fromGo(e)
			if err != nil {
				return nil, err
			}
			res.Append(nil, ev)
		}
		return res, nil
	case yaml.MapSlice:
		res := ir.FromKeyVals(nil)
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprintf("%v", item.Key)
			}
			ev, err := fromGo(item.Value)
			if err != nil {
				return nil, err
			}
			res.Append(ir.FromString(key), ev)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: unsupported value %T", ErrParse, v)
	}
}
