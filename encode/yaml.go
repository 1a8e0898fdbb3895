package encode

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/domfmt/go-xmldoc/dom"
	"github.com/domfmt/go-xmldoc/ir"
)

// EncodeYAML writes node as YAML, going through the ordered map form
// so mapping order reproduces document order.
func EncodeYAML(node *dom.Node, w io.Writer, opts ...Option) error {
	v, err := Value(node, opts...)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(yamlValue(v))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func yamlValue(v *ir.Node) any {
	switch v.Type {
	case ir.NullType:
		return nil
	case ir.StringType:
		return v.String
	case ir.ArrayType:
		res := make([]any, len(v.Values))
		for i, vv := range v.Values {
			res[i] = yamlValue(vv)
		}
		return res
	case ir.ObjectType:
		ms := make(yaml.MapSlice, len(v.Fields))
		for i, f := range v.Fields {
			ms[i] = yaml.MapItem{Key: f.String, Value: yamlValue(v.Values[i])}
		}
		return ms
	default:
		return nil
	}
}
