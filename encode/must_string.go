package encode

import (
	"bytes"

	"github.com/domfmt/go-xmldoc/dom"
)

// String renders node as XML text.
func String(node *dom.Node, opts ...Option) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(node *dom.Node, opts ...Option) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// JSONString renders node as JSON text.
func JSONString(node *dom.Node, opts ...Option) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := EncodeJSON(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// YAMLString renders node as YAML text.
func YAMLString(node *dom.Node, opts ...Option) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := EncodeYAML(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
