package libdiff

import (
	"strings"

	"github.com/domfmt/go-xmldoc/ir"
	"github.com/domfmt/go-xmldoc/token"
)

// DiffFunc computes the diff of two values, nil meaning no change.
type DiffFunc func(from, to *ir.Node) *ir.Node

const (
	DeleteField = "-"
	InsertField = "+"
)

// Diff computes a structural diff of two ordered values. Changed
// leaves become objects holding the old value under "-" and the new
// one under "+"; unchanged subtrees are elided. A nil result means
// the values are equal.
func Diff(from, to *ir.Node) *ir.Node {
	switch {
	case from == nil && to == nil:
		return nil
	case from == nil || to == nil:
		return MakeDiff(from, to)
	}
	if from.Type != to.Type {
		return MakeDiff(from, to)
	}
	switch from.Type {
	case ir.NullType:
		return nil
	case ir.StringType:
		if from.String == to.String {
			return nil
		}
		return MakeDiff(from, to)
	case ir.ArrayType:
		return DiffArray(from, to, Diff)
	case ir.ObjectType:
		return DiffObject(from, to, Diff)
	default:
		return nil
	}
}

func MakeDiff(from, to *ir.Node) *ir.Node {
	res := ir.FromKeyVals(nil)
	if from != nil {
		res.Append(ir.FromString(DeleteField), from.Clone())
	}
	if to != nil {
		res.Append(ir.FromString(InsertField), to.Clone())
	}
	return res
}

// canon renders a value as a canonical one-line key so array elements
// can be aligned by content.
func canon(n *ir.Node) string {
	switch n.Type {
	case ir.NullType:
		return "null"
	case ir.StringType:
		return token.Quote(n.String)
	case ir.ArrayType:
		parts := make([]string, len(n.Values))
		for i, v := range n.Values {
			parts[i] = canon(v)
		}
		return "[" + strings.Join(parts, ",") + "]"
	case ir.ObjectType:
		parts := make([]string, len(n.Fields))
		for i, f := range n.Fields {
			parts[i] = token.Quote(f.String) + ":" + canon(n.Values[i])
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return ""
	}
}
