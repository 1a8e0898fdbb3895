package ir

import (
	"maps"
	"slices"
)

// Node is a serialized document value: a string scalar, an array, or
// an object whose Fields/Values slices form an insertion-ordered map.
// Field order reproduces document order and is semantically
// significant; callers who do not need order can flatten with ToGo.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String string
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.String = y.String
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}
	return dst
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func Null() *Node {
	return &Node{Type: NullType}
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{}
	return FromKeyValsAt(res, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = ObjectType
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if kv.Key.Type == StringType {
			kv.Key.ParentField = kv.Key.String
			kv.Val.ParentField = kv.Key.ParentField
		}
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Key.Parent = res
		kv.Key.ParentIndex = i
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// FromMap builds an object from an unordered map, with keys sorted for
// determinism. Use FromKeyVals when insertion order matters.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{}
	res.Type = ObjectType
	res.Fields = make([]*Node, len(yMap))
	res.Values = make([]*Node, len(yMap))
	keys := slices.Sorted(maps.Keys(yMap))
	for i, key := range keys {
		y := yMap[key]
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = key
		yField := &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: key,
			Type:        StringType,
			String:      key,
		}
		res.Fields[i] = yField
		res.Values[i] = y
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

// Append adds a value to an array or an entry to an object, keeping
// the back references consistent.
func (y *Node) Append(field *Node, val *Node) {
	i := len(y.Values)
	val.Parent = y
	val.ParentIndex = i
	if field != nil {
		field.Parent = y
		field.ParentIndex = i
		if field.Type == StringType {
			field.ParentField = field.String
			val.ParentField = field.String
		}
		y.Fields = append(y.Fields, field)
	}
	y.Values = append(y.Values, val)
}

func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// ScalarCount is the number of scalar descendants of y, counting y
// itself when it is a scalar. Composite nodes contribute only the sum
// over their children. A subtree with ScalarCount <= 1 is a leaf in
// the compact-rendering sense.
func (y *Node) ScalarCount() int {
	if y.Type.IsLeaf() {
		return 1
	}
	n := 0
	for _, yy := range y.Values {
		n += yy.ScalarCount()
	}
	return n
}

// ToGo flattens y into plain Go containers: map[string]any for
// objects, []any for arrays, string for scalars, nil for null. The
// map form does not preserve field order.
func (y *Node) ToGo() any {
	switch y.Type {
	case NullType:
		return nil
	case StringType:
		return y.String
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, yy := range y.Values {
			res[i] = yy.ToGo()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, yf := range y.Fields {
			res[yf.String] = y.Values[i].ToGo()
		}
		return res
	default:
		return nil
	}
}
