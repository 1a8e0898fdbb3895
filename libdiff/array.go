package libdiff

import (
	"github.com/domfmt/go-xmldoc/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffArray aligns array elements by canonical content, then reports
// deletions, insertions and changed pairs in order.
func DiffArray(from, to *ir.Node, df DiffFunc) *ir.Node {
	keyMap := map[string]rune{}
	fromRunes := mapValuesTo(keyMap, from)
	toRunes := mapValuesTo(keyMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var items []*ir.Node
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				items = append(items, MakeDiff(from.Values[fi], nil))
				fi++
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				if fRes := df(from.Values[fi], to.Values[ti]); fRes != nil {
					items = append(items, fRes)
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				items = append(items, MakeDiff(nil, to.Values[ti]))
				ti++
			}
		}
	}
	if len(items) == 0 {
		return nil
	}
	return ir.FromSlice(items)
}

func mapValuesTo(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		k := canon(v)
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
		}
		rs[i] = r
	}
	return rs
}
