package dom

import "errors"

var (
	// ErrInvalidCharacter reports a name that fails the XML Name or
	// QName productions.
	ErrInvalidCharacter = errors.New("invalid character error")

	// ErrNamespace reports a namespace/prefix pairing that violates
	// the Namespaces in XML rules.
	ErrNamespace = errors.New("namespace error")

	// ErrHierarchy reports a tree mutation that would break the
	// single-parent invariant.
	ErrHierarchy = errors.New("hierarchy error")

	// ErrConvert reports an ordered value that cannot be shaped into
	// a document tree.
	ErrConvert = errors.New("convert error")
)
