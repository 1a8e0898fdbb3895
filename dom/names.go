package dom

import (
	"fmt"
	"strings"

	"github.com/domfmt/go-xmldoc/token"
)

const (
	// XMLNamespace is the fixed namespace bound to the xml prefix.
	XMLNamespace = "http://www.w3.org/XML/1998/namespace"
	// XMLNSNamespace is the fixed namespace of namespace declarations.
	XMLNSNamespace = "http://www.w3.org/2000/xmlns/"
)

// Name is a namespace-qualified name. An empty Namespace or Prefix
// means none.
type Name struct {
	Namespace string
	Prefix    string
	Local     string
}

func (n Name) String() string {
	if n.Prefix == "" {
		return n.Local
	}
	return n.Prefix + ":" + n.Local
}

// ValidateQName checks qualifiedName against the XML Name production
// and the Namespaces in XML QName production.
func ValidateQName(qualifiedName string) error {
	if !token.IsName(qualifiedName) {
		return fmt.Errorf("%w: %q is not a valid XML name", ErrInvalidCharacter, qualifiedName)
	}
	if !token.IsQName(qualifiedName) {
		return fmt.Errorf("%w: %q is not a valid qualified name", ErrInvalidCharacter, qualifiedName)
	}
	return nil
}

// ExtractNames validates qualifiedName and splits it into prefix and
// local parts, enforcing the fixed xml/xmlns bindings. An empty
// namespace means no namespace.
func ExtractNames(namespace, qualifiedName string) (Name, error) {
	if err := ValidateQName(qualifiedName); err != nil {
		return Name{}, err
	}
	name := Name{Namespace: namespace, Local: qualifiedName}
	if i := strings.IndexByte(qualifiedName, ':'); i >= 0 {
		name.Prefix = qualifiedName[:i]
		name.Local = qualifiedName[i+1:]
	}
	if name.Prefix != "" && namespace == "" {
		return Name{}, fmt.Errorf("%w: prefix %q requires a namespace", ErrNamespace, name.Prefix)
	}
	if name.Prefix == "xml" && namespace != XMLNamespace {
		return Name{}, fmt.Errorf("%w: xml prefix requires the namespace %s", ErrNamespace, XMLNamespace)
	}
	isXMLNSName := name.Prefix == "xmlns" || qualifiedName == "xmlns"
	if isXMLNSName && namespace != XMLNSNamespace {
		return Name{}, fmt.Errorf("%w: %q requires the namespace %s", ErrNamespace, qualifiedName, XMLNSNamespace)
	}
	if namespace == XMLNSNamespace && !isXMLNSName {
		return Name{}, fmt.Errorf("%w: the namespace %s requires the name xmlns or an xmlns prefix", ErrNamespace, XMLNSNamespace)
	}
	return name, nil
}

// MustExtractNames is ExtractNames for names known to be valid.
func MustExtractNames(namespace, qualifiedName string) Name {
	name, err := ExtractNames(namespace, qualifiedName)
	if err != nil {
		panic(err)
	}
	return name
}
