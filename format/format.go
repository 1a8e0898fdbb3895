package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	XMLFormat Format = iota
	MapFormat
	ObjectFormat
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"x":      XMLFormat,
		"xml":    XMLFormat,
		"m":      MapFormat,
		"map":    MapFormat,
		"o":      ObjectFormat,
		"object": ObjectFormat,
		"j":      JSONFormat,
		"json":   JSONFormat,
		"y":      YAMLFormat,
		"yaml":   YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case XMLFormat:
		return []byte("xml"), nil
	case MapFormat:
		return []byte("map"), nil
	case ObjectFormat:
		return []byte("object"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsXML() bool    { return f == XMLFormat }
func (f Format) IsMap() bool    { return f == MapFormat }
func (f Format) IsObject() bool { return f == ObjectFormat }
func (f Format) IsJSON() bool   { return f == JSONFormat }
func (f Format) IsYAML() bool   { return f == YAMLFormat }

// IsText reports whether the format serializes to a text string rather
// than an in-memory container.
func (f Format) IsText() bool {
	switch f {
	case XMLFormat, JSONFormat, YAMLFormat:
		return true
	default:
		return false
	}
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case XMLFormat:
		return ".xml"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{XMLFormat, MapFormat, ObjectFormat, JSONFormat, YAMLFormat}
}
