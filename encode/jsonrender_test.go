package encode

import (
	"testing"

	"github.com/domfmt/go-xmldoc/dom"
)

func TestJSONCompact(t *testing.T) {
	got, err := JSONString(buildDoc())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"root":{"@id":"1","a":["x","y"]}}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONPretty(t *testing.T) {
	got, err := JSONString(buildDoc(), Pretty(true))
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  "root":{
    "@id":"1",
    "a":[
      "x",
      "y"
    ]
  }
}`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestJSONLeafCompaction(t *testing.T) {
	doc := dom.NewDocument()
	doc.Ele("a").Txt("1")
	got, err := JSONString(doc, Pretty(true))
	if err != nil {
		t.Fatal(err)
	}
	// a single scalar descendant keeps the object on one line
	want := `{ "a":"1" }`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONEmptyContainers(t *testing.T) {
	doc := dom.NewDocument()
	doc.Ele("a")
	got, err := JSONString(doc, Pretty(true))
	if err != nil {
		t.Fatal(err)
	}
	want := `{ "a":{} }`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONEscaping(t *testing.T) {
	doc := dom.NewDocument()
	doc.Ele("a").Txt("line\n\"quoted\"")
	got, err := JSONString(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a":"line\n\"quoted\""}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONNulls(t *testing.T) {
	doc := dom.NewDocument()
	e := doc.Ele("root")
	e.SetAttribute(&dom.Attr{Local: "id", Null: true})
	got, err := JSONString(doc, KeepNullAttributes(true))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"root":{"@id":null}}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONOffset(t *testing.T) {
	got, err := JSONString(buildDoc(), Pretty(true), Offset(1))
	if err != nil {
		t.Fatal(err)
	}
	want := `{
    "root":{
      "@id":"1",
      "a":[
        "x",
        "y"
      ]
    }
  }`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
