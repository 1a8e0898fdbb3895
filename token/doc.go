// Package token holds the lexical layer shared by the dom and encode
// packages: the XML Name/NCName/QName character productions, entity
// escaping for text and attribute content, and JSON string quoting.
package token
