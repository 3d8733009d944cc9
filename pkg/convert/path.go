package convert

import "strconv"

// Path is a dotted, indexed location in a document, built up during decode.
// The zero value addresses the document root.
type Path string

// Field returns the path extended with a field key.
func (p Path) Field(name string) Path {
	if p == "" {
		return Path(name)
	}
	return p + "." + Path(name)
}

// Index returns the path extended with a list index.
func (p Path) Index(i int) Path {
	return p + Path("["+strconv.Itoa(i)+"]")
}

// String renders the path, using "$" for the document root.
func (p Path) String() string {
	if p == "" {
		return "$"
	}
	return string(p)
}
