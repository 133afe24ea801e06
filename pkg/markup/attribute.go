package markup

// Attribute is a name/value pair rendered into an element's opening tag.
type Attribute struct {
	Name  string
	Value string
}

// Attr creates an attribute.
func Attr(name, value string) Attribute {
	return Attribute{Name: name, Value: value}
}

// Flag creates a valueless attribute such as disabled or checked.
func Flag(name string) Attribute {
	return Attribute{Name: name}
}

// String renders the attribute as it appears in markup: the bare name when
// the value is empty, name="value" otherwise. The value is not escaped.
func (a Attribute) String() string {
	if a.Value == "" {
		return a.Name
	}
	return a.Name + `="` + a.Value + `"`
}

// IsFlag returns true if the attribute renders without a value.
func (a Attribute) IsFlag() bool {
	return a.Value == ""
}
