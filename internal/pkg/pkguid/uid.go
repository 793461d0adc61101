package pkguid

// StringID generates unique string identifiers.
type StringID interface {
	// Generate generates a unique identifier as a string.
	Generate() string
}

// NumberID generates unique numeric identifiers.
type NumberID interface {
	// Generate generates a unique identifier as an int64 number.
	Generate() int64
}

// StringIDFunc adapts a plain function to StringID.
type StringIDFunc func() string

func (f StringIDFunc) Generate() string { return f() }

// NumberIDFunc adapts a plain function to NumberID.
type NumberIDFunc func() int64

func (f NumberIDFunc) Generate() int64 { return f() }
