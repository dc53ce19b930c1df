package models

import "fmt"

// Category classifies a model by its primary capability. The set is closed;
// definition documents using any other value fail to load.
type Category string

const (
	General      Category = "GENERAL"
	Code         Category = "CODE"
	Vision       Category = "VISION"
	LongContext  Category = "LONG_CONTEXT"
	Fast         Category = "FAST"
	Experimental Category = "EXPERIMENTAL"
)

// Categories lists every member of the closed enumeration, in declaration order.
func Categories() []Category {
	return []Category{General, Code, Vision, LongContext, Fast, Experimental}
}

// Valid reports whether the category is a member of the closed enumeration.
func (c Category) Valid() bool {
	switch c {
	case General, Code, Vision, LongContext, Fast, Experimental:
		return true
	default:
		return false
	}
}

// ParseCategory converts a definition-document string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown model category %q", s)
	}
	return c, nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("unknown model category %q", string(c))
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(data []byte) error {
	parsed, err := ParseCategory(string(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
