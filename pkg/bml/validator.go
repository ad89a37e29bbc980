package bml

// Validate checks whether a BML document is syntactically valid.
//
// The document is interpreted in full, so every rule that Parse enforces is
// checked, including duplicate keys and indentation. The resulting tree is
// discarded. Returns nil if the document is valid, or the *FormatError that
// Parse would return.
//
// Example:
//
//	if err := bml.Validate("name: Alice\nname: Bob"); err != nil {
//	    fmt.Printf("Invalid BML: %v\n", err)
//	}
func Validate(input string) error {
	_, err := Parse(input)
	return err
}

// ValidateValue checks whether text is a single valid inline value.
func ValidateValue(text string) error {
	_, err := ParseValue(text)
	return err
}
