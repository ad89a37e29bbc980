package tokenizer

// Indentation returns the number of leading whitespace bytes of line.
//
// Spaces and tabs each count as one column. Expanded-mode structure compares
// indentation of sibling lines for equality and of child lines for "deeper",
// so no tab width is needed.
func Indentation(line string) int {
	i := 0
	for i < len(line) && IsWhitespace(line[i]) {
		i++
	}
	return i
}

// ItemMarkerIndex returns the index of the expanded sequence marker that starts
// line, or NotFound if line is not an item line.
//
// The marker must be the first non-whitespace byte and be followed by
// whitespace or the end of the line, so "-1" is not an item.
//
// Example:
//
//	ItemMarkerIndex("  - apple") // 2
//	ItemMarkerIndex("-")         // 0
//	ItemMarkerIndex("-1")        // NotFound
func ItemMarkerIndex(line string) int {
	i := Indentation(line)
	if i >= len(line) || line[i] != ItemMarker {
		return NotFound
	}
	if i+1 < len(line) && !IsWhitespace(line[i+1]) {
		return NotFound
	}
	return i
}

// IsItemLine reports whether line introduces an expanded sequence item.
func IsItemLine(line string) bool {
	return ItemMarkerIndex(line) != NotFound
}

// IsKeyLine reports whether line introduces an expanded mapping entry.
func IsKeyLine(line string) bool {
	return FindKeySeparator(line) != NotFound
}
