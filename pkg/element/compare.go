package element

import (
	"fmt"
	"strconv"
)

// Equal reports whether a and b are structurally equal.
// Mapping entries compare in order, so {"a","b"} and {"b","a"} differ.
func Equal(a, b Element) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch x := a.(type) {
	case Scalar:
		return x.Text() == b.(Scalar).Text()
	case Empty:
		return true
	case *Sequence:
		y := b.(*Sequence)
		if x.Len() != y.Len() {
			return false
		}
		for i := range x.items {
			if !Equal(x.items[i], y.items[i]) {
				return false
			}
		}
		return true
	case *Mapping:
		y := b.(*Mapping)
		if x.Len() != y.Len() {
			return false
		}
		for i := range x.entries {
			if x.entries[i].Key.Text() != y.entries[i].Key.Text() {
				return false
			}
			if !Equal(x.entries[i].Value, y.entries[i].Value) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("element: unhandled element type %T", a))
	}
}

// Find walks path from root and returns the element it names.
// Mapping steps are keys; sequence steps are decimal indexes.
//
// Example:
//
//	// server:
//	//   ports:
//	//     - "80"
//	//     - "443"
//	port, ok := element.Find(root, "server", "ports", "1") // "443", true
func Find(root Element, path ...string) (Element, bool) {
	current := root
	for _, step := range path {
		switch node := current.(type) {
		case *Mapping:
			next, ok := node.Get(step)
			if !ok {
				return nil, false
			}
			current = next
		case *Sequence:
			i, err := strconv.Atoi(step)
			if err != nil || i < 0 || i >= node.Len() {
				return nil, false
			}
			current = node.At(i)
		case Scalar, Empty:
			return nil, false
		default:
			panic(fmt.Sprintf("element: unhandled element type %T", current))
		}
	}
	return current, current != nil
}
