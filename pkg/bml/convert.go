package bml

import (
	"fmt"
	"strconv"

	"github.com/shapestone/shape-bml/pkg/element"
	"github.com/shapestone/shape-core/pkg/ast"
)

// ToInterface converts an element tree to native Go types.
//
// Converts:
//   - element.Scalar → string
//   - element.Empty → nil
//   - *element.Sequence → []interface{}
//   - *element.Mapping → map[string]interface{}
//
// Mapping order is not kept by Go maps; walk the *element.Mapping itself when
// order matters.
//
// Example:
//
//	doc, _ := bml.Parse("name: Alice\ntags: [\"go\", \"bml\"]")
//	data := bml.ToInterface(doc)
//	// data is map[string]interface{}{"name":"Alice", "tags":[]interface{}{"go","bml"}}
func ToInterface(el element.Element) interface{} {
	switch v := el.(type) {
	case element.Scalar:
		return v.Text()

	case element.Empty:
		return nil

	case *element.Sequence:
		arr := make([]interface{}, v.Len())
		for i := range arr {
			arr[i] = ToInterface(v.At(i))
		}
		return arr

	case *element.Mapping:
		m := make(map[string]interface{}, v.Len())
		for i := 0; i < v.Len(); i++ {
			entry := v.At(i)
			m[entry.Key.Text()] = ToInterface(entry.Value)
		}
		return m

	default:
		panic(fmt.Sprintf("bml: unhandled element type %T", el))
	}
}

// ToAST converts an element tree to Shape's unified AST.
//
// Converts:
//   - element.Scalar → *ast.LiteralNode holding a string
//   - element.Empty → *ast.LiteralNode holding nil
//   - *element.Sequence → *ast.ObjectNode with numeric string keys "0", "1", "2", ...
//   - *element.Mapping → *ast.ObjectNode
//
// Nodes carry no positions since elements do not record them.
// Like ToInterface, it panics on an element type outside the four above.
func ToAST(el element.Element) ast.SchemaNode {
	pos := ast.Position{}

	switch v := el.(type) {
	case element.Scalar:
		return ast.NewLiteralNode(v.Text(), pos)

	case element.Empty:
		return ast.NewLiteralNode(nil, pos)

	case *element.Sequence:
		props := make(map[string]ast.SchemaNode, v.Len())
		for i := 0; i < v.Len(); i++ {
			props[strconv.Itoa(i)] = ToAST(v.At(i))
		}
		return ast.NewObjectNode(props, pos)

	case *element.Mapping:
		props := make(map[string]ast.SchemaNode, v.Len())
		for i := 0; i < v.Len(); i++ {
			entry := v.At(i)
			props[entry.Key.Text()] = ToAST(entry.Value)
		}
		return ast.NewObjectNode(props, pos)

	default:
		panic(fmt.Sprintf("bml: unhandled element type %T", el))
	}
}

// NodeToInterface converts an AST node produced by ToAST to native Go types.
//
// An *ast.ObjectNode whose keys are exactly "0" through "n-1" becomes a
// []interface{}; any other object becomes a map[string]interface{}.
// An empty object is indistinguishable from an empty sequence and becomes
// an empty map.
func NodeToInterface(node ast.SchemaNode) interface{} {
	switch n := node.(type) {
	case *ast.LiteralNode:
		return n.Value()

	case *ast.ObjectNode:
		props := n.Properties()

		if isSequence(props) {
			arr := make([]interface{}, len(props))
			for i := range arr {
				arr[i] = NodeToInterface(props[strconv.Itoa(i)])
			}
			return arr
		}

		m := make(map[string]interface{}, len(props))
		for key, propNode := range props {
			m[key] = NodeToInterface(propNode)
		}
		return m

	default:
		return nil
	}
}

// isSequence reports whether props are keyed "0" through len(props)-1.
func isSequence(props map[string]ast.SchemaNode) bool {
	if len(props) == 0 {
		return false
	}
	for i := 0; i < len(props); i++ {
		if _, ok := props[strconv.Itoa(i)]; !ok {
			return false
		}
	}
	return true
}
