package rdf

import "github.com/geoknoesis/rdfmodel/nquads"

type graphNameKind uint8

const (
	graphNameDefault graphNameKind = iota
	graphNameNamedNode
	graphNameBlankNode
)

// GraphName is the closed union of a named node, a blank node and the
// default graph: the partition of a dataset a statement belongs to. The zero
// value is the default graph.
type GraphName struct {
	kind  graphNameKind
	named NamedNode
	blank BlankNode
}

// DefaultGraph returns the graph name of the default graph.
func DefaultGraph() GraphName { return GraphName{} }

// GraphNameFromNode converts an optional node into a graph name. A nil node
// means the default graph. It is the exact inverse of Node.
func GraphNameFromNode(node *NamedOrBlankNode) GraphName {
	if node == nil {
		return GraphName{}
	}
	return node.ToGraphName()
}

// Node returns the node naming the graph, or nil for the default graph. It
// is the exact inverse of GraphNameFromNode.
func (g GraphName) Node() *NamedOrBlankNode {
	var node NamedOrBlankNode
	switch g.kind {
	case graphNameNamedNode:
		node = g.named.ToNamedOrBlankNode()
	case graphNameBlankNode:
		node = g.blank.ToNamedOrBlankNode()
	default:
		return nil
	}
	return &node
}

// IsNamedNode reports whether the graph name is a named node.
func (g GraphName) IsNamedNode() bool { return g.kind == graphNameNamedNode }

// IsBlankNode reports whether the graph name is a blank node.
func (g GraphName) IsBlankNode() bool { return g.kind == graphNameBlankNode }

// IsDefaultGraph reports whether the graph name is the default graph.
func (g GraphName) IsDefaultGraph() bool { return g.kind == graphNameDefault }

// NamedNode returns the named node held by the graph name, if any.
func (g GraphName) NamedNode() (NamedNode, bool) {
	return g.named, g.kind == graphNameNamedNode
}

// BlankNode returns the blank node held by the graph name, if any.
func (g GraphName) BlankNode() (BlankNode, bool) {
	return g.blank, g.kind == graphNameBlankNode
}

// AsRef returns a borrowed view of the graph name without allocating.
func (g GraphName) AsRef() GraphNameRef {
	switch g.kind {
	case graphNameNamedNode:
		return GraphNameRef{kind: graphNameNamedNode, named: g.named.AsRef()}
	case graphNameBlankNode:
		return GraphNameRef{kind: graphNameBlankNode, blank: g.blank.AsRef()}
	default:
		return GraphNameRef{}
	}
}

// String returns the graph name in N-Triples syntax. The default graph
// renders as the bare token "DEFAULT"; that form is a debugging convenience,
// not valid syntax in any RDF serialization.
func (g GraphName) String() string { return g.AsRef().String() }

// ToGraphName implements GraphNameValue.
func (g GraphName) ToGraphName() GraphName { return g }

// ToGraphNameRef implements GraphNameRefValue.
func (g GraphName) ToGraphNameRef() GraphNameRef { return g.AsRef() }

// GraphNameRef is a borrowed view of a GraphName. It must not be retained
// beyond the life of the memory its strings alias. The zero value is the
// default graph.
type GraphNameRef struct {
	kind  graphNameKind
	named NamedNodeRef
	blank BlankNodeRef
}

// DefaultGraphRef returns the borrowed graph name of the default graph.
func DefaultGraphRef() GraphNameRef { return GraphNameRef{} }

// GraphNameRefFromNode converts an optional node view into a graph name
// view. A nil node means the default graph. It is the exact inverse of Node.
func GraphNameRefFromNode(node *NamedOrBlankNodeRef) GraphNameRef {
	if node == nil {
		return GraphNameRef{}
	}
	return node.ToGraphNameRef()
}

// Node returns the node view naming the graph, or nil for the default graph.
// It is the exact inverse of GraphNameRefFromNode.
func (g GraphNameRef) Node() *NamedOrBlankNodeRef {
	var node NamedOrBlankNodeRef
	switch g.kind {
	case graphNameNamedNode:
		node = g.named.ToNamedOrBlankNodeRef()
	case graphNameBlankNode:
		node = g.blank.ToNamedOrBlankNodeRef()
	default:
		return nil
	}
	return &node
}

// IsNamedNode reports whether the graph name is a named node.
func (g GraphNameRef) IsNamedNode() bool { return g.kind == graphNameNamedNode }

// IsBlankNode reports whether the graph name is a blank node.
func (g GraphNameRef) IsBlankNode() bool { return g.kind == graphNameBlankNode }

// IsDefaultGraph reports whether the graph name is the default graph.
func (g GraphNameRef) IsDefaultGraph() bool { return g.kind == graphNameDefault }

// NamedNode returns the named node view held by the graph name, if any.
func (g GraphNameRef) NamedNode() (NamedNodeRef, bool) {
	return g.named, g.kind == graphNameNamedNode
}

// BlankNode returns the blank node view held by the graph name, if any.
func (g GraphNameRef) BlankNode() (BlankNodeRef, bool) {
	return g.blank, g.kind == graphNameBlankNode
}

// IntoOwned copies the view into an independent owned graph name.
func (g GraphNameRef) IntoOwned() GraphName {
	switch g.kind {
	case graphNameNamedNode:
		return g.named.IntoOwned().ToGraphName()
	case graphNameBlankNode:
		return g.blank.IntoOwned().ToGraphName()
	default:
		return GraphName{}
	}
}

// ToNQuads converts the view into its interchange representation: the graph
// node, or nil for the default graph.
func (g GraphNameRef) ToNQuads() nquads.Term {
	switch g.kind {
	case graphNameNamedNode:
		return g.named.ToNQuads()
	case graphNameBlankNode:
		return g.blank.ToNQuads()
	default:
		return nil
	}
}

// String returns the graph name in N-Triples syntax, or the bare token
// "DEFAULT" for the default graph.
func (g GraphNameRef) String() string {
	term := g.ToNQuads()
	if term == nil {
		return "DEFAULT"
	}
	return term.String()
}

// ToGraphName implements GraphNameValue.
func (g GraphNameRef) ToGraphName() GraphName { return g.IntoOwned() }

// ToGraphNameRef implements GraphNameRefValue.
func (g GraphNameRef) ToGraphNameRef() GraphNameRef { return g }

// GraphNameValue is satisfied by every value usable as a graph name: named
// and blank nodes, the NamedOrBlankNode union, GraphName itself, and the
// views of all of them. Literals and terms do not satisfy it.
type GraphNameValue interface {
	ToGraphName() GraphName
}

// GraphNameRefValue is the borrowed counterpart of GraphNameValue.
type GraphNameRefValue interface {
	ToGraphNameRef() GraphNameRef
}
