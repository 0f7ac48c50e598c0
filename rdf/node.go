package rdf

import "github.com/geoknoesis/rdfmodel/nquads"

// NamedOrBlankNode is the closed union of a named node and a blank node: the
// shape of a statement subject. The zero value is an empty named node.
type NamedOrBlankNode struct {
	kind  TermKind
	named NamedNode
	blank BlankNode
}

// Kind returns the kind of node held by the union.
func (n NamedOrBlankNode) Kind() TermKind { return n.kind }

// IsNamedNode reports whether the union holds a named node.
func (n NamedOrBlankNode) IsNamedNode() bool { return n.kind == TermNamedNode }

// IsBlankNode reports whether the union holds a blank node.
func (n NamedOrBlankNode) IsBlankNode() bool { return n.kind == TermBlankNode }

// NamedNode returns the named node held by the union, if any.
func (n NamedOrBlankNode) NamedNode() (NamedNode, bool) {
	return n.named, n.kind == TermNamedNode
}

// BlankNode returns the blank node held by the union, if any.
func (n NamedOrBlankNode) BlankNode() (BlankNode, bool) {
	return n.blank, n.kind == TermBlankNode
}

// AsRef returns a borrowed view of the node without allocating.
func (n NamedOrBlankNode) AsRef() NamedOrBlankNodeRef {
	switch n.kind {
	case TermBlankNode:
		return NamedOrBlankNodeRef{kind: TermBlankNode, blank: n.blank.AsRef()}
	default:
		return NamedOrBlankNodeRef{kind: TermNamedNode, named: n.named.AsRef()}
	}
}

// String returns the node in N-Triples syntax.
func (n NamedOrBlankNode) String() string { return n.AsRef().String() }

// ToNamedOrBlankNode implements SubjectValue.
func (n NamedOrBlankNode) ToNamedOrBlankNode() NamedOrBlankNode { return n }

// ToNamedOrBlankNodeRef implements SubjectRefValue.
func (n NamedOrBlankNode) ToNamedOrBlankNodeRef() NamedOrBlankNodeRef { return n.AsRef() }

// ToTerm implements ObjectValue, widening the union into a term.
func (n NamedOrBlankNode) ToTerm() Term {
	switch n.kind {
	case TermBlankNode:
		return n.blank.ToTerm()
	default:
		return n.named.ToTerm()
	}
}

// ToTermRef implements ObjectRefValue.
func (n NamedOrBlankNode) ToTermRef() TermRef { return n.AsRef().ToTermRef() }

// ToGraphName implements GraphNameValue, widening the union into a graph
// name.
func (n NamedOrBlankNode) ToGraphName() GraphName {
	switch n.kind {
	case TermBlankNode:
		return n.blank.ToGraphName()
	default:
		return n.named.ToGraphName()
	}
}

// ToGraphNameRef implements GraphNameRefValue.
func (n NamedOrBlankNode) ToGraphNameRef() GraphNameRef { return n.AsRef().ToGraphNameRef() }

// NamedOrBlankNodeRef is a borrowed view of a NamedOrBlankNode. It must not
// be retained beyond the life of the memory its strings alias.
type NamedOrBlankNodeRef struct {
	kind  TermKind
	named NamedNodeRef
	blank BlankNodeRef
}

// Kind returns the kind of node held by the union.
func (n NamedOrBlankNodeRef) Kind() TermKind { return n.kind }

// IsNamedNode reports whether the union holds a named node.
func (n NamedOrBlankNodeRef) IsNamedNode() bool { return n.kind == TermNamedNode }

// IsBlankNode reports whether the union holds a blank node.
func (n NamedOrBlankNodeRef) IsBlankNode() bool { return n.kind == TermBlankNode }

// NamedNode returns the named node view held by the union, if any.
func (n NamedOrBlankNodeRef) NamedNode() (NamedNodeRef, bool) {
	return n.named, n.kind == TermNamedNode
}

// BlankNode returns the blank node view held by the union, if any.
func (n NamedOrBlankNodeRef) BlankNode() (BlankNodeRef, bool) {
	return n.blank, n.kind == TermBlankNode
}

// IntoOwned copies the view into an independent owned node.
func (n NamedOrBlankNodeRef) IntoOwned() NamedOrBlankNode {
	switch n.kind {
	case TermBlankNode:
		return n.blank.IntoOwned().ToNamedOrBlankNode()
	default:
		return n.named.IntoOwned().ToNamedOrBlankNode()
	}
}

// ToNQuads converts the view into its interchange representation.
func (n NamedOrBlankNodeRef) ToNQuads() nquads.Term {
	switch n.kind {
	case TermBlankNode:
		return n.blank.ToNQuads()
	default:
		return n.named.ToNQuads()
	}
}

// String returns the node in N-Triples syntax.
func (n NamedOrBlankNodeRef) String() string { return n.ToNQuads().String() }

// ToNamedOrBlankNode implements SubjectValue.
func (n NamedOrBlankNodeRef) ToNamedOrBlankNode() NamedOrBlankNode { return n.IntoOwned() }

// ToNamedOrBlankNodeRef implements SubjectRefValue.
func (n NamedOrBlankNodeRef) ToNamedOrBlankNodeRef() NamedOrBlankNodeRef { return n }

// ToTerm implements ObjectValue.
func (n NamedOrBlankNodeRef) ToTerm() Term { return n.IntoOwned().ToTerm() }

// ToTermRef implements ObjectRefValue, widening the view into a term view.
func (n NamedOrBlankNodeRef) ToTermRef() TermRef {
	switch n.kind {
	case TermBlankNode:
		return n.blank.ToTermRef()
	default:
		return n.named.ToTermRef()
	}
}

// ToGraphName implements GraphNameValue.
func (n NamedOrBlankNodeRef) ToGraphName() GraphName { return n.IntoOwned().ToGraphName() }

// ToGraphNameRef implements GraphNameRefValue, widening the view into a
// graph name view.
func (n NamedOrBlankNodeRef) ToGraphNameRef() GraphNameRef {
	switch n.kind {
	case TermBlankNode:
		return n.blank.ToGraphNameRef()
	default:
		return n.named.ToGraphNameRef()
	}
}

// SubjectValue is satisfied by every value usable as a statement subject:
// named and blank nodes, their views, and the NamedOrBlankNode union in both
// flavors. Literals and terms do not satisfy it, so a literal subject does
// not type-check.
type SubjectValue interface {
	ToNamedOrBlankNode() NamedOrBlankNode
}

// SubjectRefValue is the borrowed counterpart of SubjectValue.
type SubjectRefValue interface {
	ToNamedOrBlankNodeRef() NamedOrBlankNodeRef
}
