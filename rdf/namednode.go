package rdf

import (
	"strings"

	"github.com/geoknoesis/rdfmodel/nquads"
)

// NamedNode is an RDF node identified by an IRI.
//
// The IRI is not validated; callers are expected to pass IRIs that are
// already well formed.
type NamedNode struct {
	iri string
}

// NewNamedNode creates a named node from an IRI.
func NewNamedNode(iri string) NamedNode {
	return NamedNode{iri: iri}
}

// Value returns the IRI of the node.
func (n NamedNode) Value() string { return n.iri }

// AsRef returns a borrowed view of the node without allocating.
func (n NamedNode) AsRef() NamedNodeRef { return NamedNodeRef{iri: n.iri} }

// String returns the node in N-Triples syntax.
func (n NamedNode) String() string { return n.AsRef().String() }

// ToNamedNode implements PredicateValue.
func (n NamedNode) ToNamedNode() NamedNode { return n }

// ToNamedNodeRef implements PredicateRefValue.
func (n NamedNode) ToNamedNodeRef() NamedNodeRef { return n.AsRef() }

// ToNamedOrBlankNode implements SubjectValue.
func (n NamedNode) ToNamedOrBlankNode() NamedOrBlankNode {
	return NamedOrBlankNode{kind: TermNamedNode, named: n}
}

// ToNamedOrBlankNodeRef implements SubjectRefValue.
func (n NamedNode) ToNamedOrBlankNodeRef() NamedOrBlankNodeRef {
	return NamedOrBlankNodeRef{kind: TermNamedNode, named: n.AsRef()}
}

// ToTerm implements ObjectValue.
func (n NamedNode) ToTerm() Term {
	return Term{kind: TermNamedNode, named: n}
}

// ToTermRef implements ObjectRefValue.
func (n NamedNode) ToTermRef() TermRef {
	return TermRef{kind: TermNamedNode, named: n.AsRef()}
}

// ToGraphName implements GraphNameValue.
func (n NamedNode) ToGraphName() GraphName {
	return GraphName{kind: graphNameNamedNode, named: n}
}

// ToGraphNameRef implements GraphNameRefValue.
func (n NamedNode) ToGraphNameRef() GraphNameRef {
	return GraphNameRef{kind: graphNameNamedNode, named: n.AsRef()}
}

// NamedNodeRef is a borrowed view of a NamedNode. Its IRI string may alias
// memory owned elsewhere; the view must not be retained beyond the life of
// that memory. IntoOwned detaches it.
type NamedNodeRef struct {
	iri string
}

// NewNamedNodeRef creates a named node view over an IRI held elsewhere.
func NewNamedNodeRef(iri string) NamedNodeRef {
	return NamedNodeRef{iri: iri}
}

// Value returns the IRI of the node.
func (n NamedNodeRef) Value() string { return n.iri }

// IntoOwned copies the view into an independent owned node.
func (n NamedNodeRef) IntoOwned() NamedNode {
	return NamedNode{iri: strings.Clone(n.iri)}
}

// ToNQuads converts the view into its interchange representation.
func (n NamedNodeRef) ToNQuads() nquads.IRI { return nquads.IRI{Value: n.iri} }

// String returns the node in N-Triples syntax.
func (n NamedNodeRef) String() string { return n.ToNQuads().String() }

// ToNamedNode implements PredicateValue.
func (n NamedNodeRef) ToNamedNode() NamedNode { return n.IntoOwned() }

// ToNamedNodeRef implements PredicateRefValue.
func (n NamedNodeRef) ToNamedNodeRef() NamedNodeRef { return n }

// ToNamedOrBlankNode implements SubjectValue.
func (n NamedNodeRef) ToNamedOrBlankNode() NamedOrBlankNode {
	return n.IntoOwned().ToNamedOrBlankNode()
}

// ToNamedOrBlankNodeRef implements SubjectRefValue.
func (n NamedNodeRef) ToNamedOrBlankNodeRef() NamedOrBlankNodeRef {
	return NamedOrBlankNodeRef{kind: TermNamedNode, named: n}
}

// ToTerm implements ObjectValue.
func (n NamedNodeRef) ToTerm() Term { return n.IntoOwned().ToTerm() }

// ToTermRef implements ObjectRefValue.
func (n NamedNodeRef) ToTermRef() TermRef {
	return TermRef{kind: TermNamedNode, named: n}
}

// ToGraphName implements GraphNameValue.
func (n NamedNodeRef) ToGraphName() GraphName { return n.IntoOwned().ToGraphName() }

// ToGraphNameRef implements GraphNameRefValue.
func (n NamedNodeRef) ToGraphNameRef() GraphNameRef {
	return GraphNameRef{kind: graphNameNamedNode, named: n}
}

// PredicateValue is satisfied by every value usable as a statement predicate:
// a NamedNode or a NamedNodeRef.
type PredicateValue interface {
	ToNamedNode() NamedNode
}

// PredicateRefValue is the borrowed counterpart of PredicateValue.
type PredicateRefValue interface {
	ToNamedNodeRef() NamedNodeRef
}
