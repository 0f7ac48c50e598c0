package rdf

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"

	"github.com/geoknoesis/rdfmodel/nquads"
)

// BlankNode is an RDF blank node, identified only within the scope of the
// document or store it appears in.
//
// The identifier is stored without the "_:" prefix and is not validated.
type BlankNode struct {
	id string
}

// NewBlankNode creates a blank node with the given identifier.
func NewBlankNode(id string) BlankNode {
	return BlankNode{id: id}
}

// NewUniqueBlankNode creates a blank node with a fresh random 128-bit
// identifier, rendered as 32 hexadecimal digits.
func NewUniqueBlankNode() BlankNode {
	id := uuid.New()
	return BlankNode{id: hex.EncodeToString(id[:])}
}

// Value returns the blank node identifier, without the "_:" prefix.
func (b BlankNode) Value() string { return b.id }

// AsRef returns a borrowed view of the node without allocating.
func (b BlankNode) AsRef() BlankNodeRef { return BlankNodeRef{id: b.id} }

// String returns the node in N-Triples syntax.
func (b BlankNode) String() string { return b.AsRef().String() }

// ToNamedOrBlankNode implements SubjectValue.
func (b BlankNode) ToNamedOrBlankNode() NamedOrBlankNode {
	return NamedOrBlankNode{kind: TermBlankNode, blank: b}
}

// ToNamedOrBlankNodeRef implements SubjectRefValue.
func (b BlankNode) ToNamedOrBlankNodeRef() NamedOrBlankNodeRef {
	return NamedOrBlankNodeRef{kind: TermBlankNode, blank: b.AsRef()}
}

// ToTerm implements ObjectValue.
func (b BlankNode) ToTerm() Term {
	return Term{kind: TermBlankNode, blank: b}
}

// ToTermRef implements ObjectRefValue.
func (b BlankNode) ToTermRef() TermRef {
	return TermRef{kind: TermBlankNode, blank: b.AsRef()}
}

// ToGraphName implements GraphNameValue.
func (b BlankNode) ToGraphName() GraphName {
	return GraphName{kind: graphNameBlankNode, blank: b}
}

// ToGraphNameRef implements GraphNameRefValue.
func (b BlankNode) ToGraphNameRef() GraphNameRef {
	return GraphNameRef{kind: graphNameBlankNode, blank: b.AsRef()}
}

// BlankNodeRef is a borrowed view of a BlankNode. Its identifier string may
// alias memory owned elsewhere; the view must not be retained beyond the life
// of that memory. IntoOwned detaches it.
type BlankNodeRef struct {
	id string
}

// NewBlankNodeRef creates a blank node view over an identifier held
// elsewhere.
func NewBlankNodeRef(id string) BlankNodeRef {
	return BlankNodeRef{id: id}
}

// Value returns the blank node identifier, without the "_:" prefix.
func (b BlankNodeRef) Value() string { return b.id }

// IntoOwned copies the view into an independent owned node.
func (b BlankNodeRef) IntoOwned() BlankNode {
	return BlankNode{id: strings.Clone(b.id)}
}

// ToNQuads converts the view into its interchange representation.
func (b BlankNodeRef) ToNQuads() nquads.BlankNode { return nquads.BlankNode{ID: b.id} }

// String returns the node in N-Triples syntax.
func (b BlankNodeRef) String() string { return b.ToNQuads().String() }

// ToNamedOrBlankNode implements SubjectValue.
func (b BlankNodeRef) ToNamedOrBlankNode() NamedOrBlankNode {
	return b.IntoOwned().ToNamedOrBlankNode()
}

// ToNamedOrBlankNodeRef implements SubjectRefValue.
func (b BlankNodeRef) ToNamedOrBlankNodeRef() NamedOrBlankNodeRef {
	return NamedOrBlankNodeRef{kind: TermBlankNode, blank: b}
}

// ToTerm implements ObjectValue.
func (b BlankNodeRef) ToTerm() Term { return b.IntoOwned().ToTerm() }

// ToTermRef implements ObjectRefValue.
func (b BlankNodeRef) ToTermRef() TermRef {
	return TermRef{kind: TermBlankNode, blank: b}
}

// ToGraphName implements GraphNameValue.
func (b BlankNodeRef) ToGraphName() GraphName { return b.IntoOwned().ToGraphName() }

// ToGraphNameRef implements GraphNameRefValue.
func (b BlankNodeRef) ToGraphNameRef() GraphNameRef {
	return GraphNameRef{kind: graphNameBlankNode, blank: b}
}
