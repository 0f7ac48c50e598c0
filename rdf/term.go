package rdf

import "github.com/geoknoesis/rdfmodel/nquads"

// TermKind identifies RDF term types.
type TermKind uint8

const (
	// TermNamedNode represents a named node term.
	TermNamedNode TermKind = iota
	// TermBlankNode represents a blank node term.
	TermBlankNode
	// TermLiteral represents a literal term.
	TermLiteral
)

// Term is the closed union of a named node, a blank node and a literal: the
// shape of a statement object. The zero value is an empty named node.
type Term struct {
	kind    TermKind
	named   NamedNode
	blank   BlankNode
	literal Literal
}

// Kind returns the kind of term held by the union.
func (t Term) Kind() TermKind { return t.kind }

// IsNamedNode reports whether the term is a named node.
func (t Term) IsNamedNode() bool { return t.kind == TermNamedNode }

// IsBlankNode reports whether the term is a blank node.
func (t Term) IsBlankNode() bool { return t.kind == TermBlankNode }

// IsLiteral reports whether the term is a literal.
func (t Term) IsLiteral() bool { return t.kind == TermLiteral }

// NamedNode returns the named node held by the term, if any.
func (t Term) NamedNode() (NamedNode, bool) {
	return t.named, t.kind == TermNamedNode
}

// BlankNode returns the blank node held by the term, if any.
func (t Term) BlankNode() (BlankNode, bool) {
	return t.blank, t.kind == TermBlankNode
}

// Literal returns the literal held by the term, if any.
func (t Term) Literal() (Literal, bool) {
	return t.literal, t.kind == TermLiteral
}

// AsRef returns a borrowed view of the term without allocating.
func (t Term) AsRef() TermRef {
	switch t.kind {
	case TermBlankNode:
		return TermRef{kind: TermBlankNode, blank: t.blank.AsRef()}
	case TermLiteral:
		return TermRef{kind: TermLiteral, literal: t.literal.AsRef()}
	default:
		return TermRef{kind: TermNamedNode, named: t.named.AsRef()}
	}
}

// String returns the term in N-Triples syntax.
func (t Term) String() string { return t.AsRef().String() }

// ToTerm implements ObjectValue.
func (t Term) ToTerm() Term { return t }

// ToTermRef implements ObjectRefValue.
func (t Term) ToTermRef() TermRef { return t.AsRef() }

// TermRef is a borrowed view of a Term. It must not be retained beyond the
// life of the memory its strings alias.
type TermRef struct {
	kind    TermKind
	named   NamedNodeRef
	blank   BlankNodeRef
	literal LiteralRef
}

// Kind returns the kind of term held by the union.
func (t TermRef) Kind() TermKind { return t.kind }

// IsNamedNode reports whether the term is a named node.
func (t TermRef) IsNamedNode() bool { return t.kind == TermNamedNode }

// IsBlankNode reports whether the term is a blank node.
func (t TermRef) IsBlankNode() bool { return t.kind == TermBlankNode }

// IsLiteral reports whether the term is a literal.
func (t TermRef) IsLiteral() bool { return t.kind == TermLiteral }

// NamedNode returns the named node view held by the term, if any.
func (t TermRef) NamedNode() (NamedNodeRef, bool) {
	return t.named, t.kind == TermNamedNode
}

// BlankNode returns the blank node view held by the term, if any.
func (t TermRef) BlankNode() (BlankNodeRef, bool) {
	return t.blank, t.kind == TermBlankNode
}

// Literal returns the literal view held by the term, if any.
func (t TermRef) Literal() (LiteralRef, bool) {
	return t.literal, t.kind == TermLiteral
}

// IntoOwned copies the view into an independent owned term.
func (t TermRef) IntoOwned() Term {
	switch t.kind {
	case TermBlankNode:
		return t.blank.IntoOwned().ToTerm()
	case TermLiteral:
		return t.literal.IntoOwned().ToTerm()
	default:
		return t.named.IntoOwned().ToTerm()
	}
}

// ToNQuads converts the view into its interchange representation.
func (t TermRef) ToNQuads() nquads.Term {
	switch t.kind {
	case TermBlankNode:
		return t.blank.ToNQuads()
	case TermLiteral:
		return t.literal.ToNQuads()
	default:
		return t.named.ToNQuads()
	}
}

// String returns the term in N-Triples syntax.
func (t TermRef) String() string { return t.ToNQuads().String() }

// ToTerm implements ObjectValue.
func (t TermRef) ToTerm() Term { return t.IntoOwned() }

// ToTermRef implements ObjectRefValue.
func (t TermRef) ToTermRef() TermRef { return t }

// ObjectValue is satisfied by every value usable as a statement object: all
// three node kinds, the unions, and their views.
type ObjectValue interface {
	ToTerm() Term
}

// ObjectRefValue is the borrowed counterpart of ObjectValue.
type ObjectRefValue interface {
	ToTermRef() TermRef
}
