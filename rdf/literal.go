package rdf

import (
	"strconv"
	"strings"

	"github.com/geoknoesis/rdfmodel/nquads"
)

// Literal is an RDF literal: a lexical form together with a datatype and an
// optional language tag.
//
// The datatype is always present. Plain literals carry xsd:string and
// language-tagged literals carry rdf:langString, so equal literals always
// compare equal regardless of which constructor produced them. Lexical forms
// and language tags are not validated.
type Literal struct {
	value    string
	language string
	datatype NamedNode
}

// NewLiteral creates an xsd:string literal.
func NewLiteral(value string) Literal {
	return Literal{value: value, datatype: XSDString}
}

// NewLiteralWithLanguage creates a language-tagged literal. The datatype of a
// language-tagged literal is always rdf:langString. An empty language tag
// yields a plain xsd:string literal.
func NewLiteralWithLanguage(value, language string) Literal {
	if language == "" {
		return NewLiteral(value)
	}
	return Literal{value: value, language: language, datatype: RDFLangString}
}

// NewLiteralWithDatatype creates a typed literal. A zero datatype means
// xsd:string.
func NewLiteralWithDatatype(value string, datatype NamedNode) Literal {
	if datatype == (NamedNode{}) {
		datatype = XSDString
	}
	return Literal{value: value, datatype: datatype}
}

// NewBooleanLiteral creates an xsd:boolean literal.
func NewBooleanLiteral(value bool) Literal {
	return Literal{value: strconv.FormatBool(value), datatype: XSDBoolean}
}

// NewIntegerLiteral creates an xsd:integer literal.
func NewIntegerLiteral(value int64) Literal {
	return Literal{value: strconv.FormatInt(value, 10), datatype: XSDInteger}
}

// NewDoubleLiteral creates an xsd:double literal.
func NewDoubleLiteral(value float64) Literal {
	return Literal{value: strconv.FormatFloat(value, 'g', -1, 64), datatype: XSDDouble}
}

// Value returns the lexical form of the literal.
func (l Literal) Value() string { return l.value }

// Language returns the language tag, or "" for literals that are not
// language tagged.
func (l Literal) Language() string { return l.language }

// Datatype returns the datatype of the literal. Plain literals report
// xsd:string and language-tagged literals report rdf:langString.
func (l Literal) Datatype() NamedNode { return l.datatype }

// IsLanguageTagged reports whether the literal carries a language tag.
func (l Literal) IsLanguageTagged() bool { return l.language != "" }

// AsRef returns a borrowed view of the literal without allocating.
func (l Literal) AsRef() LiteralRef {
	return LiteralRef{value: l.value, language: l.language, datatype: l.datatype.AsRef()}
}

// String returns the literal in N-Triples syntax.
func (l Literal) String() string { return l.AsRef().String() }

// ToTerm implements ObjectValue.
func (l Literal) ToTerm() Term {
	return Term{kind: TermLiteral, literal: l}
}

// ToTermRef implements ObjectRefValue.
func (l Literal) ToTermRef() TermRef {
	return TermRef{kind: TermLiteral, literal: l.AsRef()}
}

// LiteralRef is a borrowed view of a Literal. Its strings may alias memory
// owned elsewhere; the view must not be retained beyond the life of that
// memory. IntoOwned detaches it.
type LiteralRef struct {
	value    string
	language string
	datatype NamedNodeRef
}

// NewLiteralRef creates an xsd:string literal view over a lexical form held
// elsewhere.
func NewLiteralRef(value string) LiteralRef {
	return LiteralRef{value: value, datatype: XSDString.AsRef()}
}

// NewLiteralRefWithLanguage creates a language-tagged literal view. An empty
// language tag yields a plain xsd:string view.
func NewLiteralRefWithLanguage(value, language string) LiteralRef {
	if language == "" {
		return NewLiteralRef(value)
	}
	return LiteralRef{value: value, language: language, datatype: RDFLangString.AsRef()}
}

// NewLiteralRefWithDatatype creates a typed literal view. A zero datatype
// means xsd:string.
func NewLiteralRefWithDatatype(value string, datatype NamedNodeRef) LiteralRef {
	if datatype == (NamedNodeRef{}) {
		datatype = XSDString.AsRef()
	}
	return LiteralRef{value: value, datatype: datatype}
}

// Value returns the lexical form of the literal.
func (l LiteralRef) Value() string { return l.value }

// Language returns the language tag, or "" for literals that are not
// language tagged.
func (l LiteralRef) Language() string { return l.language }

// Datatype returns the datatype of the literal.
func (l LiteralRef) Datatype() NamedNodeRef { return l.datatype }

// IsLanguageTagged reports whether the literal carries a language tag.
func (l LiteralRef) IsLanguageTagged() bool { return l.language != "" }

// IntoOwned copies the view into an independent owned literal.
func (l LiteralRef) IntoOwned() Literal {
	return Literal{
		value:    strings.Clone(l.value),
		language: strings.Clone(l.language),
		datatype: l.datatype.IntoOwned(),
	}
}

// ToNQuads converts the view into its interchange representation.
func (l LiteralRef) ToNQuads() nquads.Literal {
	return nquads.Literal{
		Lexical:  l.value,
		Lang:     l.language,
		Datatype: l.datatype.ToNQuads(),
	}
}

// String returns the literal in N-Triples syntax.
func (l LiteralRef) String() string { return l.ToNQuads().String() }

// ToTerm implements ObjectValue.
func (l LiteralRef) ToTerm() Term { return l.IntoOwned().ToTerm() }

// ToTermRef implements ObjectRefValue.
func (l LiteralRef) ToTermRef() TermRef {
	return TermRef{kind: TermLiteral, literal: l}
}
