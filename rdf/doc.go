// Package rdf provides the core RDF data model: named nodes, blank nodes and
// literals, and their composition into triples and quads.
//
// Every value in this package is immutable. Statement positions are enforced
// by the type system rather than by runtime checks: a subject is a
// NamedOrBlankNode, a predicate is a NamedNode, an object is a Term, and a
// graph name is a GraphName. Illegal statements (a literal predicate, a
// literal graph name) do not type-check. The unions are closed tagged values,
// so a switch over Kind() together with the comma-ok accessors covers every
// case.
//
// Each type exists in two flavors. The owned flavor (NamedNode, Term, Quad,
// ...) owns its backing strings outright and is safe to keep for as long as
// needed. The borrowed flavor (NamedNodeRef, TermRef, QuadRef, ...) is a
// small copiable view whose strings may alias memory owned elsewhere, for
// example a decoder's reusable buffer. AsRef produces a view without
// allocating; IntoOwned copies every leaf string so the result is independent
// of the source. A view must not be retained beyond the life of the memory it
// aliases.
//
// Values compare with ==: equality is variant-aware, and because every type
// is a comparable struct they can be used as map keys directly.
//
// Constructors accept anything convertible into the field types, so owned
// values and views mix freely:
//
//	t := rdf.NewTriple(
//	    rdf.NewBlankNode("b1"),
//	    rdf.NewNamedNode("http://example.com/p"),
//	    rdf.NewLiteral("v"),
//	)
//	q := t.InGraph(rdf.NewNamedNode("http://example.com/g"))
//
// String methods render the N-Triples/N-Quads grammar by delegating to the
// nquads interchange model, so a value and its converted counterpart always
// render identically:
//
//	fmt.Println(q) // _:b1 <http://example.com/p> "v" <http://example.com/g>
//
// The package performs no syntactic validation: IRIs, blank node identifiers
// and language tags are taken as given.
package rdf
