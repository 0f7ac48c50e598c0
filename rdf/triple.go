package rdf

import "github.com/geoknoesis/rdfmodel/nquads"

// Triple is an RDF triple: a subject, predicate and object statement.
type Triple struct {
	// Subject is the statement subject.
	Subject NamedOrBlankNode
	// Predicate is the statement predicate.
	Predicate NamedNode
	// Object is the statement object.
	Object Term
}

// NewTriple builds a triple. Each argument accepts owned values, views, or
// the matching union, converted into the owned field types.
func NewTriple(subject SubjectValue, predicate PredicateValue, object ObjectValue) Triple {
	return Triple{
		Subject:   subject.ToNamedOrBlankNode(),
		Predicate: predicate.ToNamedNode(),
		Object:    object.ToTerm(),
	}
}

// InGraph places the triple in a graph, producing a quad. Attaching
// rdf.DefaultGraph() yields a quad in the default graph.
func (t Triple) InGraph(graphName GraphNameValue) Quad {
	return Quad{
		Subject:   t.Subject,
		Predicate: t.Predicate,
		Object:    t.Object,
		GraphName: graphName.ToGraphName(),
	}
}

// AsRef returns a borrowed view of the triple without allocating.
func (t Triple) AsRef() TripleRef {
	return TripleRef{
		Subject:   t.Subject.AsRef(),
		Predicate: t.Predicate.AsRef(),
		Object:    t.Object.AsRef(),
	}
}

// String returns the triple in N-Triples syntax, without the closing " .".
func (t Triple) String() string { return t.AsRef().String() }

// TripleRef is a borrowed view of a Triple. It must not be retained beyond
// the life of the memory its strings alias.
type TripleRef struct {
	// Subject is the statement subject.
	Subject NamedOrBlankNodeRef
	// Predicate is the statement predicate.
	Predicate NamedNodeRef
	// Object is the statement object.
	Object TermRef
}

// NewTripleRef builds a triple view. Each argument accepts owned values or
// views, converted into the view field types without allocating.
func NewTripleRef(subject SubjectRefValue, predicate PredicateRefValue, object ObjectRefValue) TripleRef {
	return TripleRef{
		Subject:   subject.ToNamedOrBlankNodeRef(),
		Predicate: predicate.ToNamedNodeRef(),
		Object:    object.ToTermRef(),
	}
}

// InGraph places the triple view in a graph, producing a quad view.
func (t TripleRef) InGraph(graphName GraphNameRefValue) QuadRef {
	return QuadRef{
		Subject:   t.Subject,
		Predicate: t.Predicate,
		Object:    t.Object,
		GraphName: graphName.ToGraphNameRef(),
	}
}

// IntoOwned copies the view into an independent owned triple.
func (t TripleRef) IntoOwned() Triple {
	return Triple{
		Subject:   t.Subject.IntoOwned(),
		Predicate: t.Predicate.IntoOwned(),
		Object:    t.Object.IntoOwned(),
	}
}

// ToNQuads converts the view into its interchange representation.
func (t TripleRef) ToNQuads() nquads.Triple {
	return nquads.Triple{
		S: t.Subject.ToNQuads(),
		P: t.Predicate.ToNQuads(),
		O: t.Object.ToNQuads(),
	}
}

// String returns the triple in N-Triples syntax, without the closing " .".
func (t TripleRef) String() string { return t.ToNQuads().String() }
