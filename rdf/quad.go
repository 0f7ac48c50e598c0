package rdf

import "github.com/geoknoesis/rdfmodel/nquads"

// Quad is an RDF triple located in a graph of a dataset.
type Quad struct {
	// Subject is the statement subject.
	Subject NamedOrBlankNode
	// Predicate is the statement predicate.
	Predicate NamedNode
	// Object is the statement object.
	Object Term
	// GraphName is the graph the statement belongs to.
	GraphName GraphName
}

// NewQuad builds a quad. Each argument accepts owned values, views, or the
// matching union, converted into the owned field types.
func NewQuad(subject SubjectValue, predicate PredicateValue, object ObjectValue, graphName GraphNameValue) Quad {
	return Quad{
		Subject:   subject.ToNamedOrBlankNode(),
		Predicate: predicate.ToNamedNode(),
		Object:    object.ToTerm(),
		GraphName: graphName.ToGraphName(),
	}
}

// ToTriple extracts the triple from the quad, dropping the graph name.
func (q Quad) ToTriple() Triple {
	return Triple{
		Subject:   q.Subject,
		Predicate: q.Predicate,
		Object:    q.Object,
	}
}

// InDefaultGraph reports whether the quad is in the default graph.
func (q Quad) InDefaultGraph() bool { return q.GraphName.IsDefaultGraph() }

// AsRef returns a borrowed view of the quad without allocating.
func (q Quad) AsRef() QuadRef {
	return QuadRef{
		Subject:   q.Subject.AsRef(),
		Predicate: q.Predicate.AsRef(),
		Object:    q.Object.AsRef(),
		GraphName: q.GraphName.AsRef(),
	}
}

// String returns the quad in N-Quads syntax, without the closing " .". The
// graph name is omitted for the default graph.
func (q Quad) String() string { return q.AsRef().String() }

// QuadRef is a borrowed view of a Quad. It must not be retained beyond the
// life of the memory its strings alias.
type QuadRef struct {
	// Subject is the statement subject.
	Subject NamedOrBlankNodeRef
	// Predicate is the statement predicate.
	Predicate NamedNodeRef
	// Object is the statement object.
	Object TermRef
	// GraphName is the graph the statement belongs to.
	GraphName GraphNameRef
}

// NewQuadRef builds a quad view. Each argument accepts owned values or
// views, converted into the view field types without allocating.
func NewQuadRef(subject SubjectRefValue, predicate PredicateRefValue, object ObjectRefValue, graphName GraphNameRefValue) QuadRef {
	return QuadRef{
		Subject:   subject.ToNamedOrBlankNodeRef(),
		Predicate: predicate.ToNamedNodeRef(),
		Object:    object.ToTermRef(),
		GraphName: graphName.ToGraphNameRef(),
	}
}

// ToTriple extracts the triple view from the quad view, dropping the graph
// name.
func (q QuadRef) ToTriple() TripleRef {
	return TripleRef{
		Subject:   q.Subject,
		Predicate: q.Predicate,
		Object:    q.Object,
	}
}

// InDefaultGraph reports whether the quad is in the default graph.
func (q QuadRef) InDefaultGraph() bool { return q.GraphName.IsDefaultGraph() }

// IntoOwned copies the view into an independent owned quad.
func (q QuadRef) IntoOwned() Quad {
	return Quad{
		Subject:   q.Subject.IntoOwned(),
		Predicate: q.Predicate.IntoOwned(),
		Object:    q.Object.IntoOwned(),
		GraphName: q.GraphName.IntoOwned(),
	}
}

// ToNQuads converts the view into its interchange representation. The graph
// term is nil for the default graph.
func (q QuadRef) ToNQuads() nquads.Quad {
	return nquads.Quad{
		S: q.Subject.ToNQuads(),
		P: q.Predicate.ToNQuads(),
		O: q.Object.ToNQuads(),
		G: q.GraphName.ToNQuads(),
	}
}

// String returns the quad in N-Quads syntax, without the closing " .". The
// graph name is omitted for the default graph.
func (q QuadRef) String() string { return q.ToNQuads().String() }
