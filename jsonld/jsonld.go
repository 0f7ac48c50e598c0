// Package jsonld converts between the rdf model and the node/quad
// representation of github.com/piprate/json-gold, so datasets built on this
// model can flow through json-gold's JSON-LD algorithms directly.
//
// The From functions convert rdf views outward; they are total and preserve
// term kind and payload exactly. The To functions convert json-gold values
// back and fail only on node types outside the RDF term model. json-gold
// identifies blank nodes by an attribute that includes the "_:" prefix and
// keys dataset graphs by "@default" or the graph name string; both
// conventions are mapped here.
package jsonld

import (
	"fmt"
	"sort"
	"strings"

	ld "github.com/piprate/json-gold/ld"

	"github.com/geoknoesis/rdfmodel/rdf"
)

// DefaultGraphKey is the graph key json-gold uses for the default graph.
const DefaultGraphKey = "@default"

// FromTerm converts a term view into a json-gold node.
func FromTerm(term rdf.TermRef) ld.Node {
	switch {
	case term.IsBlankNode():
		blank, _ := term.BlankNode()
		return ld.NewBlankNode("_:" + blank.Value())
	case term.IsLiteral():
		literal, _ := term.Literal()
		return ld.NewLiteral(literal.Value(), literal.Datatype().Value(), literal.Language())
	default:
		named, _ := term.NamedNode()
		return ld.NewIRI(named.Value())
	}
}

// FromNode converts a named-or-blank node view into a json-gold node.
func FromNode(node rdf.NamedOrBlankNodeRef) ld.Node {
	return FromTerm(node.ToTermRef())
}

// FromGraphName converts a graph name view into a json-gold node, or nil for
// the default graph.
func FromGraphName(graphName rdf.GraphNameRef) ld.Node {
	node := graphName.Node()
	if node == nil {
		return nil
	}
	return FromNode(*node)
}

// FromQuad converts a quad view into a json-gold quad.
func FromQuad(quad rdf.QuadRef) *ld.Quad {
	return &ld.Quad{
		Subject:   FromNode(quad.Subject),
		Predicate: FromTerm(quad.Predicate.ToTermRef()),
		Object:    FromTerm(quad.Object),
		Graph:     FromGraphName(quad.GraphName),
	}
}

// FromQuads converts quads into a json-gold dataset, grouped by graph.
func FromQuads(quads []rdf.Quad) *ld.RDFDataset {
	dataset := ld.NewRDFDataset()
	for _, quad := range quads {
		key := graphKey(quad.GraphName)
		dataset.Graphs[key] = append(dataset.Graphs[key], FromQuad(quad.AsRef()))
	}
	return dataset
}

// ToTerm converts a json-gold node back into an owned term. json-gold code
// passes nodes both by value and by pointer; both forms are accepted.
func ToTerm(node ld.Node) (rdf.Term, error) {
	switch n := node.(type) {
	case ld.IRI:
		return rdf.NewNamedNode(n.Value).ToTerm(), nil
	case *ld.IRI:
		return rdf.NewNamedNode(n.Value).ToTerm(), nil
	case ld.BlankNode:
		return blankNodeFromAttribute(n.Attribute).ToTerm(), nil
	case *ld.BlankNode:
		return blankNodeFromAttribute(n.Attribute).ToTerm(), nil
	case ld.Literal:
		return literalFromNode(n).ToTerm(), nil
	case *ld.Literal:
		return literalFromNode(*n).ToTerm(), nil
	default:
		return rdf.Term{}, fmt.Errorf("jsonld: unsupported node type %T", node)
	}
}

// ToNode converts a json-gold node back into a named-or-blank node. Literals
// are rejected.
func ToNode(node ld.Node) (rdf.NamedOrBlankNode, error) {
	term, err := ToTerm(node)
	if err != nil {
		return rdf.NamedOrBlankNode{}, err
	}
	if named, ok := term.NamedNode(); ok {
		return named.ToNamedOrBlankNode(), nil
	}
	if blank, ok := term.BlankNode(); ok {
		return blank.ToNamedOrBlankNode(), nil
	}
	return rdf.NamedOrBlankNode{}, fmt.Errorf("jsonld: literal %s cannot name a subject or graph", term)
}

// ToGraphName converts a json-gold graph node back into a graph name. A nil
// node means the default graph.
func ToGraphName(node ld.Node) (rdf.GraphName, error) {
	if node == nil {
		return rdf.DefaultGraph(), nil
	}
	name, err := ToNode(node)
	if err != nil {
		return rdf.GraphName{}, err
	}
	return name.ToGraphName(), nil
}

// ToQuad converts a json-gold quad back into an owned quad.
func ToQuad(quad *ld.Quad) (rdf.Quad, error) {
	subject, err := ToNode(quad.Subject)
	if err != nil {
		return rdf.Quad{}, err
	}
	predicate, err := ToTerm(quad.Predicate)
	if err != nil {
		return rdf.Quad{}, err
	}
	predicateNode, ok := predicate.NamedNode()
	if !ok {
		return rdf.Quad{}, fmt.Errorf("jsonld: predicate %s is not an IRI", predicate)
	}
	object, err := ToTerm(quad.Object)
	if err != nil {
		return rdf.Quad{}, err
	}
	graphName, err := ToGraphName(quad.Graph)
	if err != nil {
		return rdf.Quad{}, err
	}
	return rdf.NewQuad(subject, predicateNode, object, graphName), nil
}

// ToQuads converts a json-gold dataset back into quads, ordered by graph
// key for determinism. Graph membership follows the dataset's graph keys;
// the per-quad Graph field is ignored, matching how json-gold groups quads.
func ToQuads(dataset *ld.RDFDataset) ([]rdf.Quad, error) {
	if dataset == nil {
		return nil, nil
	}
	keys := make([]string, 0, len(dataset.Graphs))
	for key := range dataset.Graphs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var quads []rdf.Quad
	for _, key := range keys {
		graphName := graphNameFromKey(key)
		for _, quad := range dataset.Graphs[key] {
			if quad == nil {
				continue
			}
			subject, err := ToNode(quad.Subject)
			if err != nil {
				return nil, err
			}
			predicate, err := ToTerm(quad.Predicate)
			if err != nil {
				return nil, err
			}
			predicateNode, ok := predicate.NamedNode()
			if !ok {
				return nil, fmt.Errorf("jsonld: predicate %s is not an IRI", predicate)
			}
			object, err := ToTerm(quad.Object)
			if err != nil {
				return nil, err
			}
			quads = append(quads, rdf.NewQuad(subject, predicateNode, object, graphName))
		}
	}
	return quads, nil
}

func blankNodeFromAttribute(attribute string) rdf.BlankNode {
	return rdf.NewBlankNode(strings.TrimPrefix(attribute, "_:"))
}

func literalFromNode(literal ld.Literal) rdf.Literal {
	if literal.Language != "" {
		return rdf.NewLiteralWithLanguage(literal.Value, literal.Language)
	}
	if literal.Datatype == "" {
		return rdf.NewLiteral(literal.Value)
	}
	return rdf.NewLiteralWithDatatype(literal.Value, rdf.NewNamedNode(literal.Datatype))
}

func graphKey(graphName rdf.GraphName) string {
	switch {
	case graphName.IsDefaultGraph():
		return DefaultGraphKey
	case graphName.IsBlankNode():
		blank, _ := graphName.BlankNode()
		return "_:" + blank.Value()
	default:
		named, _ := graphName.NamedNode()
		return named.Value()
	}
}

func graphNameFromKey(key string) rdf.GraphName {
	switch {
	case key == DefaultGraphKey:
		return rdf.DefaultGraph()
	case strings.HasPrefix(key, "_:"):
		return rdf.NewBlankNode(strings.TrimPrefix(key, "_:")).ToGraphName()
	default:
		return rdf.NewNamedNode(key).ToGraphName()
	}
}
