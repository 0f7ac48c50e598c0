package jsonld

import (
	"testing"

	ld "github.com/piprate/json-gold/ld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/rdfmodel/rdf"
)

func TestFromTerm(t *testing.T) {
	t.Run("named node", func(t *testing.T) {
		node := FromTerm(rdf.NewNamedNode("http://example.org/s").ToTermRef())
		iri, ok := node.(ld.IRI)
		require.True(t, ok, "expected ld.IRI, got %T", node)
		assert.Equal(t, "http://example.org/s", iri.Value)
	})

	t.Run("blank node keeps the _: attribute convention", func(t *testing.T) {
		node := FromTerm(rdf.NewBlankNode("b1").ToTermRef())
		blank, ok := node.(ld.BlankNode)
		require.True(t, ok, "expected ld.BlankNode, got %T", node)
		assert.Equal(t, "_:b1", blank.Attribute)
	})

	t.Run("language literal", func(t *testing.T) {
		node := FromTerm(rdf.NewLiteralWithLanguage("chat", "fr").ToTermRef())
		literal, ok := node.(ld.Literal)
		require.True(t, ok, "expected ld.Literal, got %T", node)
		assert.Equal(t, "chat", literal.Value)
		assert.Equal(t, "fr", literal.Language)
		assert.Equal(t, rdf.RDFLangString.Value(), literal.Datatype)
	})

	t.Run("typed literal", func(t *testing.T) {
		node := FromTerm(rdf.NewLiteralWithDatatype("11", rdf.XSDInteger).ToTermRef())
		literal, ok := node.(ld.Literal)
		require.True(t, ok, "expected ld.Literal, got %T", node)
		assert.Equal(t, "11", literal.Value)
		assert.Equal(t, rdf.XSDInteger.Value(), literal.Datatype)
		assert.Empty(t, literal.Language)
	})
}

func TestTermRoundTrip(t *testing.T) {
	terms := []rdf.Term{
		rdf.NewNamedNode("http://example.org/s").ToTerm(),
		rdf.NewBlankNode("b1").ToTerm(),
		rdf.NewLiteral("v").ToTerm(),
		rdf.NewLiteralWithLanguage("chat", "fr").ToTerm(),
		rdf.NewLiteralWithDatatype("11", rdf.XSDInteger).ToTerm(),
	}
	for _, term := range terms {
		back, err := ToTerm(FromTerm(term.AsRef()))
		require.NoError(t, err)
		assert.Equal(t, term, back)
	}
}

func TestToTermAcceptsBothNodeForms(t *testing.T) {
	// json-gold code passes nodes both by value and by pointer
	back, err := ToTerm(ld.IRI{Value: "http://example.org/s"})
	require.NoError(t, err)
	assert.Equal(t, rdf.NewNamedNode("http://example.org/s").ToTerm(), back)

	back, err = ToTerm(&ld.IRI{Value: "http://example.org/s"})
	require.NoError(t, err)
	assert.Equal(t, rdf.NewNamedNode("http://example.org/s").ToTerm(), back)

	back, err = ToTerm(ld.BlankNode{Attribute: "_:b1"})
	require.NoError(t, err)
	assert.Equal(t, rdf.NewBlankNode("b1").ToTerm(), back)

	back, err = ToTerm(&ld.BlankNode{Attribute: "_:b1"})
	require.NoError(t, err)
	assert.Equal(t, rdf.NewBlankNode("b1").ToTerm(), back)

	back, err = ToTerm(&ld.Literal{Value: "v", Datatype: rdf.XSDString.Value()})
	require.NoError(t, err)
	assert.Equal(t, rdf.NewLiteral("v").ToTerm(), back)
}

func TestToTermRejectsUnknownNodes(t *testing.T) {
	_, err := ToTerm(nil)
	assert.Error(t, err)
}

func TestToNodeRejectsLiterals(t *testing.T) {
	_, err := ToNode(ld.NewLiteral("v", "", ""))
	assert.Error(t, err)
}

func TestGraphNameConversion(t *testing.T) {
	assert.Nil(t, FromGraphName(rdf.DefaultGraphRef()))

	node := FromGraphName(rdf.NewNamedNode("http://example.org/g").ToGraphNameRef())
	require.NotNil(t, node)
	assert.Equal(t, "http://example.org/g", node.GetValue())

	back, err := ToGraphName(nil)
	require.NoError(t, err)
	assert.Equal(t, rdf.DefaultGraph(), back)

	back, err = ToGraphName(node)
	require.NoError(t, err)
	assert.Equal(t, rdf.NewNamedNode("http://example.org/g").ToGraphName(), back)
}

func TestQuadRoundTrip(t *testing.T) {
	quads := []rdf.Quad{
		rdf.NewQuad(
			rdf.NewBlankNode("b1"),
			rdf.NewNamedNode("http://example.org/p"),
			rdf.NewLiteral("v"),
			rdf.NewNamedNode("http://example.org/g"),
		),
		rdf.NewQuad(
			rdf.NewNamedNode("http://example.org/s"),
			rdf.NewNamedNode("http://example.org/p"),
			rdf.NewNamedNode("http://example.org/o"),
			rdf.DefaultGraph(),
		),
	}
	for _, quad := range quads {
		converted := FromQuad(quad.AsRef())
		if quad.InDefaultGraph() {
			assert.Nil(t, converted.Graph)
		} else {
			assert.NotNil(t, converted.Graph)
		}
		back, err := ToQuad(converted)
		require.NoError(t, err)
		assert.Equal(t, quad, back)
	}
}

func TestDatasetRoundTrip(t *testing.T) {
	quads := []rdf.Quad{
		rdf.NewQuad(
			rdf.NewNamedNode("http://example.org/s"),
			rdf.NewNamedNode("http://example.org/p"),
			rdf.NewLiteral("v"),
			rdf.DefaultGraph(),
		),
		rdf.NewQuad(
			rdf.NewBlankNode("b1"),
			rdf.NewNamedNode("http://example.org/p"),
			rdf.NewLiteralWithLanguage("chat", "fr"),
			rdf.NewNamedNode("http://example.org/g"),
		),
		rdf.NewQuad(
			rdf.NewNamedNode("http://example.org/s"),
			rdf.NewNamedNode("http://example.org/p"),
			rdf.NewNamedNode("http://example.org/o"),
			rdf.NewBlankNode("g1"),
		),
	}

	dataset := FromQuads(quads)
	require.Len(t, dataset.Graphs[DefaultGraphKey], 1)
	require.Len(t, dataset.Graphs["http://example.org/g"], 1)
	require.Len(t, dataset.Graphs["_:g1"], 1)

	back, err := ToQuads(dataset)
	require.NoError(t, err)
	assert.ElementsMatch(t, quads, back)
}

func TestToQuadsNilDataset(t *testing.T) {
	back, err := ToQuads(nil)
	require.NoError(t, err)
	assert.Empty(t, back)
}
