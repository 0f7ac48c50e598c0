package rdf

import "testing"

func TestNewTripleAcceptsMixedFlavors(t *testing.T) {
	subject := NewNamedNode("http://example.org/s")
	predicate := NewNamedNode("http://example.org/p")
	object := NewLiteral("v")

	fromOwned := NewTriple(subject, predicate, object)
	fromViews := NewTriple(subject.AsRef(), predicate.AsRef(), object.AsRef())
	fromUnions := NewTriple(subject.ToNamedOrBlankNode(), predicate, object.ToTerm())

	if fromOwned != fromViews || fromOwned != fromUnions {
		t.Fatalf("constructor flavors disagree: %v / %v / %v", fromOwned, fromViews, fromUnions)
	}
	if fromOwned.Subject != subject.ToNamedOrBlankNode() {
		t.Fatalf("Subject = %v, want %v", fromOwned.Subject, subject.ToNamedOrBlankNode())
	}
	if fromOwned.Predicate != predicate {
		t.Fatalf("Predicate = %v, want %v", fromOwned.Predicate, predicate)
	}
	if fromOwned.Object != object.ToTerm() {
		t.Fatalf("Object = %v, want %v", fromOwned.Object, object.ToTerm())
	}
}

func TestTripleRendering(t *testing.T) {
	triple := NewTriple(
		NewBlankNode("b1"),
		NewNamedNode("http://example.org/p"),
		NewLiteral("v"),
	)
	want := `_:b1 <http://example.org/p> "v"`
	if got := triple.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if got := triple.AsRef().ToNQuads().String(); got != want {
		t.Fatalf("interchange String() = %q, want %q", got, want)
	}
}

func TestTripleInGraphThenToTripleIsIdentity(t *testing.T) {
	triple := NewTriple(
		NewBlankNode("b1"),
		NewNamedNode("http://example.org/p"),
		NewLiteral("v"),
	)
	graphNames := []GraphNameValue{
		NewNamedNode("http://example.org/g"),
		NewBlankNode("g1"),
		DefaultGraph(),
	}
	for _, graphName := range graphNames {
		if got := triple.InGraph(graphName).ToTriple(); got != triple {
			t.Fatalf("InGraph(%v) then ToTriple() = %v, want %v", graphName, got, triple)
		}
	}
}

func TestTripleRefRoundTrip(t *testing.T) {
	triple := NewTriple(
		NewNamedNode("http://example.org/s"),
		NewNamedNode("http://example.org/p"),
		NewLiteralWithLanguage("chat", "fr"),
	)
	if got := triple.AsRef().IntoOwned(); got != triple {
		t.Fatalf("AsRef().IntoOwned() = %v, want %v", got, triple)
	}
	if got := triple.AsRef().String(); got != triple.String() {
		t.Fatalf("view renders %q, owned renders %q", got, triple.String())
	}
}

func TestNewTripleRef(t *testing.T) {
	subject := NewNamedNode("http://example.org/s")
	predicate := NewNamedNode("http://example.org/p")
	object := NewLiteral("v")

	view := NewTripleRef(subject, predicate, object)
	if got := view.IntoOwned(); got != NewTriple(subject, predicate, object) {
		t.Fatalf("IntoOwned() = %v", got)
	}

	inGraph := view.InGraph(NewNamedNode("http://example.org/g"))
	if got := inGraph.ToTriple(); got != view {
		t.Fatalf("InGraph then ToTriple = %v, want %v", got, view)
	}
}

func TestTripleEquality(t *testing.T) {
	a := NewTriple(NewBlankNode("b"), NewNamedNode("p"), NewLiteral("v"))
	b := NewTriple(NewBlankNode("b"), NewNamedNode("p"), NewLiteral("v"))
	if a != b {
		t.Fatal("equal triples compare unequal")
	}

	seen := map[Triple]int{a: 1}
	if seen[b] != 1 {
		t.Fatal("equal triples hash to different map keys")
	}
}
