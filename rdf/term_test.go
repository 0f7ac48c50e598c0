package rdf

import "testing"

func TestTermTags(t *testing.T) {
	tests := []struct {
		name      string
		term      Term
		wantKind  TermKind
		isNamed   bool
		isBlank   bool
		isLiteral bool
	}{
		{"named", NewNamedNode("http://example.org/s").ToTerm(), TermNamedNode, true, false, false},
		{"blank", NewBlankNode("b1").ToTerm(), TermBlankNode, false, true, false},
		{"literal", NewLiteral("v").ToTerm(), TermLiteral, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.term.Kind(); got != tt.wantKind {
				t.Fatalf("Kind() = %d, want %d", got, tt.wantKind)
			}
			if tt.term.IsNamedNode() != tt.isNamed || tt.term.IsBlankNode() != tt.isBlank || tt.term.IsLiteral() != tt.isLiteral {
				t.Fatalf("tag queries = %v/%v/%v, want %v/%v/%v",
					tt.term.IsNamedNode(), tt.term.IsBlankNode(), tt.term.IsLiteral(),
					tt.isNamed, tt.isBlank, tt.isLiteral)
			}
		})
	}
}

func TestTermPayloads(t *testing.T) {
	literal := NewLiteralWithLanguage("chat", "fr")
	term := literal.ToTerm()
	if got, ok := term.Literal(); !ok || got != literal {
		t.Fatalf("Literal() = %v, %v; want %v", got, ok, literal)
	}
	if _, ok := term.NamedNode(); ok {
		t.Fatal("NamedNode() reported ok on a literal term")
	}
	if _, ok := term.BlankNode(); ok {
		t.Fatal("BlankNode() reported ok on a literal term")
	}
}

func TestTermRoundTrip(t *testing.T) {
	terms := []Term{
		NewNamedNode("http://example.org/s").ToTerm(),
		NewBlankNode("b1").ToTerm(),
		NewLiteral("v").ToTerm(),
		NewLiteralWithLanguage("chat", "fr").ToTerm(),
		NewLiteralWithDatatype("11", XSDInteger).ToTerm(),
	}
	for _, term := range terms {
		if got := term.AsRef().IntoOwned(); got != term {
			t.Fatalf("AsRef().IntoOwned() = %v, want %v", got, term)
		}
		if got := term.AsRef().String(); got != term.String() {
			t.Fatalf("view renders %q, owned renders %q", got, term.String())
		}
	}
}

func TestTermInterchangeRendering(t *testing.T) {
	terms := []Term{
		NewNamedNode("http://example.org/s").ToTerm(),
		NewBlankNode("b1").ToTerm(),
		NewLiteralWithDatatype("11", XSDInteger).ToTerm(),
	}
	for _, term := range terms {
		if got := term.AsRef().ToNQuads().String(); got != term.String() {
			t.Fatalf("interchange form renders %q, term renders %q", got, term.String())
		}
	}
}

func TestTermEquality(t *testing.T) {
	a := NewLiteral("v").ToTerm()
	b := NewLiteral("v").ToTerm()
	named := NewNamedNode("v").ToTerm()
	if a != b {
		t.Fatal("equal literal terms compare unequal")
	}
	if a == named {
		t.Fatal("literal and named terms with the same text compare equal")
	}

	seen := map[Term]int{a: 1}
	if seen[b] != 1 {
		t.Fatal("equal terms hash to different map keys")
	}
}
