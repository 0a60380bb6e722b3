package tagger

import (
	"testing"

	"github.com/cursorgroup/sqlbind/internal/keyword"
	"github.com/cursorgroup/sqlbind/internal/lexer"
	"github.com/cursorgroup/sqlbind/internal/token"
)

func identAt(t *testing.T, stream *token.Stream, text string) int {
	t.Helper()
	n := stream.Len()
	for i := 0; i < n; i++ {
		tok := stream.At(i)
		if tok.Kind == token.Ident && tok.Text == text {
			return tok.Start
		}
	}
	t.Fatalf("no ident token %q found", text)
	return -1
}

func TestPartitionNamesBareForm(t *testing.T) {
	kw := keyword.Init()
	stream := lexer.Tokenize(kw, "select * from t partition q1_2024")

	tagged := PartitionNames(stream)
	start := identAt(t, stream, "q1_2024")
	if !tagged[start] {
		t.Fatal("expected q1_2024 to be tagged as a partition name")
	}
}

func TestPartitionNamesParenthesizedForm(t *testing.T) {
	kw := keyword.Init()
	stream := lexer.Tokenize(kw, "select * from t partition ( q1_2024 )")

	tagged := PartitionNames(stream)
	start := identAt(t, stream, "q1_2024")
	if !tagged[start] {
		t.Fatal("expected q1_2024 to be tagged as a partition name in parenthesized form")
	}
}

func TestPartitionNamesParenthesizedFormNoSpaces(t *testing.T) {
	kw := keyword.Init()
	stream := lexer.Tokenize(kw, "select * from t partition(q1_2024)")

	tagged := PartitionNames(stream)
	start := identAt(t, stream, "q1_2024")
	if !tagged[start] {
		t.Fatal("expected q1_2024 to be tagged as a partition name with no surrounding spaces")
	}
}

func TestPartitionNamesDoesNotTagPartitionBy(t *testing.T) {
	kw := keyword.Init()
	stream := lexer.Tokenize(kw, "select * from t partition by range(x)")

	tagged := PartitionNames(stream)
	if len(tagged) != 0 {
		t.Fatalf("expected no tagged names for 'partition by', got %v", tagged)
	}
}
