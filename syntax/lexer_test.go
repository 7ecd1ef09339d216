package syntax

import (
	"strings"
	"testing"

	"github.com/reusee/clipc/diags"
)

func TestTokenize(t *testing.T) {
	type TokenInfo struct {
		Type TokenType
		Text string
	}

	tests := []struct {
		input  string
		tokens []TokenInfo
	}{
		{
			input: "main { }",
			tokens: []TokenInfo{
				{TokenMain, "main"},
				{TokenLBrace, "{"},
				{TokenRBrace, "}"},
			},
		},
		{
			input: "int:x:42;",
			tokens: []TokenInfo{
				{TokenIntType, "int"},
				{TokenColon, ":"},
				{TokenIdentifier, "x"},
				{TokenColon, ":"},
				{TokenIntLiteral, "42"},
				{TokenSemicolon, ";"},
			},
		},
		{
			input: "1.5 20 \"clip.mp4\"",
			tokens: []TokenInfo{
				{TokenFloatLiteral, "1.5"},
				{TokenIntLiteral, "20"},
				{TokenStringLiteral, `"clip.mp4"`},
			},
		},
		{
			input: "a==b != c <= d >= e < f > g = h",
			tokens: []TokenInfo{
				{TokenIdentifier, "a"},
				{TokenEq, "=="},
				{TokenIdentifier, "b"},
				{TokenNotEq, "!="},
				{TokenIdentifier, "c"},
				{TokenLessEq, "<="},
				{TokenIdentifier, "d"},
				{TokenGreaterEq, ">="},
				{TokenIdentifier, "e"},
				{TokenLess, "<"},
				{TokenIdentifier, "f"},
				{TokenGreater, ">"},
				{TokenIdentifier, "g"},
				{TokenAssign, "="},
				{TokenIdentifier, "h"},
			},
		},
		{
			input: "not a and b or c && d || e",
			tokens: []TokenInfo{
				{TokenNot, "not"},
				{TokenIdentifier, "a"},
				{TokenAnd, "and"},
				{TokenIdentifier, "b"},
				{TokenOr, "or"},
				{TokenIdentifier, "c"},
				{TokenAnd, "&&"},
				{TokenIdentifier, "d"},
				{TokenOr, "||"},
				{TokenIdentifier, "e"},
			},
		},
		{
			input: "@resize[v, 1, 2] @mute[] @add_music[\"a.mp3\"]",
			tokens: []TokenInfo{
				{TokenOpResize, "@resize"},
				{TokenLBracket, "["},
				{TokenIdentifier, "v"},
				{TokenComma, ","},
				{TokenIntLiteral, "1"},
				{TokenComma, ","},
				{TokenIntLiteral, "2"},
				{TokenRBracket, "]"},
				{TokenOpMute, "@mute"},
				{TokenLBracket, "["},
				{TokenRBracket, "]"},
				{TokenOpAddMusic, "@add_music"},
				{TokenLBracket, "["},
				{TokenStringLiteral, `"a.mp3"`},
				{TokenRBracket, "]"},
			},
		},
		{
			input: "x // comment\ny",
			tokens: []TokenInfo{
				{TokenIdentifier, "x"},
				{TokenIdentifier, "y"},
			},
		},
		{
			input: "export out as \"o.mp4\"",
			tokens: []TokenInfo{
				{TokenExport, "export"},
				{TokenIdentifier, "out"},
				{TokenAs, "as"},
				{TokenStringLiteral, `"o.mp4"`},
			},
		},
		{
			input: "_a1 b_2",
			tokens: []TokenInfo{
				{TokenIdentifier, "_a1"},
				{TokenIdentifier, "b_2"},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokens, errs := Tokenize(test.input)
			if len(errs) > 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if len(tokens) != len(test.tokens)+1 {
				t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(test.tokens)+1, tokens)
			}
			for i, expected := range test.tokens {
				if tokens[i].Type != expected.Type || tokens[i].Text != expected.Text {
					t.Fatalf("token %d: got %v %q, want %v %q", i, tokens[i].Type, tokens[i].Text, expected.Type, expected.Text)
				}
			}
			if tokens[len(tokens)-1].Type != TokenEOF {
				t.Fatalf("got %v", tokens[len(tokens)-1])
			}
		})
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens, errs := Tokenize("main {\n  int:x;\n}")
	if len(errs) > 0 {
		t.Fatal(errs)
	}
	expected := []Pos{
		{Line: 1, Column: 1}, {Line: 1, Column: 6},
		{Line: 2, Column: 3}, {Line: 2, Column: 6}, {Line: 2, Column: 7}, {Line: 2, Column: 8},
		{Line: 3, Column: 1},
		{Line: 3, Column: 2}, // EOF
	}
	if len(tokens) != len(expected) {
		t.Fatalf("got %v", tokens)
	}
	for i, pos := range expected {
		if tokens[i].Pos != pos {
			t.Fatalf("token %d %v: got %v, want %v", i, tokens[i], tokens[i].Pos, pos)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		input   string
		kind    diags.Kind
		pos     Pos
		message string
		tokens  []TokenType
	}{
		{
			input:   "12.3.4 x",
			kind:    diags.MalformedNumber,
			pos:     Pos{Line: 1, Column: 1},
			message: "malformed number '12.3.4'",
			tokens:  []TokenType{TokenIdentifier},
		},
		{
			input:   "a 3abc b",
			kind:    diags.InvalidIdentifier,
			pos:     Pos{Line: 1, Column: 3},
			message: "invalid identifier '3abc'",
			tokens:  []TokenType{TokenIdentifier, TokenIdentifier},
		},
		{
			input:   "\"abc\nx",
			kind:    diags.UnterminatedString,
			pos:     Pos{Line: 1, Column: 1},
			message: "unterminated string",
			tokens:  []TokenType{TokenIdentifier},
		},
		{
			input:   "x \"abc",
			kind:    diags.UnterminatedString,
			pos:     Pos{Line: 1, Column: 3},
			message: "unterminated string",
			tokens:  []TokenType{TokenIdentifier},
		},
		{
			input:   "a /* hidden */ b",
			kind:    diags.MalformedComment,
			pos:     Pos{Line: 1, Column: 3},
			message: "malformed comment",
			tokens:  []TokenType{TokenIdentifier, TokenIdentifier},
		},
		{
			input:   "a /* never closed",
			kind:    diags.MalformedComment,
			pos:     Pos{Line: 1, Column: 3},
			message: "malformed comment",
			tokens:  []TokenType{TokenIdentifier},
		},
		{
			input:   "@1 x",
			kind:    diags.InvalidCharacter,
			pos:     Pos{Line: 1, Column: 1},
			message: "invalid character '@1'",
			tokens:  []TokenType{TokenIdentifier},
		},
		{
			input:   "@blur[]",
			kind:    diags.InvalidOperationName,
			pos:     Pos{Line: 1, Column: 1},
			message: "invalid function '@blur'",
			tokens:  []TokenType{TokenLBracket, TokenRBracket},
		},
		{
			input:   "a # b",
			kind:    diags.InvalidCharacter,
			pos:     Pos{Line: 1, Column: 3},
			message: "invalid character '#'",
			tokens:  []TokenType{TokenIdentifier, TokenIdentifier},
		},
		{
			input:   "a ! b",
			kind:    diags.InvalidCharacter,
			pos:     Pos{Line: 1, Column: 3},
			message: "invalid character '!'",
			tokens:  []TokenType{TokenIdentifier, TokenIdentifier},
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokens, errs := Tokenize(test.input)
			if len(errs) != 1 {
				t.Fatalf("got %v", errs)
			}
			err := errs[0]
			if err.Kind != test.kind {
				t.Fatalf("got %v", err.Kind)
			}
			if err.Phase != diags.PhaseLexical {
				t.Fatalf("got %v", err.Phase)
			}
			if err.Pos != test.pos {
				t.Fatalf("got %v", err.Pos)
			}
			if err.Message != test.message {
				t.Fatalf("got %q", err.Message)
			}
			var types []TokenType
			for _, tok := range tokens {
				types = append(types, tok.Type)
			}
			expected := append(test.tokens, TokenEOF)
			if len(types) != len(expected) {
				t.Fatalf("got %v", types)
			}
			for i := range types {
				if types[i] != expected[i] {
					t.Fatalf("got %v", types)
				}
			}
		})
	}
}

func TestTokenizeAccumulatesErrors(t *testing.T) {
	_, errs := Tokenize("1.2.3 $ 4x @ \"open")
	var kinds []string
	for _, err := range errs {
		kinds = append(kinds, err.Kind.String())
	}
	if str := strings.Join(kinds, ","); str != "malformed number,invalid character,invalid identifier,invalid character,unterminated string" {
		t.Fatalf("got %s", str)
	}
}

func TestTokenizeTotal(t *testing.T) {
	inputs := []string{
		"",
		"   \n\t",
		"@",
		"\"",
		"/*",
		"1.",
		"1..",
		"\x00",
		"main { int:x:1; } }}}} ))) @@@ ### 1.2.3.4.5 \"",
		"ünïcödé ✓ 変数",
	}
	for _, input := range inputs {
		tokens, _ := Tokenize(input)
		if len(tokens) == 0 {
			t.Fatalf("%q: no tokens", input)
		}
		eofs := 0
		for _, tok := range tokens {
			if tok.Type == TokenEOF {
				eofs++
			}
		}
		if eofs != 1 || tokens[len(tokens)-1].Type != TokenEOF {
			t.Fatalf("%q: got %v", input, tokens)
		}
	}
}
