package lexer_test

import (
	"testing"

	"github.com/aledsdavies/solast/internal/lexer"
	"github.com/aledsdavies/solast/internal/token"
)

// tok is the expected (tag, text) pair for one token; text is matched
// against the source slice the token covers, not reconstructed from Start/End
// by the caller.
type tok struct {
	tag  token.Tag
	text string
}

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	toks := lexer.All([]byte(src))
	if len(toks) == 0 || toks[len(toks)-1].Tag != token.EOF {
		t.Fatalf("All(%q) did not end in EOF: %v", src, toks)
	}
	return toks
}

func assertTokens(t *testing.T, src string, want []tok) {
	t.Helper()
	got := lexAll(t, src)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Tag != w.tag {
			t.Fatalf("token[%d].Tag = %v, want %v", i, got[i].Tag, w.tag)
		}
		if text := string([]byte(src)[got[i].Start:got[i].End]); text != w.text {
			t.Fatalf("token[%d] text = %q, want %q", i, text, w.text)
		}
	}
}

func TestPunctuationAndSingleCharOperators(t *testing.T) {
	assertTokens(t, "(){}[];,.?~", []tok{
		{token.LParen, "("},
		{token.RParen, ")"},
		{token.LBrace, "{"},
		{token.RBrace, "}"},
		{token.LBracket, "["},
		{token.RBracket, "]"},
		{token.Semicolon, ";"},
		{token.Comma, ","},
		{token.Period, "."},
		{token.Question, "?"},
		{token.Tilde, "~"},
		{token.EOF, ""},
	})
}

func TestColonVersusColonEqual(t *testing.T) {
	assertTokens(t, ": :=", []tok{
		{token.Colon, ":"},
		{token.ColonEqual, ":="},
		{token.EOF, ""},
	})
}

func TestShiftAndRotateOperatorsGreedyMatchLongestFirst(t *testing.T) {
	assertTokens(t, "< <= << <<= > >= >> >>= >>> >>>=", []tok{
		{token.Less, "<"},
		{token.LessEqual, "<="},
		{token.Shl, "<<"},
		{token.ShlEqual, "<<="},
		{token.Greater, ">"},
		{token.GreaterEqual, ">="},
		{token.Shr, ">>"},
		{token.ShrEqual, ">>="},
		{token.Sar, ">>>"},
		{token.SarEqual, ">>>="},
		{token.EOF, ""},
	})
}

func TestLessThanNeverCollapsesAcrossWhitespace(t *testing.T) {
	// Two separate '<' tokens with a space between them must stay two
	// Less tokens, not fold into Shl.
	assertTokens(t, "< <", []tok{
		{token.Less, "<"},
		{token.Less, "<"},
		{token.EOF, ""},
	})
}

func TestAmpersandAndPipeForms(t *testing.T) {
	assertTokens(t, "& && &= | || |=", []tok{
		{token.Ampersand, "&"},
		{token.AmpAmp, "&&"},
		{token.AmpersandEqual, "&="},
		{token.Pipe, "|"},
		{token.PipePipe, "||"},
		{token.PipeEqual, "|="},
		{token.EOF, ""},
	})
}

func TestPlusMinusStarForms(t *testing.T) {
	assertTokens(t, "+ ++ += - -- -= * ** *=", []tok{
		{token.Plus, "+"},
		{token.PlusPlus, "++"},
		{token.PlusEqual, "+="},
		{token.Minus, "-"},
		{token.MinusMinus, "--"},
		{token.MinusEqual, "-="},
		{token.Star, "*"},
		{token.StarStar, "**"},
		{token.StarEqual, "*="},
		{token.EOF, ""},
	})
}

func TestEqualBangFatArrowForms(t *testing.T) {
	assertTokens(t, "= == ! != =>", []tok{
		{token.Equal, "="},
		{token.EqualEqual, "=="},
		{token.Bang, "!"},
		{token.BangEqual, "!="},
		{token.FatArrow, "=>"},
		{token.EOF, ""},
	})
}

func TestIdentifiersAllowDollarAndUnderscore(t *testing.T) {
	assertTokens(t, "_foo $bar baz_123", []tok{
		{token.Identifier, "_foo"},
		{token.Identifier, "$bar"},
		{token.Identifier, "baz_123"},
		{token.EOF, ""},
	})
}

func TestKeywordsAndElementaryTypesResolveOverIdentifier(t *testing.T) {
	assertTokens(t, "contract uint256 address view myVar", []tok{
		{token.KwContract, "contract"},
		{token.KwUint256, "uint256"},
		{token.KwAddress, "address"},
		{token.KwView, "view"},
		{token.Identifier, "myVar"},
		{token.EOF, ""},
	})
}

func TestNumberLiteralForms(t *testing.T) {
	assertTokens(t, "123 0x1A_2b 1.5 1_000 2e10 1.5e-3", []tok{
		{token.Number, "123"},
		{token.Number, "0x1A_2b"},
		{token.Number, "1.5"},
		{token.Number, "1_000"},
		{token.Number, "2e10"},
		{token.Number, "1.5e-3"},
		{token.EOF, ""},
	})
}

func TestTrailingPeriodNotFollowedByDigitStaysSeparateToken(t *testing.T) {
	assertTokens(t, "1.add(x)", []tok{
		{token.Number, "1"},
		{token.Period, "."},
		{token.Identifier, "add"},
		{token.LParen, "("},
		{token.Identifier, "x"},
		{token.RParen, ")"},
		{token.EOF, ""},
	})
}

func TestStringLiteral(t *testing.T) {
	assertTokens(t, `"hello\nworld"`, []tok{
		{token.String, `"hello\nworld"`},
		{token.EOF, ""},
	})
}

func TestUnterminatedStringIsInvalid(t *testing.T) {
	toks := lexAll(t, "\"abc")
	if toks[0].Tag != token.Invalid {
		t.Fatalf("tag = %v, want Invalid for an unterminated string", toks[0].Tag)
	}
}

func TestStringWithBareNewlineIsInvalid(t *testing.T) {
	toks := lexAll(t, "\"abc\ndef\"")
	if toks[0].Tag != token.Invalid {
		t.Fatalf("tag = %v, want Invalid for a string containing a raw newline", toks[0].Tag)
	}
}

func TestLineCommentIsSkipped(t *testing.T) {
	assertTokens(t, "a // comment\nb", []tok{
		{token.Identifier, "a"},
		{token.Identifier, "b"},
		{token.EOF, ""},
	})
}

func TestBlockCommentIsSkipped(t *testing.T) {
	assertTokens(t, "a /* comment\nspanning lines */ b", []tok{
		{token.Identifier, "a"},
		{token.Identifier, "b"},
		{token.EOF, ""},
	})
}

func TestDocCommentLineIsSurfacedAsItsOwnToken(t *testing.T) {
	assertTokens(t, "/// doc\na", []tok{
		{token.DocCommentLine, "/// doc"},
		{token.Identifier, "a"},
		{token.EOF, ""},
	})
}

func TestDocCommentBlockIsSurfacedAsItsOwnToken(t *testing.T) {
	assertTokens(t, "/** doc */ a", []tok{
		{token.DocCommentBlock, "/** doc */"},
		{token.Identifier, "a"},
		{token.EOF, ""},
	})
}

func TestEmptyBlockCommentIsNotADocComment(t *testing.T) {
	assertTokens(t, "/**/ a", []tok{
		{token.Identifier, "a"},
		{token.EOF, ""},
	})
}

func TestEmptyTripleStarBlockCommentIsNotADocComment(t *testing.T) {
	assertTokens(t, "/***/ a", []tok{
		{token.Identifier, "a"},
		{token.EOF, ""},
	})
}

func TestUnterminatedBlockCommentIsInvalid(t *testing.T) {
	toks := lexAll(t, "/* never closed")
	if toks[0].Tag != token.Invalid {
		t.Fatalf("tag = %v, want Invalid for an unterminated block comment", toks[0].Tag)
	}
}

func TestNextPastEndRepeatsEOF(t *testing.T) {
	tz := lexer.New([]byte("a"))
	tz.Next() // identifier
	first := tz.Next()
	second := tz.Next()
	if first.Tag != token.EOF || second.Tag != token.EOF {
		t.Fatalf("Next() past end = %v, %v, want EOF, EOF", first, second)
	}
	if first.Start != second.Start {
		t.Fatalf("EOF position moved between calls: %d != %d", first.Start, second.Start)
	}
}

func TestLeadingBOMIsSkipped(t *testing.T) {
	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a")...)
	toks := lexer.All(src)
	if toks[0].Tag != token.Identifier || toks[0].Start != 3 {
		t.Fatalf("first token = %+v, want an Identifier starting at offset 3", toks[0])
	}
}

func TestDivisionVersusCommentDisambiguation(t *testing.T) {
	assertTokens(t, "a / b", []tok{
		{token.Identifier, "a"},
		{token.Slash, "/"},
		{token.Identifier, "b"},
		{token.EOF, ""},
	})
}
