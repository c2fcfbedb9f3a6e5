package gularen

import "testing"

func kinds(toks []Token) []TokenKind {
	out := make([]TokenKind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}

	return out
}

func TestLex_SimpleParagraph(t *testing.T) {
	got := kinds(Lex([]byte("hello world\n")))
	want := []TokenKind{TokenText, TokenNewline}
	assertKinds(t, got, want)
}

func TestLex_BlankLineProducesNewlinePlus(t *testing.T) {
	got := kinds(Lex([]byte("a\n\nb\n")))
	want := []TokenKind{TokenText, TokenNewlinePlus, TokenText, TokenNewline}
	assertKinds(t, got, want)
}

// TestLex_IndentPrefixWellFormed checks token-stream well-formedness:
// every indentOpen has a later matching indentClose before EOF.
func TestLex_IndentPrefixWellFormed(t *testing.T) {
	toks := Lex([]byte("a\n\tb\nc\n"))
	depth := 0
	for _, tok := range toks {
		switch tok.Kind {
		case TokenIndentOpen:
			depth++
		case TokenIndentClose:
			depth--
			if depth < 0 {
				t.Fatal("indentClose with no matching indentOpen")
			}
		}
	}
	if depth != 0 {
		t.Fatalf("got %d unclosed indentOpen tokens, want 0", depth)
	}
}

// TestLex_BlockquotePrefixWellFormed mirrors the indent check for the
// blockquote prefix element.
func TestLex_BlockquotePrefixWellFormed(t *testing.T) {
	toks := Lex([]byte("a\n/ b\nc\n"))
	depth := 0
	for _, tok := range toks {
		switch tok.Kind {
		case TokenBlockquoteOpen:
			depth++
		case TokenBlockquoteClose:
			depth--
			if depth < 0 {
				t.Fatal("blockquoteClose with no matching blockquoteOpen")
			}
		}
	}
	if depth != 0 {
		t.Fatalf("got %d unclosed blockquoteOpen tokens, want 0", depth)
	}
}

// TestLex_FenceWellFormed checks every fenceOpen is paired with a
// fenceClose.
func TestLex_FenceWellFormed(t *testing.T) {
	toks := Lex([]byte("---- go\nfmt.Println()\n----\n"))
	opens, closes := 0, 0
	for _, tok := range toks {
		if tok.Kind == TokenFenceOpen {
			opens++
		}
		if tok.Kind == TokenFenceClose {
			closes++
		}
	}
	if opens != closes || opens == 0 {
		t.Fatalf("got %d fenceOpen and %d fenceClose, want equal and nonzero", opens, closes)
	}
}

// TestLex_PrefixDiffIdempotent: lexing a line whose prefix exactly
// repeats the previous line's prefix emits no open/close pair for the
// unchanged elements.
func TestLex_PrefixDiffIdempotent(t *testing.T) {
	toks := Lex([]byte("\ta\n\tb\n"))
	var opens, closes int
	for _, tok := range toks {
		if tok.Kind == TokenIndentOpen {
			opens++
		}
		if tok.Kind == TokenIndentClose {
			closes++
		}
	}
	if opens != 1 {
		t.Errorf("got %d indentOpen for a repeated prefix, want exactly 1", opens)
	}
	if closes != 1 {
		t.Errorf("got %d indentClose (only at EOF), want exactly 1", closes)
	}
}

func TestLex_EmojiAndTags(t *testing.T) {
	toks := Lex([]byte("@user #topic :smile:\n"))
	got := kinds(toks)
	want := []TokenKind{TokenAccountTag, TokenText, TokenHashTag, TokenText, TokenEmoji, TokenNewline}
	assertKinds(t, got, want)
	if toks[0].Text() != "user" {
		t.Errorf("got account tag %q, want \"user\"", toks[0].Text())
	}
	if toks[2].Text() != "topic" {
		t.Errorf("got hash tag %q, want \"topic\"", toks[2].Text())
	}
	if toks[4].Text() != "smile" {
		t.Errorf("got emoji code %q, want \"smile\"", toks[4].Text())
	}
}

// TestLex_DateTimeKeepsSourceOrder checks that text preceding a
// date/time literal is flushed before the dateTime token, keeping the
// token stream in source order.
func TestLex_DateTimeKeepsSourceOrder(t *testing.T) {
	toks := Lex([]byte("at <2024-01-15> sharp\n"))
	got := kinds(toks)
	want := []TokenKind{TokenText, TokenDateTime, TokenText, TokenNewline}
	assertKinds(t, got, want)
	if toks[0].Text() != "at " {
		t.Errorf("got leading text %q, want \"at \"", toks[0].Text())
	}
	if toks[1].Text() != "2024-01-15" {
		t.Errorf("got dateTime content %q, want \"2024-01-15\"", toks[1].Text())
	}
}

func TestLex_DateTimePair(t *testing.T) {
	toks := Lex([]byte("<2024-01-15 09:30>\n"))
	if toks[0].Kind != TokenDateTime || toks[0].Text() != "2024-01-15 09:30" {
		t.Fatalf("got %s %q, want dateTime \"2024-01-15 09:30\"", toks[0].Kind, toks[0].Text())
	}
}

// TestLex_AngleNotDateTimeFoldsIntoText: a '<' span that is not a valid
// date/time literal stays ordinary text.
func TestLex_AngleNotDateTimeFoldsIntoText(t *testing.T) {
	toks := Lex([]byte("a <b> c\n"))
	got := kinds(toks)
	want := []TokenKind{TokenText, TokenNewline}
	assertKinds(t, got, want)
	if toks[0].Text() != "a <b> c" {
		t.Errorf("got text %q, want \"a <b> c\"", toks[0].Text())
	}
}

// TestLex_ProseParensFoldIntoText: parentheses are only a resource
// label when they hug a closing bracket; in prose they stay in the
// text run.
func TestLex_ProseParensFoldIntoText(t *testing.T) {
	toks := Lex([]byte("call (see below) now\n"))
	got := kinds(toks)
	want := []TokenKind{TokenText, TokenNewline}
	assertKinds(t, got, want)
	if toks[0].Text() != "call (see below) now" {
		t.Errorf("got text %q, want \"call (see below) now\"", toks[0].Text())
	}
}

func TestLex_LinkLabelParens(t *testing.T) {
	got := kinds(Lex([]byte("[https://example.com](home)\n")))
	want := []TokenKind{
		TokenSquareOpen, TokenRaw, TokenSquareClose,
		TokenParenOpen, TokenRaw, TokenParenClose, TokenNewline,
	}
	assertKinds(t, got, want)
}

func TestLex_FootnoteAndCitation(t *testing.T) {
	got := kinds(Lex([]byte("fact^(a note) and ^[smith]\n")))
	want := []TokenKind{
		TokenText, TokenCaret, TokenParenOpen, TokenRaw, TokenParenClose,
		TokenText, TokenCaret, TokenSquareOpen, TokenRaw, TokenSquareClose,
		TokenNewline,
	}
	assertKinds(t, got, want)
}

func TestLex_EscapeProducesLiteralText(t *testing.T) {
	toks := Lex([]byte(`\*not bold\*` + "\n"))
	got := kinds(toks)
	want := []TokenKind{TokenText, TokenText, TokenText, TokenNewline}
	assertKinds(t, got, want)
	if toks[0].Text() != "*" || toks[1].Text() != "not bold" || toks[2].Text() != "*" {
		t.Errorf("got %q %q %q, want \"*\" \"not bold\" \"*\"", toks[0].Text(), toks[1].Text(), toks[2].Text())
	}
}

func assertKinds(t *testing.T, got, want []TokenKind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}
