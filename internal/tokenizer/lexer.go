package tokenizer

import (
	"unicode/utf8"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
)

// Token is a lexeme of a collapsed node with its byte offset in the lexed text.
type Token struct {
	Kind   string
	Text   string
	Offset int
}

// End returns the byte offset just past the token.
func (t Token) End() int {
	return t.Offset + len(t.Text)
}

// NewTokenizer creates a tokenizer for collapsed BML nodes.
//
// Every character of the input ends up in exactly one token, whitespace
// included, so token lengths add up to byte offsets. Matcher order:
//  1. Whitespace runs
//  2. Quoted scalars (before the symbols they may contain)
//  3. Structural symbols
//  4. Text (last, matches anything else)
func NewTokenizer() shapetokenizer.Tokenizer {
	return shapetokenizer.NewTokenizerWithoutWhitespace(
		SpaceMatcher(),
		QuotedMatcher(),

		shapetokenizer.StringMatcherFunc(TokenMapOpen, string(MapOpen)),
		shapetokenizer.StringMatcherFunc(TokenMapClose, string(MapClose)),
		shapetokenizer.StringMatcherFunc(TokenSeqOpen, string(SeqOpen)),
		shapetokenizer.StringMatcherFunc(TokenSeqClose, string(SeqClose)),
		shapetokenizer.StringMatcherFunc(TokenKeySeparator, string(KeySeparator)),
		shapetokenizer.StringMatcherFunc(TokenItemSeparator, string(ItemSeparator)),
		shapetokenizer.StringMatcherFunc(TokenEmpty, EmptyLiteral),

		TextMatcher(),
	)
}

// Lex splits text into tokens.
//
// Offsets are byte offsets into text. The framework hands back token values
// as runes, so each token's extent is found by counting runes and mapping the
// count back onto text; invalid UTF-8 bytes count as one rune each on both sides.
func Lex(text string) []Token {
	tok := NewTokenizer()
	tok.InitializeFromStream(shapetokenizer.NewStream(text))

	starts := make([]int, 0, len(text)+1)
	for i := range text {
		starts = append(starts, i)
	}
	total := len(starts)
	starts = append(starts, len(text))

	var tokens []Token
	r := 0
	for r < total {
		t, ok := tok.NextToken()
		if !ok || t == nil {
			break
		}
		n := utf8.RuneCountInString(t.ValueString())
		if n == 0 {
			break
		}
		end := r + n
		if end > total {
			end = total
		}
		tokens = append(tokens, Token{
			Kind:   string(t.Kind()),
			Text:   text[starts[r]:starts[end]],
			Offset: starts[r],
		})
		r = end
	}

	if r < total {
		tokens = append(tokens, Token{Kind: TokenText, Text: text[starts[r]:], Offset: starts[r]})
	}
	return tokens
}

// MatchClose returns the index of the token that closes the node opened by
// tokens[open], or NotFound.
//
// A quoted scalar is a single token and closes itself. Brackets count depth
// against their own kind only; quoted tokens are opaque.
func MatchClose(tokens []Token, open int) int {
	if open < 0 || open >= len(tokens) {
		return NotFound
	}

	var opener, closer string
	switch tokens[open].Kind {
	case TokenQuoted:
		return open
	case TokenMapOpen:
		opener, closer = TokenMapOpen, TokenMapClose
	case TokenSeqOpen:
		opener, closer = TokenSeqOpen, TokenSeqClose
	default:
		return NotFound
	}

	depth := 0
	for i := open; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return NotFound
}

// SpaceMatcher creates a matcher for runs of spaces and tabs.
func SpaceMatcher() shapetokenizer.Matcher {
	return func(stream shapetokenizer.Stream) *shapetokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || !isSpaceRune(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		if len(value) == 0 {
			return nil
		}
		return shapetokenizer.NewToken(TokenSpace, value)
	}
}

// QuotedMatcher creates a matcher for quoted scalars.
// Matches: "..." where an escape makes the next character literal.
//
// An opening quote that is never closed still yields a token, of kind
// TokenUnterminated, running to the end of the input, so the caller can
// report where the scalar started.
//
// Performance: Uses ByteStream with FindEscapeOrQuote when available.
func QuotedMatcher() shapetokenizer.Matcher {
	return func(stream shapetokenizer.Stream) *shapetokenizer.Token {
		if byteStream, ok := stream.(shapetokenizer.ByteStream); ok {
			return quotedMatcherByte(byteStream)
		}
		return quotedMatcherRune(stream)
	}
}

func quotedMatcherByte(stream shapetokenizer.ByteStream) *shapetokenizer.Token {
	b, ok := stream.PeekByte()
	if !ok || b != Quote {
		return nil
	}

	startPos := stream.BytePosition()
	stream.NextByte()

	for {
		offset := shapetokenizer.FindEscapeOrQuote(stream.RemainingBytes())
		if offset == -1 {
			break
		}
		for i := 0; i < offset; i++ {
			stream.NextByte()
		}

		b, _ := stream.NextByte()
		if b == Quote {
			value := stream.SliceFrom(startPos)
			return shapetokenizer.NewToken(TokenQuoted, []rune(string(value)))
		}
		if _, ok := stream.NextByte(); !ok {
			break // escape at end of input
		}
	}

	for {
		if _, ok := stream.NextByte(); !ok {
			break
		}
	}
	value := stream.SliceFrom(startPos)
	return shapetokenizer.NewToken(TokenUnterminated, []rune(string(value)))
}

func quotedMatcherRune(stream shapetokenizer.Stream) *shapetokenizer.Token {
	r, ok := stream.PeekChar()
	if !ok || r != rune(Quote) {
		return nil
	}
	stream.NextChar()
	value := []rune{r}

	for {
		r, ok := stream.NextChar()
		if !ok {
			return shapetokenizer.NewToken(TokenUnterminated, value)
		}
		value = append(value, r)

		switch r {
		case rune(Quote):
			return shapetokenizer.NewToken(TokenQuoted, value)
		case rune(Escape):
			escaped, ok := stream.NextChar()
			if !ok {
				return shapetokenizer.NewToken(TokenUnterminated, value)
			}
			value = append(value, escaped)
		}
	}
}

// TextMatcher creates a matcher for everything that is neither whitespace nor
// a symbol. An escape takes the following character into the same token.
func TextMatcher() shapetokenizer.Matcher {
	return func(stream shapetokenizer.Stream) *shapetokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}
			if len(value) > 0 && (isSpaceRune(r) || isSymbolRune(r)) {
				break
			}
			stream.NextChar()
			value = append(value, r)

			if r == rune(Escape) {
				if escaped, ok := stream.PeekChar(); ok {
					stream.NextChar()
					value = append(value, escaped)
				}
			}
		}
		if len(value) == 0 {
			return nil
		}
		return shapetokenizer.NewToken(TokenText, value)
	}
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t'
}

func isSymbolRune(r rune) bool {
	switch r {
	case rune(MapOpen), rune(MapClose), rune(SeqOpen), rune(SeqClose), rune(Quote),
		rune(KeySeparator), rune(ItemSeparator), '~':
		return true
	}
	return false
}
