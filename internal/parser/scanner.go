package parser

import "strings"

// scanner walks a statement's raw text. Keyword matching is case-insensitive
// and whitespace-flexible; everything else is consumed verbatim so literal
// text (quotes included) survives untouched.
type scanner struct {
	input string
	pos   int
}

func newScanner(input string) *scanner {
	return &scanner{input: input}
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.input) && isSpace(s.input[s.pos]) {
		s.pos++
	}
}

func (s *scanner) atEnd() bool {
	s.skipSpace()
	return s.pos >= len(s.input)
}

// matchKeyword consumes the given keyword sequence if it appears next,
// case-insensitively and on word boundaries. The position is untouched when
// the match fails.
func (s *scanner) matchKeyword(words ...string) bool {
	save := s.pos
	s.skipSpace()
	end, ok := tryKeywordAt(s.input, s.pos, words)
	if !ok {
		s.pos = save
		return false
	}
	s.pos = end
	return true
}

// readIdentifier consumes the next run of word characters, skipping leading
// whitespace. Returns "" when no identifier is present.
func (s *scanner) readIdentifier() string {
	s.skipSpace()
	start := s.pos
	for s.pos < len(s.input) && isWordChar(s.input[s.pos]) {
		s.pos++
	}
	return s.input[start:s.pos]
}

// expect consumes the given punctuation character, skipping leading
// whitespace.
func (s *scanner) expect(ch byte) bool {
	s.skipSpace()
	if s.pos < len(s.input) && s.input[s.pos] == ch {
		s.pos++
		return true
	}
	return false
}

// readUntil returns the raw text before the next occurrence of ch and
// consumes through ch. The boolean is false when ch never occurs.
func (s *scanner) readUntil(ch byte) (string, bool) {
	idx := strings.IndexByte(s.input[s.pos:], ch)
	if idx < 0 {
		return "", false
	}
	segment := s.input[s.pos : s.pos+idx]
	s.pos += idx + 1
	return segment, true
}

// readUntilKeyword returns the raw text before the next whole-word
// occurrence of the keyword sequence and consumes through it. When the
// keyword never occurs, the remainder of the input is returned and the
// boolean is false.
func (s *scanner) readUntilKeyword(words ...string) (string, bool) {
	for i := s.pos; i < len(s.input); i++ {
		if i > 0 && isWordChar(s.input[i-1]) {
			continue
		}
		if end, ok := tryKeywordAt(s.input, i, words); ok {
			segment := s.input[s.pos:i]
			s.pos = end
			return segment, true
		}
	}
	segment := s.input[s.pos:]
	s.pos = len(s.input)
	return segment, false
}

// rest returns everything from the current position onward and consumes it.
func (s *scanner) rest() string {
	segment := s.input[s.pos:]
	s.pos = len(s.input)
	return segment
}

// tryKeywordAt matches a whole-word keyword sequence starting at i; words
// after the first require at least one whitespace character before them.
func tryKeywordAt(input string, i int, words []string) (int, bool) {
	j := i
	for w, word := range words {
		if w > 0 {
			start := j
			for j < len(input) && isSpace(input[j]) {
				j++
			}
			if j == start {
				return 0, false
			}
		}
		if j+len(word) > len(input) || !strings.EqualFold(input[j:j+len(word)], word) {
			return 0, false
		}
		j += len(word)
	}
	if j < len(input) && isWordChar(input[j]) {
		return 0, false
	}
	return j, true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isWordChar(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
