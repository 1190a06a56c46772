package xdi

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spc-group/go-xdi/internal/queue"
)

// section is the lexer state controlling how a line is classified.
type section int

const (
	sectionVersion section = iota
	sectionHeader
	sectionUserComments
	sectionData
)

var (
	fieldEndRegexp  = regexp.MustCompile(`^#\s*///+\s*`)
	headerEndRegexp = regexp.MustCompile(`^#\s*---+\s*`)
	versionRegexp   = regexp.MustCompile(`^#\s*(XDI/[^ \t]+)((?:[ \t]+[^ \t/]+/[^ \t/]+)*)\s*`)
	headerRegexp    = regexp.MustCompile(`^#\s*([^:]+):(.+)`)
	commentRegexp   = regexp.MustCompile(`^#\s*(.*)`)
)

// lexer classifies physical lines of XDI text and emits tokens.
// It holds the current section as its only mutable state; one lexer
// serves exactly one Tokenize call.
type lexer struct {
	lines   []string
	lineIdx int
	section section
	tokens  queue.Queue[Token]
}

func newLexer(input string) *lexer {
	return &lexer{
		lines:   strings.Split(input, "\n"),
		section: sectionVersion,
		tokens:  queue.NewSliceQueue[Token](4),
	}
}

// emit appends a token to the pending queue.
func (l *lexer) emit(role Role, value string) {
	l.tokens.Enqueue(Token{Value: value, Role: role})
}

// next returns the next token from the input. The second return value is
// false when the input is exhausted.
func (l *lexer) next() (Token, bool, error) {
	for l.tokens.IsEmpty() {
		if l.lineIdx >= len(l.lines) {
			return Token{}, false, nil
		}
		line := l.lines[l.lineIdx]
		l.lineIdx++
		if err := l.lexLine(line); err != nil {
			return Token{}, false, err
		}
	}

	tok, _ := l.tokens.Dequeue()

	return tok, true, nil
}

// lexLine classifies one physical line, emitting zero or more tokens and
// updating the current section. First match wins; the field-end and
// header-end markers fire regardless of the current section.
func (l *lexer) lexLine(line string) error {
	switch {
	case fieldEndRegexp.MatchString(line):
		l.section = sectionUserComments

	case headerEndRegexp.MatchString(line):
		l.section = sectionData

	case l.section == sectionVersion && versionRegexp.MatchString(line):
		l.section = sectionHeader
		groups := versionRegexp.FindStringSubmatch(line)
		l.emit(RoleVersion, groups[1])
		for _, entry := range strings.Fields(groups[2]) {
			l.emit(RoleVersion, entry)
		}

	case l.section == sectionHeader && headerRegexp.MatchString(line):
		groups := headerRegexp.FindStringSubmatch(line)
		l.emit(RoleHeaderName, strings.TrimSpace(groups[1]))
		l.emit(RoleHeaderValue, strings.TrimSpace(groups[2]))

	case l.section == sectionUserComments && commentRegexp.MatchString(line):
		groups := commentRegexp.FindStringSubmatch(line)
		l.emit(RoleUserComment, groups[1])

	case l.section == sectionData && strings.HasPrefix(line, "#"):
		for _, label := range strings.Fields(strings.TrimLeft(line, "#")) {
			l.emit(RoleColumnLabel, label)
		}

	case l.section == sectionData:
		for _, datum := range strings.Fields(line) {
			l.emit(RoleDatum, datum)
		}

	default:
		return fmt.Errorf("%w: unrecognized line %q", ErrMalformed, line)
	}

	return nil
}

// Tokenize turns XDI formatted text into a sequence of tokens.
//
// Each line is classified against the grammar of the current section; a
// line that matches nothing aborts the whole tokenization with an error
// wrapping ErrMalformed that carries the offending line. No partial
// token sequence is returned.
func Tokenize(text string) ([]Token, error) {
	l := newLexer(text)

	var tokens []Token
	for {
		tok, ok, err := l.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
