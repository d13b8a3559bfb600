package domain

import (
	jerrors "github.com/mouse-blink/jstruct/internal/errors"
)

type scanState int

const (
	scanNormal scanState = iota
	scanSawSlash
	scanLineComment
	scanBlockComment
	scanBlockCommentSawStar
	scanQuoted
	scanQuotedEscape
)

// FindUnquotedTerminator scans text forward from startOffset and returns the
// offset of the first terminator that is not inside a // line comment, a /* */
// block comment or a string/char literal. It fails with NotFound when the
// text is exhausted.
func FindUnquotedTerminator(text string, startOffset int, terminator byte) (int, error) {
	if startOffset < 0 || startOffset > len(text) {
		return -1, jerrors.Newf(jerrors.CodeInvariantViolation, "scan start %d outside text of length %d", startOffset, len(text))
	}

	state := scanNormal

	var quote byte

	for i := startOffset; i < len(text); i++ {
		c := text[i]

		switch state {
		case scanSawSlash:
			switch c {
			case '/':
				state = scanLineComment
				continue
			case '*':
				state = scanBlockComment
				continue
			}

			// A lone slash is not special: re-examine c in the normal state.
			state = scanNormal

			fallthrough
		case scanNormal:
			switch {
			case c == terminator:
				return i, nil
			case c == '/':
				state = scanSawSlash
			case c == '"' || c == '\'':
				quote = c
				state = scanQuoted
			}
		case scanLineComment:
			if c == '\n' {
				state = scanNormal
			}
		case scanBlockComment:
			if c == '*' {
				state = scanBlockCommentSawStar
			}
		case scanBlockCommentSawStar:
			switch c {
			case '/':
				state = scanNormal
			case '*':
				// "**/" still closes the comment.
			default:
				state = scanBlockComment
			}
		case scanQuoted:
			switch c {
			case '\\':
				state = scanQuotedEscape
			case quote:
				state = scanNormal
			case '\n':
				// Unterminated literal: do not swallow the rest of the file.
				state = scanNormal
			}
		case scanQuotedEscape:
			state = scanQuoted
		}
	}

	return -1, jerrors.Newf(jerrors.CodeNotFound, "terminator %q not found after offset %d", terminator, startOffset)
}
