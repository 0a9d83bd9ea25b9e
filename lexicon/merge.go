package lexicon

import (
	"unicode"
	"unicode/utf8"
)

// fragment classifies the most recently emitted token.
type fragment int

const (
	fragmentNone       fragment = iota // no tokens yet
	fragmentPlain                      // ordinary word
	fragmentPossessive                 // exactly "'s"
	fragmentLoneS                      // exactly "s"
	fragmentDigits                     // ends in a digit
)

// merger collects words produced right to left by backtracking and glues
// wrongly split fragments back onto their neighbours. tokens holds the
// output in reverse reading order; the last element is the word that follows
// the next pushed substring.
//
// A pushed substring is consumed exactly once: it either merges into the
// last token or becomes a new one.
type merger struct {
	tokens []string
}

func (m *merger) last() string {
	return m.tokens[len(m.tokens)-1]
}

func (m *merger) state() fragment {
	if len(m.tokens) == 0 {
		return fragmentNone
	}
	last := m.last()
	switch {
	case last == "'s":
		return fragmentPossessive
	case last == "s":
		return fragmentLoneS
	case endsInDigit(last):
		return fragmentDigits
	default:
		return fragmentPlain
	}
}

func (m *merger) push(str string) {
	switch m.state() {
	case fragmentNone:
		m.tokens = append(m.tokens, str)

	case fragmentPossessive, fragmentLoneS:
		// "stem" + "'s" / "stem" + "s"
		m.prepend(str)

	case fragmentDigits:
		if str == "'" {
			m.prepend(str)
			return
		}
		if !endsInDigit(str) {
			m.tokens = append(m.tokens, str)
			return
		}
		// Move the whole trailing digit run onto the number, not only its
		// last rune: moving one rune would drop the rest of a multi-digit
		// run. A leading non-digit remainder stays a word of its own.
		cut := digitRunStart(str)
		m.prepend(str[cut:])
		if cut > 0 {
			m.tokens = append(m.tokens, str[:cut])
		}

	default:
		if str == "'" {
			m.prepend(str)
			return
		}
		m.tokens = append(m.tokens, str)
	}
}

func (m *merger) prepend(str string) {
	m.tokens[len(m.tokens)-1] = str + m.last()
}

func endsInDigit(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	return size > 0 && unicode.IsDigit(r)
}

// digitRunStart returns the byte offset where the trailing digit run of s begins.
func digitRunStart(s string) int {
	cut := len(s)
	for cut > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:cut])
		if !unicode.IsDigit(r) {
			break
		}
		cut -= size
	}
	return cut
}
