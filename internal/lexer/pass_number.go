package lexer

import "github.com/cursorgroup/sqlbind/internal/token"

// passNumber extracts numeric literals from the remaining working buffer.
// By the time this pass runs, only digits, '.', signs, operators and
// unclaimed exponent-marker 'e'/'E' characters remain unblanked.
func (lx *lexer) passNumber() {
	pos := 0
	for {
		d0 := lx.findDigitOrDot(pos)
		if d0 < 0 {
			return
		}

		start, numEnd, ok := lx.matchNumber(d0)
		if !ok {
			pos = d0 + 1
			continue
		}

		text := string(lx.orig[start:numEnd])
		lx.emit(start, text, token.Number)
		lx.blank(start, numEnd-start)
		pos = numEnd
	}
}

func (lx *lexer) findDigitOrDot(from int) int {
	buf := lx.buf
	for i := from; i < len(buf); i++ {
		if isDigit(buf[i]) || buf[i] == '.' {
			return i
		}
	}
	return -1
}

// matchNumber determines whether the digit/dot run starting at d0 forms a
// valid number and, if so, its full extent including any absorbed leading
// sign. start is the token's start offset (the sign's offset if absorbed,
// else d0); numEnd is the exclusive end offset.
func (lx *lexer) matchNumber(d0 int) (start, numEnd int, ok bool) {
	buf := lx.buf

	digitsEnd, sawDigit, _ := lx.scanDigitsAndDot(d0)
	if !sawDigit {
		return 0, 0, false
	}

	end := digitsEnd
	if end < len(buf) && (buf[end] == 'e' || buf[end] == 'E') {
		expEnd, ok2 := lx.scanExponent(end)
		if ok2 {
			end = expEnd
		}
	}

	signPos, signOK := lx.signStart(d0)
	if signOK && lx.signEligible(signPos) {
		return signPos, end, true
	}
	return d0, end, true
}

// scanDigitsAndDot consumes the mantissa: digits, optionally a single '.'
// followed by optional digits, or a leading '.' that must be followed by
// at least one digit.
func (lx *lexer) scanDigitsAndDot(d0 int) (end int, sawDigit, sawDot bool) {
	buf := lx.buf
	i := d0
	if buf[i] == '.' {
		sawDot = true
		i++
		j := i
		for j < len(buf) && isDigit(buf[j]) {
			j++
		}
		if j == i {
			return d0, false, true // bare '.' not followed by a digit: no match
		}
		return j, true, true
	}

	for i < len(buf) && isDigit(buf[i]) {
		i++
		sawDigit = true
	}
	if i < len(buf) && buf[i] == '.' {
		sawDot = true
		i++
		for i < len(buf) && isDigit(buf[i]) {
			i++
		}
	}
	return i, sawDigit, sawDot
}

// scanExponent consumes an 'e'/'E' exponent marker, an optional sign, and
// its digits, starting at the offset of the 'e'/'E' itself.
func (lx *lexer) scanExponent(at int) (end int, ok bool) {
	buf := lx.buf
	i := at + 1
	if i < len(buf) && (buf[i] == '+' || buf[i] == '-') {
		i++
	}
	j := i
	for j < len(buf) && isDigit(buf[j]) {
		j++
	}
	if j == i {
		return at, false
	}
	return j, true
}

// signStart looks backward from d0, across at most one run of whitespace,
// for a '+'/'-' sign character that might be absorbed into the number.
func (lx *lexer) signStart(d0 int) (pos int, ok bool) {
	buf := lx.buf
	i := d0 - 1
	for i >= 0 && isSpace(buf[i]) {
		i--
	}
	if i < 0 {
		return 0, false
	}
	if buf[i] == '+' || buf[i] == '-' {
		return i, true
	}
	return 0, false
}

// signEligible implements the sign-absorption rule: a sign is part of the
// number only if the previous non-whitespace character in the ORIGINAL
// source is an operator, or lies inside an already-emitted keyword token.
// A sign with nothing before it (start of statement) is eligible by
// default — there is no binary operand for it to apply to.
func (lx *lexer) signEligible(signPos int) bool {
	orig := lx.orig
	i := signPos - 1
	for i >= 0 && isSpace(orig[i]) {
		i--
	}
	if i < 0 {
		return true
	}
	if isOperatorByte(orig[i]) {
		return true
	}
	return lx.offsetInKeyword(i)
}

func (lx *lexer) offsetInKeyword(offset int) bool {
	for _, t := range lx.tokens {
		if t.Kind != token.Keyword {
			continue
		}
		if offset >= t.Start && offset < t.Start+len(t.Text) {
			return true
		}
	}
	return false
}
