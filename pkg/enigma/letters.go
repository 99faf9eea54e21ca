package enigma

const alphabetSize = 26

// letterIndex maps both upper and lower case latin letters onto 0-25.
// Anything else is reported as not a letter and must pass through unchanged.
func letterIndex(r rune) (int, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), true
	default:
		return 0, false
	}
}

func indexLetter(idx int) rune {
	return rune('A' + mod(idx))
}

func mod(n int) int {
	n %= alphabetSize
	if n < 0 {
		n += alphabetSize
	}
	return n
}

func IsLetter(r rune) bool {
	_, ok := letterIndex(r)
	return ok
}

// ParseLetter accepts a single latin letter of any case and returns its upper case form.
func ParseLetter(s string) (rune, bool) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, false
	}
	idx, ok := letterIndex(runes[0])
	if !ok {
		return 0, false
	}
	return indexLetter(idx), true
}
