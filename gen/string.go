package gen

import "github.com/ewhite/propcheck/prop"

// Common alphabets, kept pure ASCII to avoid UTF-8 surprises in reports.
const (
	AlphabetLower    = "abcdefghijklmnopqrstuvwxyz"
	AlphabetUpper    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	AlphabetAlpha    = AlphabetLower + AlphabetUpper
	AlphabetDigits   = "0123456789"
	AlphabetAlphaNum = AlphabetAlpha + AlphabetDigits
	AlphabetASCII    = AlphabetAlphaNum + " !\"#$%&'()*+,-./:;<=>?@[\\]^_{|}~"
)

// stringContinuationThreshold gives roughly a 10% chance per character to
// stop a string: a drawn byte <= the threshold stops the loop.
const stringContinuationThreshold = 25

// asciiLo and asciiHi bound the printable ASCII range a raw AsciiChar byte
// is reduced into. The minimum, 0x20 (space), is what strings shrink their
// characters towards.
const (
	asciiLo = 0x20
	asciiHi = 0x7E
)

// AsciiChar draws one byte and reduces it into the printable ASCII range
// [0x20, 0x7E], shrinking towards space, the lowest printable character.
func AsciiChar(t *prop.T, name string) byte {
	b := t.Draw(1)[0]
	v := asciiLo + b%(asciiHi-asciiLo+1)
	t.Record(name, v)
	return v
}

// AsciiCharGen is AsciiChar's composable, unnamed form.
var AsciiCharGen Generator[byte] = func(t *prop.T) byte {
	b := t.Draw(1)[0]
	return asciiLo + b%(asciiHi-asciiLo+1)
}

// String draws a variable-length string over alphabet (AlphabetAlphaNum if
// empty), using the same continuation-byte loop as SliceOf but with a
// smaller, ~10%, per-character stop chance. A byte <= 25 stops the loop, so
// an all-zero sequence yields the empty string.
func String(t *prop.T, name string, alphabet string) string {
	if alphabet == "" {
		alphabet = AlphabetAlphaNum
	}
	var b []byte
	for {
		stop := t.Draw(1)[0]
		if stop <= stringContinuationThreshold {
			break
		}
		idx := t.Draw(1)[0]
		b = append(b, alphabet[int(idx)%len(alphabet)])
	}
	result := string(b)
	t.Record(name, result)
	return result
}

func StringAlpha(t *prop.T, name string) string    { return String(t, name, AlphabetAlpha) }
func StringAlphaNum(t *prop.T, name string) string { return String(t, name, AlphabetAlphaNum) }
func StringDigits(t *prop.T, name string) string   { return String(t, name, AlphabetDigits) }

// StringASCII draws a variable-length string over the full printable ASCII
// range, using the same continuation-byte loop as String but decoding each
// character through AsciiCharGen's asciiLo+b%range arithmetic rather than
// indexing into an alphabet table. AlphabetASCII is not sorted by code
// point (it's AlphabetAlphaNum plus punctuation), so reducing a drawn byte
// towards zero would shrink each character towards 'a' instead of towards
// space; the arithmetic mapping shrinks towards space, the lowest printable
// character, regardless of how AlphabetASCII happens to be ordered.
func StringASCII(t *prop.T, name string) string {
	var b []byte
	for {
		stop := t.Draw(1)[0]
		if stop <= stringContinuationThreshold {
			break
		}
		b = append(b, AsciiCharGen(t))
	}
	result := string(b)
	t.Record(name, result)
	return result
}
