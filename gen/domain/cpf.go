// Package domain holds example generators for a concrete business domain,
// built as ordinary clients of gen and prop: nothing here needs access to
// choice.Sequence directly, which is the point of the draw-through-T
// protocol.
package domain

import (
	"strings"
	"unicode"

	"github.com/ewhite/propcheck/gen"
	"github.com/ewhite/propcheck/prop"
)

// CPF generates a valid Brazilian CPF number (9 root digits plus 2 check
// digits), masked as "123.456.789-09" when masked is true and as
// "12345678909" otherwise. Rejection sampling throws away root digit
// sequences that are all the same digit, since those never occur in real
// CPFs; retrying costs nothing special here, since it just draws more bytes
// from the same sequence and the shrinker doesn't care how a value was
// produced, only which bytes it consumed.
func CPF(t *prop.T, name string, masked bool) string {
	root := make([]byte, 9)
	for {
		for i := range root {
			root[i] = byte(t.Draw(1)[0] % 10)
		}
		if !allSameDigits(root) {
			break
		}
	}
	cur := buildCPFString(root)
	if masked {
		cur = MaskCPF(cur)
	}
	t.Record(name, cur)
	return cur
}

// CPFGen is CPF's composable, unnamed form, for embedding inside a larger
// generator via gen.Map, gen.Bind, or a struct-building generator function.
func CPFGen(masked bool) gen.Generator[string] {
	return func(t *prop.T) string {
		root := make([]byte, 9)
		for {
			for i := range root {
				root[i] = byte(t.Draw(1)[0] % 10)
			}
			if !allSameDigits(root) {
				break
			}
		}
		cur := buildCPFString(root)
		if masked {
			cur = MaskCPF(cur)
		}
		return cur
	}
}

// CPFAny draws a CPF that is masked or unmasked with roughly equal
// probability.
func CPFAny(t *prop.T, name string) string {
	masked := gen.BoolGen(t)
	return CPF(t, name, masked)
}

// ---------- domain utilities ----------

// ValidCPF reports whether s is a valid CPF, masked or not.
func ValidCPF(s string) bool {
	raw := UnmaskCPF(s)
	if len(raw) != 11 {
		return false
	}
	b := []byte(raw)
	if allSameByteDigits(b) {
		return false
	}
	d1, d2 := computeCPFVerifiers(b[:9])
	return b[9] == d1 && b[10] == d2
}

// MaskCPF formats an 11-digit CPF string with dots and a dash.
func MaskCPF(raw string) string {
	raw = UnmaskCPF(raw)
	if len(raw) != 11 {
		panic(&prop.ConfigError{Msg: "domain.MaskCPF: needs 11 digits"})
	}
	return raw[0:3] + "." + raw[3:6] + "." + raw[6:9] + "-" + raw[9:11]
}

// UnmaskCPF strips every non-digit rune from s.
func UnmaskCPF(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSameDigits(digits []byte) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

func allSameByteDigits(asciiDigits []byte) bool {
	for i := 1; i < len(asciiDigits); i++ {
		if asciiDigits[i] != asciiDigits[0] {
			return false
		}
	}
	return true
}

// buildCPFString turns 9 root digits (each 0-9) into an 11-digit CPF string
// with its two check digits appended.
func buildCPFString(root []byte) string {
	d1, d2 := computeCPFVerifiersFromDigits(root)
	buf := make([]byte, 0, 11)
	for _, n := range root {
		buf = append(buf, '0'+n)
	}
	buf = append(buf, d1, d2)
	return string(buf)
}

// computeCPFVerifiers computes the two check digits from 9 ASCII digit
// bytes ('0'-'9').
func computeCPFVerifiers(root []byte) (d1, d2 byte) {
	digits := make([]byte, len(root))
	for i, b := range root {
		digits[i] = b - '0'
	}
	return computeCPFVerifiersFromDigits(digits)
}

// computeCPFVerifiersFromDigits computes the two check digits from 9 raw
// digit values (each 0-9), returning them as ASCII bytes.
func computeCPFVerifiersFromDigits(root []byte) (d1, d2 byte) {
	sum := 0
	for i := range 9 {
		sum += int(root[i]) * (10 - i)
	}
	rest := sum % 11
	if rest < 2 {
		d1 = '0'
	} else {
		d1 = byte(11-rest) + '0'
	}

	sum = 0
	for i := range 9 {
		sum += int(root[i]) * (11 - i)
	}
	sum += int(d1-'0') * 2
	rest = sum % 11
	if rest < 2 {
		d2 = '0'
	} else {
		d2 = byte(11-rest) + '0'
	}
	return
}
