// Package morse holds the symbol alphabet and the fixed single-letter
// code table (ITU, A-Z only).
package morse

// Symbol is a single keyed element.
type Symbol uint8

const (
	Dot Symbol = iota
	Dash
)

func (s Symbol) String() string {
	if s == Dash {
		return "-"
	}
	return "."
}

// Unknown is returned for any pattern outside the table.
const Unknown byte = '?'

var codes = map[string]byte{
	".-":   'A',
	"-...": 'B',
	"-.-.": 'C',
	"-..":  'D',
	".":    'E',
	"..-.": 'F',
	"--.":  'G',
	"....": 'H',
	"..":   'I',
	".---": 'J',
	"-.-":  'K',
	".-..": 'L',
	"--":   'M',
	"-.":   'N',
	"---":  'O',
	".--.": 'P',
	"--.-": 'Q',
	".-.":  'R',
	"...":  'S',
	"-":    'T',
	"..-":  'U',
	"...-": 'V',
	".--":  'W',
	"-..-": 'X',
	"-.--": 'Y',
	"--..": 'Z',
}

// Pattern renders a symbol sequence as the conventional dot/dash string.
func Pattern(syms []Symbol) string {
	b := make([]byte, len(syms))
	for i, s := range syms {
		if s == Dash {
			b[i] = '-'
		} else {
			b[i] = '.'
		}
	}
	return string(b)
}

// Decode resolves a symbol sequence to its letter. Total: any sequence
// not in the table, including the empty one, yields Unknown.
func Decode(syms []Symbol) byte {
	if c, ok := codes[Pattern(syms)]; ok {
		return c
	}
	return Unknown
}
