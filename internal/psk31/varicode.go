// Package psk31 implements the Varicode codec and the receive/transmit
// DSP (Costas loop carrier recovery, Gardner symbol timing, BPSK
// modulation with raised-cosine phase shaping) for a 31.25-baud PSK31
// link.
package psk31

// varicodeTable is the variable-length code: every code starts and ends
// with a '1' bit and never contains two consecutive '0' bits, so a
// streaming decoder can always recognize the two-zero inter-character
// delimiter unambiguously. Shorter codes go to more frequent characters.
var varicodeTable = map[byte]string{
	' ': "1", 'e': "11", 't': "101", 'a': "111", 'o': "1101",
	'n': "1011", 'i': "10101", 'r': "1111", 's': "11101", 'h': "11011",
	'd': "110101", 'l': "10111", 'c': "101101", 'u': "101011", 'm': "1010101",
	'f': "11111", 'w': "111101", 'y': "111011", 'g': "1110101", 'p': "110111",
	'b': "1101101", 'v': "1101011", 'k': "11010101", 'x': "101111", 'q': "1011101",
	'j': "1011011", 'z': "10110101",
	'A': "1010111", 'B': "10101101", 'C': "10101011", 'D': "101010101", 'E': "111111",
	'F': "1111111", 'G': "10101111", 'H': "10110111", 'I': "10111011", 'J': "10111101",
	'K': "10111111", 'L': "11011111", 'M': "11101111", 'N': "11110111", 'O': "11111011",
	'P': "11111101", 'Q': "11111111", 'R': "101010111", 'S': "101011011", 'T': "101011101",
	'U': "101011111", 'V': "101101011", 'W': "101101101", 'X': "101101111", 'Y': "101110101",
	'Z': "101110111",
	'0': "1111101", '1': "1111011", '2': "11110101", '3': "1110111", '4': "11101101",
	'5': "11101011", '6': "111010101", '7': "1101111", '8': "11011101", '9': "11011011",
	'.': "110110101", ',': "11010111", '?': "110101101",
	'\n': "110101011", '\r': "1011111",
	'!': "101111011", '"': "101111101", '#': "101111111", '$': "110101111", '%': "110110111",
	'&': "110111011", '\'': "110111101", '(': "110111111", ')': "111010111", '*': "111011011",
	'+': "111011101", '-': "111011111", '/': "111101011", ':': "111101101", ';': "111101111",
	'=': "111110101", '@': "111110111", '[': "111111011", ']': "111111101", '^': "111111111",
	'_': "1010101011", '`': "1010101101", '{': "1010101111", '|': "1010110101", '}': "1010110111",
	'~': "1010111011", '\\': "1010111101", '<': "1010111111", '>': "1011010101",
}

var varicodeDecodeTable = buildDecodeTable()

func buildDecodeTable() map[string]byte {
	m := make(map[string]byte, len(varicodeTable))
	for ch, code := range varicodeTable {
		m[code] = ch
	}
	return m
}

// Encode returns the MSB-first bit sequence (as a string of '0'/'1') for
// ch, and whether ch has a table entry.
func Encode(ch byte) (string, bool) {
	code, ok := varicodeTable[ch]
	return code, ok
}
