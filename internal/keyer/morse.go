package keyer

import "strings"

// morseTable maps uppercase ASCII to dit/dah strings ('.' / '-').
var morseTable = map[byte]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	'.': ".-.-.-", ',': "--..--", '?': "..--..", '/': "-..-.", '=': "-...-",
}

// MorseEncoder translates ASCII text into an Element stream for macro
// playback: a queued string of characters is consumed one element at a
// time, with the keyer's element/gap timing applied by the caller.
type MorseEncoder struct {
	pending []Element
	queue   []byte
}

// NewMorseEncoder returns an empty encoder.
func NewMorseEncoder() *MorseEncoder { return &MorseEncoder{} }

// Enqueue appends text to the encoder's character queue. Unsupported
// bytes are dropped; lowercase letters are upper-cased; spaces become a
// word gap.
func (e *MorseEncoder) Enqueue(text string) {
	for i := 0; i < len(text); i++ {
		e.queue = append(e.queue, text[i])
	}
}

// Idle reports whether both the character queue and the current
// in-flight element stream are exhausted.
func (e *MorseEncoder) Idle() bool {
	return len(e.queue) == 0 && len(e.pending) == 0
}

// Next pops and returns the next Element, loading the next queued
// character's element stream if the current one is exhausted. ok is
// false when the encoder is idle.
func (e *MorseEncoder) Next() (Element, bool) {
	for len(e.pending) == 0 {
		if len(e.queue) == 0 {
			return 0, false
		}
		e.loadNextChar()
	}
	el := e.pending[0]
	e.pending = e.pending[1:]
	return el, true
}

func (e *MorseEncoder) loadNextChar() {
	c := e.queue[0]
	e.queue = e.queue[1:]

	if c == ' ' {
		e.pending = append(e.pending, ElementWordGap)
		return
	}

	code, ok := morseTable[byte(strings.ToUpper(string(c))[0])]
	if !ok {
		return
	}
	for i, sym := range code {
		if i > 0 {
			e.pending = append(e.pending, ElementGap)
		}
		if sym == '.' {
			e.pending = append(e.pending, ElementDit)
		} else {
			e.pending = append(e.pending, ElementDah)
		}
	}
	if len(e.queue) > 0 {
		e.pending = append(e.pending, ElementCharGap)
	}
}
