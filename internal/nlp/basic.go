package nlp

import (
	"strings"
	"unicode"
)

// BasicAnalyzer es el analizador por defecto, basado en reglas.
// Segmenta oraciones por puntuacion terminal y tokeniza por secuencias
// de letras (con apostrofes internos), en minusculas.
type BasicAnalyzer struct{}

func NewBasicAnalyzer() *BasicAnalyzer {
	return &BasicAnalyzer{}
}

func (a *BasicAnalyzer) Analyze(text string) (Analysis, error) {
	return Analysis{
		Sentences: splitSentences(text),
		Tokens:    tokenize(text),
	}, nil
}

func splitSentences(text string) []string {
	var out []string
	var b strings.Builder
	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(b.String()); s != "" && hasLetter(s) {
				out = append(out, s)
			}
			b.Reset()
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" && hasLetter(s) {
		out = append(out, s)
	}
	return out
}

func tokenize(text string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, strings.ToLower(b.String()))
			b.Reset()
		}
	}
	runes := []rune(text)
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '\'' && b.Len() > 0 && i+1 < len(runes) && unicode.IsLetter(runes[i+1]):
			// apostrofe interno: don't, I'm
			b.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return tokens
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
