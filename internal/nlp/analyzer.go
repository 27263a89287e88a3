package nlp

import "errors"

// ErrNoAnalyzer indica que no hay analizador linguistico disponible.
// El extractor debe fallar con este error en vez de inventar conteos.
var ErrNoAnalyzer = errors.New("linguistic analyzer unavailable")

// Analysis es el resultado de segmentar un texto.
type Analysis struct {
	Sentences []string
	Tokens    []string // en minusculas
}

// Analyzer define el contrato del colaborador de analisis linguistico:
// segmentacion de oraciones y tokenizacion con texto en minusculas.
type Analyzer interface {
	Analyze(text string) (Analysis, error)
}
