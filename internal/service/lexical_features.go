package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mind-clone/internal/domain"
	"mind-clone/internal/nlp"
)

// ErrEmptyText indica que se pidio analizar una respuesta vacia.
var ErrEmptyText = errors.New("response text is empty")

// Indicadores cognitivos. El matching es por substring en minusculas
// (no por limites de palabra): "plan" tambien matchea dentro de
// "planning". Ese comportamiento alimenta los umbrales posteriores y se
// mantiene a proposito.
var analyticalPatterns = []string{
	"first", "second", "third", "next", "then", "therefore", "because",
	"analyze", "break down", "step by step", "systematic", "logical",
	"evidence", "data", "facts", "research", "study", "examine",
	"consider", "evaluate", "assess", "measure", "compare",
}

var intuitivePatterns = []string{
	"feel", "sense", "instinct", "gut", "intuition", "seems like",
	"appears", "impression", "hunch", "vibe", "energy", "flow",
	"natural", "organic", "spontaneous", "instinctively", "naturally",
}

var creativePatterns = []string{
	"imagine", "what if", "brainstorm", "creative", "innovative",
	"outside the box", "alternative", "unconventional", "novel",
	"original", "unique", "artistic", "inspiration", "envision",
}

var systematicPatterns = []string{
	"process", "procedure", "method", "approach", "framework",
	"structure", "organize", "plan", "schedule", "timeline",
	"phases", "stages", "sequence", "order", "prioritize",
}

var uncertaintyWords = []string{
	"maybe", "perhaps", "possibly", "might", "could",
	"probably", "likely", "uncertain", "unsure", "guess",
}

var certainWords = []string{
	"definitely", "certainly", "absolutely", "sure", "confident", "always", "never",
}

var uncertainWords = []string{
	"maybe", "perhaps", "possibly", "might", "could", "sometimes", "usually",
}

var emotionWords = []string{
	"feel", "excited", "worried", "happy", "sad", "angry",
	"frustrated", "confident", "nervous", "passionate", "enjoy",
	"love", "hate", "fear", "hope", "concerned", "pleased",
}

var personalPronouns = map[string]struct{}{
	"i": {}, "me": {}, "my": {}, "mine": {}, "myself": {},
	"we": {}, "us": {}, "our": {}, "ours": {},
}

// Listas adicionales para escenarios de resolucion de problemas.
var solutionWords = []string{"solve", "solution", "fix", "resolve", "address", "handle", "deal with", "tackle"}
var processWords = []string{"step", "process", "approach", "method", "way", "how", "procedure"}
var stakeholderWords = []string{"team", "people", "stakeholder", "client", "customer", "user", "others", "everyone"}
var riskWords = []string{"risk", "danger", "problem", "issue", "challenge", "difficulty", "obstacle", "concern"}
var resourceWords = []string{"time", "money", "budget", "resource", "cost", "effort", "energy", "capacity"}
var timeWords = []string{"deadline", "schedule", "timeline", "urgent", "priority", "quick", "slow", "immediate"}
var collaborationWords = []string{"together", "collaborate", "teamwork", "cooperation", "partnership", "joint", "shared"}
var implementationWords = []string{"implement", "execute", "deploy", "build", "create", "develop", "action", "do"}

// ResponseAnalyzer convierte una respuesta de texto libre en su bolsa de
// indicadores lexicales. Es una funcion pura del texto: misma entrada,
// mismos conteos.
type ResponseAnalyzer struct {
	analyzer nlp.Analyzer
}

func NewResponseAnalyzer(analyzer nlp.Analyzer) *ResponseAnalyzer {
	return &ResponseAnalyzer{analyzer: analyzer}
}

// Analyze extrae los indicadores base de una respuesta.
// Falla con nlp.ErrNoAnalyzer si no hay analizador: los campos de
// oraciones y pronombres no se inventan nunca.
func (r *ResponseAnalyzer) Analyze(text, context string) (domain.ResponseFeatures, error) {
	if strings.TrimSpace(text) == "" {
		return domain.ResponseFeatures{}, ErrEmptyText
	}
	if r == nil || r.analyzer == nil {
		return domain.ResponseFeatures{}, nlp.ErrNoAnalyzer
	}

	analysis, err := r.analyzer.Analyze(text)
	if err != nil {
		return domain.ResponseFeatures{}, fmt.Errorf("analyze text: %w", err)
	}

	lower := strings.ToLower(text)
	words := strings.Fields(text)
	sentenceCount := len(analysis.Sentences)

	denom := sentenceCount
	if denom < 1 {
		denom = 1
	}

	pronounCount := 0
	for _, tok := range analysis.Tokens {
		if _, ok := personalPronouns[tok]; ok {
			pronounCount++
		}
	}

	return domain.ResponseFeatures{
		Text:              text,
		Context:           context,
		Timestamp:         time.Now().UTC(),
		Length:            len(text),
		WordCount:         len(words),
		SentenceCount:     sentenceCount,
		AvgSentenceLength: float64(len(words)) / float64(denom),
		ReadabilityScore:  nlp.FleschReadingEase(text),
		QuestionCount:     strings.Count(text, "?"),
		ExclamationCount:  strings.Count(text, "!"),
		UncertaintyWords:  presenceCount(lower, uncertaintyWords),
		AnalyticalCount:   presenceCount(lower, analyticalPatterns),
		IntuitiveCount:    presenceCount(lower, intuitivePatterns),
		CreativeCount:     presenceCount(lower, creativePatterns),
		SystematicCount:   presenceCount(lower, systematicPatterns),
		PersonalPronouns:  pronounCount,
		EmotionWords:      presenceCount(lower, emotionWords),
		CertaintyLevel:    assessCertainty(lower),
	}, nil
}

// AnalyzeProblemSolving agrega los ocho indicadores de escenario sobre el
// analisis base.
func (r *ResponseAnalyzer) AnalyzeProblemSolving(text, scenarioType string) (domain.ResponseFeatures, error) {
	features, err := r.Analyze(text, scenarioType)
	if err != nil {
		return domain.ResponseFeatures{}, err
	}

	lower := strings.ToLower(text)
	features.ProblemSolving = &domain.ProblemIndicators{
		SolutionOrientation:     presenceCount(lower, solutionWords),
		ProcessOrientation:      presenceCount(lower, processWords),
		StakeholderAwareness:    presenceCount(lower, stakeholderWords),
		RiskAwareness:           presenceCount(lower, riskWords),
		ResourceConsideration:   presenceCount(lower, resourceWords),
		TimeOrientation:         presenceCount(lower, timeWords),
		CollaborationIndicators: presenceCount(lower, collaborationWords),
		ImplementationFocus:     presenceCount(lower, implementationWords),
	}
	return features, nil
}

// presenceCount cuenta cuantos patterns DISTINTOS aparecen en el texto:
// cada keyword aporta 0 o 1, asi que el resultado queda acotado por el
// largo de la lista.
func presenceCount(lower string, patterns []string) int {
	count := 0
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			count++
		}
	}
	return count
}

func assessCertainty(lower string) domain.CertaintyLevel {
	certain := presenceCount(lower, certainWords)
	uncertain := presenceCount(lower, uncertainWords)
	switch {
	case certain > uncertain:
		return domain.CertaintyHigh
	case uncertain > certain:
		return domain.CertaintyLow
	default:
		return domain.CertaintyMedium
	}
}
