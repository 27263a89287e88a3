package domain

import (
	"strings"
	"time"
)

// ThinkingStyle es el estilo de pensamiento dominante.
type ThinkingStyle string

const (
	StyleAnalytical ThinkingStyle = "analytical"
	StyleIntuitive  ThinkingStyle = "intuitive"
	StyleCreative   ThinkingStyle = "creative"
	StyleBalanced   ThinkingStyle = "balanced"
)

// Prefix devuelve el prefijo de dos letras en mayusculas usado en la firma.
func (s ThinkingStyle) Prefix() string {
	return signaturePrefix(string(s))
}

func signaturePrefix(s string) string {
	if len(s) < 2 {
		return "XX"
	}
	return strings.ToUpper(s[:2])
}

// CommunicationStyle clasifica como se comunica la persona en las respuestas.
type CommunicationStyle string

const (
	CommDetailedInquisitive CommunicationStyle = "detailed_inquisitive"
	CommDetailedExplanatory CommunicationStyle = "detailed_explanatory"
	CommConciseInquisitive  CommunicationStyle = "concise_inquisitive"
	CommConciseDirect       CommunicationStyle = "concise_direct"
	CommBalanced            CommunicationStyle = "balanced"
)

// ResponsePattern son etiquetas cualitativas independientes (no excluyentes).
type ResponsePattern string

const (
	PatternConsistentlyAnalytical ResponsePattern = "consistently_analytical"
	PatternEmotionallyAware       ResponsePattern = "emotionally_aware"
	PatternSystematicThinker      ResponsePattern = "systematic_thinker"
	PatternCreativeThinker        ResponsePattern = "creative_thinker"
)

// PersonalityProfile se deriva del pool completo de respuestas de
// personalidad. Inmutable una vez generado.
type PersonalityProfile struct {
	PrimaryThinkingStyle ThinkingStyle      `json:"primary_thinking_style"`
	AnalyticalTendency   float64            `json:"analytical_tendency"`
	IntuitiveTendency    float64            `json:"intuitive_tendency"`
	CreativeTendency     float64            `json:"creative_tendency"`
	SystematicTendency   float64            `json:"systematic_tendency"`
	CertaintyLevel       float64            `json:"certainty_level"`
	EmotionalExpression  float64            `json:"emotional_expression"`
	CommunicationStyle   CommunicationStyle `json:"communication_style"`
	ResponsePatterns     []ResponsePattern  `json:"response_patterns"`
	AvgResponseLength    float64            `json:"avg_response_length"`
	QuestionFrequency    float64            `json:"question_frequency"`
	GeneratedAt          time.Time          `json:"generation_timestamp"`
}
