package domain

import "time"

// ReasoningResult es la salida de razonar un problema con los patrones
// cognitivos de un perfil.
type ReasoningResult struct {
	Problem            string    `json:"problem"`
	Response           string    `json:"response"`
	ReasoningSteps     []string  `json:"reasoning_steps"`
	DecisionFactors    []string  `json:"decision_factors"`
	ReasoningApproach  string    `json:"reasoning_approach"`
	Complexity         string    `json:"complexity"`
	Confidence         float64   `json:"confidence"`
	Timestamp          time.Time `json:"timestamp"`
	CognitiveSignature string    `json:"cognitive_signature"`
}
