package domain

import "time"

// HybridProfile es el resultado de mezclar N perfiles comprehensivos con
// pesos paralelos. Los rasgos numericos son promedio ponderado; los
// categoricos se copian del perfil de mayor peso.
type HybridProfile struct {
	ProfileID         string    `json:"profile_id"`
	Version           string    `json:"version"`
	CreationTimestamp time.Time `json:"creation_timestamp"`
	ProfileType       string    `json:"profile_type"`

	SourceProfiles []string  `json:"source_profiles"`
	HybridWeights  []float64 `json:"hybrid_weights"`
	UseCase        string    `json:"use_case"`

	CognitiveTraits       CognitiveTraits       `json:"cognitive_traits"`
	ThinkingArchitecture  ThinkingArchitecture  `json:"thinking_architecture"`
	CommunicationStyle    CommunicationPatterns `json:"communication_style"`
	DecisionMakingProfile DecisionMakingProfile `json:"decision_making_profile"`

	CognitiveSignature      string   `json:"cognitive_signature"`
	HybridStrengths         []string `json:"hybrid_strengths"`
	PotentialConflicts      []string `json:"potential_conflicts"`
	OptimizationSuggestions []string `json:"optimization_suggestions"`
}
