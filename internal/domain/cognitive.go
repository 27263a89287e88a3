package domain

import "time"

// DataCompleteness resume cuantas fuentes de datos respaldan el perfil.
type DataCompleteness string

const (
	CompletenessInsufficient DataCompleteness = "insufficient"
	CompletenessPartial      DataCompleteness = "partial"
	CompletenessGood         DataCompleteness = "good"
	CompletenessComplete     DataCompleteness = "complete"
)

const (
	ProfileTypeIndividual = "individual"
	ProfileTypeHybrid     = "hybrid"
)

// CognitiveTraits combina los rasgos numericos y categoricos de ambos
// perfiles fuente mas los dos scores compuestos.
type CognitiveTraits struct {
	PrimaryThinkingStyle ThinkingStyle `json:"primary_thinking_style"`
	AnalyticalTendency   float64       `json:"analytical_tendency"`
	IntuitiveTendency    float64       `json:"intuitive_tendency"`
	CreativeTendency     float64       `json:"creative_tendency"`
	SystematicTendency   float64       `json:"systematic_tendency"`

	ProblemSolvingApproach  ProblemSolvingStyle `json:"problem_solving_approach"`
	StakeholderAwareness    Level               `json:"stakeholder_awareness"`
	RiskAssessmentStyle     Level               `json:"risk_assessment_style"`
	CollaborationPreference Level               `json:"collaboration_preference"`
	ImplementationFocus     Level               `json:"implementation_focus"`

	CognitiveFlexibility float64 `json:"cognitive_flexibility"`
	DecisionConfidence   float64 `json:"decision_confidence"`
	ComplexityComfort    Level   `json:"complexity_comfort"`
}

// ThinkingArchitecture son descriptores cualitativos de como procesa
// informacion la persona. Cada campo sale de una clasificacion por umbral.
type ThinkingArchitecture struct {
	PrimaryProcessingMode   ThinkingStyle           `json:"primary_processing_mode"`
	AttentionAllocation     string                  `json:"attention_allocation"`
	MemoryOrganization      string                  `json:"memory_organization"`
	ProblemSolvingFramework ProblemSolvingFramework `json:"problem_solving_framework"`
	MetacognitiveAwareness  Level                   `json:"metacognitive_awareness"`
	CognitiveControl        Level                   `json:"cognitive_control"`
	HybridNotes             string                  `json:"hybrid_notes,omitempty"`
}

type ProblemSolvingFramework struct {
	PrimaryApproach string `json:"primary_approach"`
	BackupApproach  string `json:"backup_approach"`
}

// CommunicationPatterns describe el estilo conversacional observado.
type CommunicationPatterns struct {
	StyleCategory         CommunicationStyle `json:"style_category"`
	AverageMessageLength  float64            `json:"average_message_length"`
	QuestionFrequency     float64            `json:"question_frequency"`
	ExclamationFrequency  float64            `json:"exclamation_frequency"`
	FormalityLevel        string             `json:"formality_level"`
	ExplanationPreference string             `json:"explanation_preference"`
	InteractionStyle      string             `json:"interaction_style"`
	HybridInfluence       string             `json:"hybrid_influence,omitempty"`
}

// DecisionMakingProfile describe como toma decisiones la persona.
type DecisionMakingProfile struct {
	DecisionSpeed             DecisionSpeed `json:"decision_speed"`
	InformationGathering      string        `json:"information_gathering"`
	StakeholderConsideration  Level         `json:"stakeholder_consideration"`
	RiskTolerance             Level         `json:"risk_tolerance"`
	ConsensusSeeking          Level         `json:"consensus_seeking"`
	ImplementationOrientation Level         `json:"implementation_orientation"`
	ContingencyPlanning       Level         `json:"contingency_planning"`
}

// LearningPreferences son elecciones discretas inferidas de los rasgos.
type LearningPreferences struct {
	InformationProcessing string `json:"information_processing"` // sequential | holistic
	ContentDelivery       string `json:"content_delivery"`       // comprehensive | concise
	LearningMode          string `json:"learning_mode"`          // interactive | self_directed
	ComplexityLevel       string `json:"complexity_level"`       // advanced | moderate | simplified
}

// HybridizationPotential estima que tan bien se mezcla este perfil.
type HybridizationPotential struct {
	FlexibilityScore        float64  `json:"flexibility_score"`
	DominantTraits          []string `json:"dominant_traits"`
	HybridizationDifficulty Level    `json:"hybridization_difficulty"`
	BestHybridRoles         []string `json:"best_hybrid_roles"`
}

// CognitiveProfile es el perfil cognitivo comprehensivo generado por el
// sintetizador a partir de un par personalidad + resolucion de problemas.
type CognitiveProfile struct {
	ProfileID         string    `json:"profile_id"`
	Version           string    `json:"version"`
	CreationTimestamp time.Time `json:"creation_timestamp"`
	ProfileType       string    `json:"profile_type"`

	CognitiveTraits       CognitiveTraits       `json:"cognitive_traits"`
	ThinkingArchitecture  ThinkingArchitecture  `json:"thinking_architecture"`
	CommunicationStyle    CommunicationPatterns `json:"communication_style"`
	DecisionMakingProfile DecisionMakingProfile `json:"decision_making_profile"`

	CognitiveSignature  string              `json:"cognitive_signature"`
	Strengths           []string            `json:"strengths"`
	PotentialBiases     []string            `json:"potential_biases"`
	LearningPreferences LearningPreferences `json:"learning_preferences"`

	HybridizationPotential HybridizationPotential `json:"hybridization_potential"`
	ComplementaryTraits    []string               `json:"complementary_traits"`

	ConfidenceScore    float64          `json:"confidence_score"`
	DataCompleteness   DataCompleteness `json:"data_completeness"`
	ProfileReliability float64          `json:"profile_reliability"`
}

// TraitVector expone los seis rasgos numericos como vector de embedding
// para la busqueda de perfiles afines en el store.
func (p *CognitiveProfile) TraitVector() []float32 {
	t := p.CognitiveTraits
	return []float32{
		float32(t.AnalyticalTendency),
		float32(t.IntuitiveTendency),
		float32(t.CreativeTendency),
		float32(t.SystematicTendency),
		float32(t.CognitiveFlexibility),
		float32(t.DecisionConfidence),
	}
}
