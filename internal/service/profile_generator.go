package service

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"mind-clone/internal/domain"
)

const profileVersion = "1.0"

// ProfileGenerator sintetiza el perfil cognitivo comprehensivo a partir
// de un perfil de personalidad, uno de resolucion de problemas y
// (opcional) el transcript de la conversacion.
type ProfileGenerator struct {
	logger *zap.Logger

	mu      sync.Mutex
	history []*domain.CognitiveProfile
}

func NewProfileGenerator(logger *zap.Logger) *ProfileGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileGenerator{logger: logger}
}

// GenerateComprehensiveProfile es determinista dado el input, salvo por
// profile_id y timestamp. Fuentes nil se toleran con defaults y bajan la
// completitud; nunca se oculta un estado de datos insuficientes.
func (g *ProfileGenerator) GenerateComprehensiveProfile(
	personality *domain.PersonalityProfile,
	problemSolving *domain.ProblemSolvingProfile,
	conversation []domain.ConversationMessage,
) *domain.CognitiveProfile {
	now := time.Now().UTC()

	traits := extractCognitiveTraits(personality, problemSolving)
	communication := analyzeCommunicationPatterns(conversation)
	decisionMaking := createDecisionMakingProfile(problemSolving)
	architecture := mapThinkingArchitecture(personality, problemSolving, traits)

	completeness := assessDataCompleteness(personality, problemSolving, conversation)

	profile := &domain.CognitiveProfile{
		ProfileID:         generateProfileID(now),
		Version:           profileVersion,
		CreationTimestamp: now,
		ProfileType:       domain.ProfileTypeIndividual,

		CognitiveTraits:       traits,
		ThinkingArchitecture:  architecture,
		CommunicationStyle:    communication,
		DecisionMakingProfile: decisionMaking,

		CognitiveSignature:  generateCognitiveSignature(traits),
		Strengths:           identifyCognitiveStrengths(traits, decisionMaking),
		PotentialBiases:     identifyPotentialBiases(traits),
		LearningPreferences: inferLearningPreferences(traits, communication),

		HybridizationPotential: assessHybridizationPotential(traits),
		ComplementaryTraits:    identifyComplementaryTraits(traits),

		ConfidenceScore:    calculateConfidenceScore(personality, problemSolving, conversation),
		DataCompleteness:   completeness,
		ProfileReliability: calculateReliabilityScore(completeness),
	}

	g.mu.Lock()
	g.history = append(g.history, profile)
	g.mu.Unlock()

	g.logger.Info("cognitive profile generated",
		zap.String("profile_id", profile.ProfileID),
		zap.String("signature", profile.CognitiveSignature),
		zap.String("completeness", string(profile.DataCompleteness)),
	)

	return profile
}

// History devuelve una copia de la secuencia append-only de perfiles
// generados por esta instancia.
func (g *ProfileGenerator) History() []*domain.CognitiveProfile {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*domain.CognitiveProfile, len(g.history))
	copy(out, g.history)
	return out
}

// generateProfileID usa timestamp con granularidad de segundo: dos
// llamadas dentro del mismo segundo colisionan. El store hace upsert por
// id, asi que una colision pisa el perfil anterior.
func generateProfileID(now time.Time) string {
	return "PROFILE_" + now.Format("20060102_150405")
}

func extractCognitiveTraits(personality *domain.PersonalityProfile, problemSolving *domain.ProblemSolvingProfile) domain.CognitiveTraits {
	traits := domain.CognitiveTraits{
		PrimaryThinkingStyle: domain.StyleBalanced,
		AnalyticalTendency:   0.5,
		IntuitiveTendency:    0.5,
		CreativeTendency:     0.5,
		SystematicTendency:   0.5,

		ProblemSolvingApproach:  domain.ApproachBalanced,
		StakeholderAwareness:    domain.LevelMedium,
		RiskAssessmentStyle:     domain.LevelMedium,
		CollaborationPreference: domain.LevelMedium,
		ImplementationFocus:     domain.LevelMedium,
		ComplexityComfort:       domain.LevelMedium,

		DecisionConfidence: 0.5,
	}

	if personality != nil {
		traits.PrimaryThinkingStyle = personality.PrimaryThinkingStyle
		traits.AnalyticalTendency = personality.AnalyticalTendency
		traits.IntuitiveTendency = personality.IntuitiveTendency
		traits.CreativeTendency = personality.CreativeTendency
		traits.SystematicTendency = personality.SystematicTendency
		traits.DecisionConfidence = personality.CertaintyLevel
	}

	if problemSolving != nil {
		traits.ProblemSolvingApproach = problemSolving.Style
		traits.StakeholderAwareness = problemSolving.StakeholderOrientation
		traits.RiskAssessmentStyle = problemSolving.RiskAssessment
		traits.CollaborationPreference = problemSolving.CollaborationTendency
		traits.ImplementationFocus = problemSolving.ImplementationFocus
		traits.ComplexityComfort = problemSolving.ComplexityComfort
	}

	// Flexibilidad: las tres tendencias mas parejas = mas flexible.
	traits.CognitiveFlexibility = 1 - populationStdDev(
		traits.AnalyticalTendency,
		traits.IntuitiveTendency,
		traits.CreativeTendency,
	)

	return traits
}

func analyzeCommunicationPatterns(conversation []domain.ConversationMessage) domain.CommunicationPatterns {
	var userMessages []domain.ConversationMessage
	for _, m := range conversation {
		if strings.EqualFold(m.Role, "user") {
			userMessages = append(userMessages, m)
		}
	}
	if len(userMessages) == 0 {
		return defaultCommunicationPatterns()
	}

	var totalWords, totalQuestions, totalExclamations int
	for _, m := range userMessages {
		totalWords += len(strings.Fields(m.Content))
		totalQuestions += strings.Count(m.Content, "?")
		totalExclamations += strings.Count(m.Content, "!")
	}

	n := float64(len(userMessages))
	avgLength := float64(totalWords) / n
	questionFreq := float64(totalQuestions) / n
	exclamationFreq := float64(totalExclamations) / n

	var style domain.CommunicationStyle
	switch {
	case avgLength > 50 && questionFreq > 0.5:
		style = domain.CommDetailedInquisitive
	case avgLength > 50:
		style = domain.CommDetailedExplanatory
	case questionFreq > 0.5:
		style = domain.CommConciseInquisitive
	default:
		style = domain.CommConciseDirect
	}

	explanation := "concise"
	if avgLength > 50 {
		explanation = "detailed"
	}
	interaction := "directive"
	if questionFreq > 0.3 {
		interaction = "collaborative"
	}

	return domain.CommunicationPatterns{
		StyleCategory:         style,
		AverageMessageLength:  avgLength,
		QuestionFrequency:     questionFreq,
		ExclamationFrequency:  exclamationFreq,
		FormalityLevel:        assessFormalityLevel(userMessages),
		ExplanationPreference: explanation,
		InteractionStyle:      interaction,
	}
}

var contractions = []string{
	"don't", "won't", "can't", "isn't", "aren't", "wasn't", "weren't",
	"haven't", "hasn't", "hadn't", "wouldn't", "couldn't", "shouldn't",
}

// Las contracciones funcionan como proxy de informalidad.
func assessFormalityLevel(messages []domain.ConversationMessage) string {
	var totalContractions, totalWords int
	for _, m := range messages {
		lower := strings.ToLower(m.Content)
		totalWords += len(strings.Fields(m.Content))
		for _, c := range contractions {
			totalContractions += strings.Count(lower, c)
		}
	}
	if totalWords == 0 {
		return "medium"
	}

	ratio := float64(totalContractions) / float64(totalWords)
	switch {
	case ratio > 0.05:
		return "informal"
	case ratio < 0.01:
		return "formal"
	default:
		return "medium"
	}
}

func defaultCommunicationPatterns() domain.CommunicationPatterns {
	return domain.CommunicationPatterns{
		StyleCategory:         domain.CommBalanced,
		AverageMessageLength:  30,
		QuestionFrequency:     0.2,
		ExclamationFrequency:  0.1,
		FormalityLevel:        "medium",
		ExplanationPreference: "moderate",
		InteractionStyle:      "collaborative",
	}
}

func createDecisionMakingProfile(problemSolving *domain.ProblemSolvingProfile) domain.DecisionMakingProfile {
	if problemSolving == nil {
		return domain.DecisionMakingProfile{
			DecisionSpeed:             domain.SpeedMedium,
			InformationGathering:      "balanced",
			StakeholderConsideration:  domain.LevelMedium,
			RiskTolerance:             domain.LevelMedium,
			ConsensusSeeking:          domain.LevelMedium,
			ImplementationOrientation: domain.LevelMedium,
			ContingencyPlanning:       domain.LevelMedium,
		}
	}

	information := "focused"
	contingency := domain.LevelMedium
	if problemSolving.RiskAssessment == domain.LevelHigh {
		information = "extensive"
		contingency = domain.LevelHigh
	}

	return domain.DecisionMakingProfile{
		DecisionSpeed:             problemSolving.DecisionMakingSpeed,
		InformationGathering:      information,
		StakeholderConsideration:  problemSolving.StakeholderOrientation,
		RiskTolerance:             riskAssessmentToTolerance(problemSolving.RiskAssessment),
		ConsensusSeeking:          problemSolving.CollaborationTendency,
		ImplementationOrientation: problemSolving.ImplementationFocus,
		ContingencyPlanning:       contingency,
	}
}

// Evaluar mucho el riesgo implica tolerarlo poco, y viceversa.
func riskAssessmentToTolerance(assessment domain.Level) domain.Level {
	switch assessment {
	case domain.LevelHigh:
		return domain.LevelLow
	case domain.LevelLow:
		return domain.LevelHigh
	default:
		return domain.LevelMedium
	}
}

func mapThinkingArchitecture(personality *domain.PersonalityProfile, problemSolving *domain.ProblemSolvingProfile, traits domain.CognitiveTraits) domain.ThinkingArchitecture {
	systematic := 0.0
	creative := 0.0
	questionFreq := 0.0
	certainty := 0.5
	if personality != nil {
		systematic = personality.SystematicTendency
		creative = personality.CreativeTendency
		questionFreq = personality.QuestionFrequency
		certainty = personality.CertaintyLevel
	}

	attention := "adaptive_switching"
	memory := "mixed_organization"
	switch {
	case systematic > 0.7:
		attention = "focused_sequential"
		memory = "hierarchical_structured"
	case creative > 0.7:
		attention = "diffuse_exploratory"
		memory = "associative_networked"
	}

	framework := domain.ProblemSolvingFramework{PrimaryApproach: "systematic", BackupApproach: "intuitive"}
	if problemSolving != nil {
		primary := string(problemSolving.Style)
		backup := "analytical"
		if primary == "analytical" {
			backup = "intuitive"
		}
		framework = domain.ProblemSolvingFramework{PrimaryApproach: primary, BackupApproach: backup}
	}

	metacognitive := domain.LevelLow
	switch {
	case questionFreq > 1.0:
		metacognitive = domain.LevelHigh
	case questionFreq > 0.5:
		metacognitive = domain.LevelMedium
	}

	controlScore := (systematic + certainty) / 2
	control := domain.LevelLow
	switch {
	case controlScore > 0.7:
		control = domain.LevelHigh
	case controlScore > 0.3:
		control = domain.LevelMedium
	}

	return domain.ThinkingArchitecture{
		PrimaryProcessingMode:   traits.PrimaryThinkingStyle,
		AttentionAllocation:     attention,
		MemoryOrganization:      memory,
		ProblemSolvingFramework: framework,
		MetacognitiveAwareness:  metacognitive,
		CognitiveControl:        control,
	}
}

// generateCognitiveSignature produce el fingerprint corto del perfil:
// firmas iguales NO implican perfiles iguales.
func generateCognitiveSignature(traits domain.CognitiveTraits) string {
	return fmt.Sprintf("%s-%s%s%s-%s",
		traits.PrimaryThinkingStyle.Prefix(),
		tendencyLetter(traits.AnalyticalTendency),
		tendencyLetter(traits.IntuitiveTendency),
		tendencyLetter(traits.CreativeTendency),
		traits.ProblemSolvingApproach.Prefix(),
	)
}

func tendencyLetter(v float64) string {
	switch {
	case v > 0.7:
		return "H"
	case v > 0.3:
		return "M"
	default:
		return "L"
	}
}

func identifyCognitiveStrengths(traits domain.CognitiveTraits, decisionMaking domain.DecisionMakingProfile) []string {
	var strengths []string

	if traits.AnalyticalTendency > 0.7 {
		strengths = append(strengths, "systematic_analysis")
	}
	if traits.CreativeTendency > 0.7 {
		strengths = append(strengths, "innovative_thinking")
	}
	if traits.IntuitiveTendency > 0.7 {
		strengths = append(strengths, "pattern_recognition")
	}

	switch decisionMaking.DecisionSpeed {
	case domain.SpeedQuick:
		strengths = append(strengths, "rapid_decision_making")
	case domain.SpeedDeliberate:
		strengths = append(strengths, "thorough_consideration")
	}

	if traits.CollaborationPreference == domain.LevelHigh {
		strengths = append(strengths, "collaborative_leadership")
	}
	if traits.ImplementationFocus == domain.LevelHigh {
		strengths = append(strengths, "execution_excellence")
	}
	if traits.StakeholderAwareness == domain.LevelHigh {
		strengths = append(strengths, "stakeholder_management")
	}

	return strengths
}

// Los sesgos usan el tier 0.8, distinto del 0.7 de fortalezas.
func identifyPotentialBiases(traits domain.CognitiveTraits) []string {
	var biases []string

	if traits.AnalyticalTendency > 0.8 {
		biases = append(biases, "analysis_paralysis")
	}
	if traits.IntuitiveTendency > 0.8 {
		biases = append(biases, "confirmation_bias")
	}

	switch traits.RiskAssessmentStyle {
	case domain.LevelHigh:
		biases = append(biases, "loss_aversion")
	case domain.LevelLow:
		biases = append(biases, "overconfidence_bias")
	}

	if traits.DecisionConfidence > 0.8 {
		biases = append(biases, "anchoring_bias")
	}

	return biases
}

func inferLearningPreferences(traits domain.CognitiveTraits, communication domain.CommunicationPatterns) domain.LearningPreferences {
	prefs := domain.LearningPreferences{
		InformationProcessing: "holistic",
		ContentDelivery:       "concise",
		LearningMode:          "self_directed",
		ComplexityLevel:       "moderate",
	}

	if traits.AnalyticalTendency > traits.IntuitiveTendency {
		prefs.InformationProcessing = "sequential"
	}
	if communication.ExplanationPreference == "detailed" {
		prefs.ContentDelivery = "comprehensive"
	}
	if communication.InteractionStyle == "collaborative" {
		prefs.LearningMode = "interactive"
	}

	switch traits.ComplexityComfort {
	case domain.LevelHigh:
		prefs.ComplexityLevel = "advanced"
	case domain.LevelLow:
		prefs.ComplexityLevel = "simplified"
	}

	return prefs
}

func assessHybridizationPotential(traits domain.CognitiveTraits) domain.HybridizationPotential {
	flexibility := 1 - populationStdDev(
		traits.AnalyticalTendency,
		traits.IntuitiveTendency,
		traits.CreativeTendency,
		traits.SystematicTendency,
	)

	var dominant []string
	if traits.AnalyticalTendency > 0.7 {
		dominant = append(dominant, "analytical")
	}
	if traits.CreativeTendency > 0.7 {
		dominant = append(dominant, "creative")
	}
	if traits.IntuitiveTendency > 0.7 {
		dominant = append(dominant, "intuitive")
	}

	difficulty := domain.LevelHigh
	switch {
	case flexibility > 0.7:
		difficulty = domain.LevelLow
	case flexibility > 0.4:
		difficulty = domain.LevelMedium
	}

	return domain.HybridizationPotential{
		FlexibilityScore:        flexibility,
		DominantTraits:          dominant,
		HybridizationDifficulty: difficulty,
		BestHybridRoles:         suggestHybridRoles(dominant),
	}
}

func suggestHybridRoles(dominant []string) []string {
	var roles []string
	for _, trait := range dominant {
		switch trait {
		case "analytical":
			roles = append(roles, "strategic_advisor")
		case "creative":
			roles = append(roles, "innovation_catalyst")
		case "intuitive":
			roles = append(roles, "pattern_synthesizer")
		}
	}
	if len(dominant) > 1 {
		roles = append(roles, "cognitive_bridge")
	}
	if len(roles) == 0 {
		return []string{"balanced_generalist"}
	}
	return roles
}

func identifyComplementaryTraits(traits domain.CognitiveTraits) []string {
	var complementary []string

	if traits.AnalyticalTendency < 0.3 {
		complementary = append(complementary, "high_analytical")
	}
	if traits.CreativeTendency < 0.3 {
		complementary = append(complementary, "high_creative")
	}
	if traits.IntuitiveTendency < 0.3 {
		complementary = append(complementary, "high_intuitive")
	}
	if traits.RiskAssessmentStyle == domain.LevelHigh {
		complementary = append(complementary, "risk_taking")
	}
	if traits.CollaborationPreference == domain.LevelLow {
		complementary = append(complementary, "high_collaboration")
	}

	return complementary
}

func calculateConfidenceScore(personality *domain.PersonalityProfile, problemSolving *domain.ProblemSolvingProfile, conversation []domain.ConversationMessage) float64 {
	score := 0.0
	if personality != nil {
		score += 0.4
	}
	if problemSolving != nil {
		score += 0.3
	}
	if len(conversation) > 10 {
		score += 0.3
	}
	return math.Min(score, 1.0)
}

func assessDataCompleteness(personality *domain.PersonalityProfile, problemSolving *domain.ProblemSolvingProfile, conversation []domain.ConversationMessage) domain.DataCompleteness {
	score := 0
	if personality != nil {
		score++
	}
	if problemSolving != nil {
		score++
	}
	if len(conversation) > 5 {
		score++
	}

	switch score {
	case 3:
		return domain.CompletenessComplete
	case 2:
		return domain.CompletenessGood
	case 1:
		return domain.CompletenessPartial
	default:
		return domain.CompletenessInsufficient
	}
}

func calculateReliabilityScore(completeness domain.DataCompleteness) float64 {
	score := 0.8
	switch completeness {
	case domain.CompletenessPartial:
		score -= 0.2
	case domain.CompletenessInsufficient:
		score -= 0.4
	}
	return math.Max(score, 0.1)
}

// populationStdDev es la desviacion estandar poblacional (divisor N).
func populationStdDev(values ...float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}
