package service

import (
	"time"

	"mind-clone/internal/domain"
)

// ProfileAggregator resume bolsas de indicadores en perfiles de
// personalidad y de resolucion de problemas. El pooling es sobre TODAS
// las respuestas juntas: los limites de etapa no afectan los promedios.
type ProfileAggregator struct{}

// DefaultProfileAggregator permite uso directo sin instanciar.
var DefaultProfileAggregator = ProfileAggregator{}

// GeneratePersonalityProfile devuelve nil cuando no hay respuestas:
// "assessment incompleto" es un estado esperado, no un error.
func (ProfileAggregator) GeneratePersonalityProfile(features []domain.ResponseFeatures) *domain.PersonalityProfile {
	n := len(features)
	if n == 0 {
		return nil
	}

	var totalAnalytical, totalIntuitive, totalCreative, totalSystematic int
	var totalEmotion, totalWords, totalQuestions, highCertainty int
	for _, f := range features {
		totalAnalytical += f.AnalyticalCount
		totalIntuitive += f.IntuitiveCount
		totalCreative += f.CreativeCount
		totalSystematic += f.SystematicCount
		totalEmotion += f.EmotionWords
		totalWords += f.WordCount
		totalQuestions += f.QuestionCount
		if f.CertaintyLevel == domain.CertaintyHigh {
			highCertainty++
		}
	}

	nf := float64(n)
	avgAnalytical := float64(totalAnalytical) / nf
	avgIntuitive := float64(totalIntuitive) / nf
	avgCreative := float64(totalCreative) / nf
	avgWords := float64(totalWords) / nf
	avgQuestions := float64(totalQuestions) / nf

	return &domain.PersonalityProfile{
		PrimaryThinkingStyle: primaryThinkingStyle(avgAnalytical, avgIntuitive, avgCreative),
		AnalyticalTendency:   avgAnalytical,
		IntuitiveTendency:    avgIntuitive,
		CreativeTendency:     avgCreative,
		SystematicTendency:   float64(totalSystematic) / nf,
		CertaintyLevel:       float64(highCertainty) / nf,
		EmotionalExpression:  float64(totalEmotion) / nf,
		CommunicationStyle:   communicationStyle(avgWords, avgQuestions),
		ResponsePatterns:     responsePatterns(features),
		AvgResponseLength:    avgWords,
		QuestionFrequency:    avgQuestions,
		GeneratedAt:          time.Now().UTC(),
	}
}

// primaryThinkingStyle resuelve empates con una cadena de igualdad en
// orden analytical -> intuitive -> creative: un empate con analytical da
// analytical, y un empate intuitive/creative por encima de analytical da
// intuitive. El orden se preserva tal cual; no simetrizar.
func primaryThinkingStyle(analytical, intuitive, creative float64) domain.ThinkingStyle {
	maxScore := analytical
	if intuitive > maxScore {
		maxScore = intuitive
	}
	if creative > maxScore {
		maxScore = creative
	}

	switch {
	case maxScore == analytical:
		return domain.StyleAnalytical
	case maxScore == intuitive:
		return domain.StyleIntuitive
	case maxScore == creative:
		return domain.StyleCreative
	default:
		return domain.StyleBalanced
	}
}

func communicationStyle(avgLength, avgQuestions float64) domain.CommunicationStyle {
	switch {
	case avgLength > 75 && avgQuestions > 1:
		return domain.CommDetailedInquisitive
	case avgLength > 75:
		return domain.CommDetailedExplanatory
	case avgQuestions > 1:
		return domain.CommConciseInquisitive
	default:
		return domain.CommConciseDirect
	}
}

// responsePatterns son etiquetas booleanas independientes, no excluyentes.
func responsePatterns(features []domain.ResponseFeatures) []domain.ResponsePattern {
	n := len(features)
	var patterns []domain.ResponsePattern

	allAnalytical := true
	var emotionSum, systematicSum, creativeSum int
	for _, f := range features {
		if f.AnalyticalCount == 0 {
			allAnalytical = false
		}
		emotionSum += f.EmotionWords
		systematicSum += f.SystematicCount
		creativeSum += f.CreativeCount
	}

	if allAnalytical {
		patterns = append(patterns, domain.PatternConsistentlyAnalytical)
	}
	if emotionSum > n {
		patterns = append(patterns, domain.PatternEmotionallyAware)
	}
	if systematicSum > n {
		patterns = append(patterns, domain.PatternSystematicThinker)
	}
	if float64(creativeSum) > float64(n)*0.5 {
		patterns = append(patterns, domain.PatternCreativeThinker)
	}
	return patterns
}

// GenerateProblemSolvingProfile agrega las respuestas de escenarios.
// Devuelve nil con entrada vacia, igual que el perfil de personalidad.
func (ProfileAggregator) GenerateProblemSolvingProfile(features []domain.ResponseFeatures) *domain.ProblemSolvingProfile {
	n := len(features)
	if n == 0 {
		return nil
	}

	var solution, process, stakeholder, risk, collaboration, implementation int
	var totalChars int
	var totalReadability float64
	for _, f := range features {
		if f.ProblemSolving != nil {
			solution += f.ProblemSolving.SolutionOrientation
			process += f.ProblemSolving.ProcessOrientation
			stakeholder += f.ProblemSolving.StakeholderAwareness
			risk += f.ProblemSolving.RiskAwareness
			collaboration += f.ProblemSolving.CollaborationIndicators
			implementation += f.ProblemSolving.ImplementationFocus
		}
		totalChars += f.Length
		totalReadability += f.ReadabilityScore
	}

	nf := float64(n)
	style := domain.ProcessFocused
	if float64(solution)/nf > float64(process)/nf {
		style = domain.SolutionFocused
	}

	speed := domain.SpeedQuick
	if float64(totalChars)/nf > 300 {
		speed = domain.SpeedDeliberate
	}

	return &domain.ProblemSolvingProfile{
		Style:                  style,
		StakeholderOrientation: threeLevel(float64(stakeholder) / nf),
		RiskAssessment:         threeLevel(float64(risk) / nf),
		CollaborationTendency:  threeLevel(float64(collaboration) / nf),
		ImplementationFocus:    threeLevel(float64(implementation) / nf),
		DecisionMakingSpeed:    speed,
		ComplexityComfort:      complexityComfort(totalReadability / nf),
		GeneratedAt:            time.Now().UTC(),
	}
}

func threeLevel(mean float64) domain.Level {
	switch {
	case mean > 1.5:
		return domain.LevelHigh
	case mean > 0.5:
		return domain.LevelMedium
	default:
		return domain.LevelLow
	}
}

// Score Flesch mas bajo = texto mas complejo = mas comodidad con la
// complejidad.
func complexityComfort(avgReadability float64) domain.Level {
	switch {
	case avgReadability < 50:
		return domain.LevelHigh
	case avgReadability < 70:
		return domain.LevelMedium
	default:
		return domain.LevelLow
	}
}
