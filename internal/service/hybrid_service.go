package service

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"mind-clone/internal/domain"
)

var (
	ErrProfileCountMismatch = errors.New("number of profiles must match number of weights")
	ErrWeightSum            = errors.New("weights must sum to 1.0")
)

// HybridService mezcla varios perfiles cognitivos en un perfil hibrido
// ponderado para un caso de uso dado.
type HybridService struct {
	logger *zap.Logger
}

func NewHybridService(logger *zap.Logger) *HybridService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HybridService{logger: logger}
}

// CreateHybridProfile valida las precondiciones antes de mezclar nada:
// un error deja el estado intacto. La tolerancia de la suma de pesos es
// 0.01 para absorber ruido de punto flotante.
func (s *HybridService) CreateHybridProfile(profiles []*domain.CognitiveProfile, weights []float64, useCase string) (*domain.HybridProfile, error) {
	if len(profiles) != len(weights) {
		return nil, ErrProfileCountMismatch
	}

	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum-1.0) > 0.01 {
		return nil, ErrWeightSum
	}

	now := time.Now().UTC()
	dominant := dominantProfileIndex(weights)

	sourceIDs := make([]string, len(profiles))
	for i, p := range profiles {
		sourceIDs[i] = p.ProfileID
	}

	traits := blendCognitiveTraits(profiles, weights, dominant)

	hybrid := &domain.HybridProfile{
		ProfileID:         generateProfileID(now),
		Version:           profileVersion,
		CreationTimestamp: now,
		ProfileType:       domain.ProfileTypeHybrid,

		SourceProfiles: sourceIDs,
		HybridWeights:  weights,
		UseCase:        useCase,

		CognitiveTraits:       traits,
		ThinkingArchitecture:  blendThinkingArchitectures(profiles, dominant),
		CommunicationStyle:    selectDominantCommunicationStyle(profiles, dominant),
		DecisionMakingProfile: blendDecisionMakingProfiles(profiles, dominant),

		CognitiveSignature:      generateCognitiveSignature(traits),
		HybridStrengths:         identifyHybridStrengths(profiles),
		PotentialConflicts:      identifyPotentialConflicts(profiles),
		OptimizationSuggestions: generateOptimizationSuggestions(useCase, traits),
	}

	s.logger.Info("hybrid profile created",
		zap.String("profile_id", hybrid.ProfileID),
		zap.String("use_case", useCase),
		zap.Int("source_profiles", len(profiles)),
	)

	return hybrid, nil
}

// dominantProfileIndex devuelve el indice del primer peso maximo; en un
// empate gana el que aparece primero.
func dominantProfileIndex(weights []float64) int {
	best := 0
	for i, w := range weights {
		if w > weights[best] {
			best = i
		}
	}
	return best
}

func blendCognitiveTraits(profiles []*domain.CognitiveProfile, weights []float64, dominant int) domain.CognitiveTraits {
	var blended domain.CognitiveTraits

	for i, p := range profiles {
		w := weights[i]
		t := p.CognitiveTraits
		blended.AnalyticalTendency += t.AnalyticalTendency * w
		blended.IntuitiveTendency += t.IntuitiveTendency * w
		blended.CreativeTendency += t.CreativeTendency * w
		blended.SystematicTendency += t.SystematicTendency * w
		blended.DecisionConfidence += t.DecisionConfidence * w
		blended.CognitiveFlexibility += t.CognitiveFlexibility * w
	}

	// Los rasgos categoricos no se promedian: se copian del dominante.
	dt := profiles[dominant].CognitiveTraits
	blended.PrimaryThinkingStyle = dt.PrimaryThinkingStyle
	blended.ProblemSolvingApproach = dt.ProblemSolvingApproach
	blended.ComplexityComfort = dt.ComplexityComfort
	blended.StakeholderAwareness = dt.StakeholderAwareness
	blended.RiskAssessmentStyle = dt.RiskAssessmentStyle
	blended.CollaborationPreference = dt.CollaborationPreference
	blended.ImplementationFocus = dt.ImplementationFocus

	return blended
}

func blendThinkingArchitectures(profiles []*domain.CognitiveProfile, dominant int) domain.ThinkingArchitecture {
	arch := profiles[dominant].ThinkingArchitecture
	arch.HybridNotes = fmt.Sprintf("Primary architecture from profile %d, influenced by %d profiles", dominant+1, len(profiles))
	return arch
}

func selectDominantCommunicationStyle(profiles []*domain.CognitiveProfile, dominant int) domain.CommunicationPatterns {
	style := profiles[dominant].CommunicationStyle
	style.HybridInfluence = fmt.Sprintf("Dominant style with influences from %d profiles", len(profiles))
	return style
}

func blendDecisionMakingProfiles(profiles []*domain.CognitiveProfile, dominant int) domain.DecisionMakingProfile {
	dm := profiles[dominant].DecisionMakingProfile
	return domain.DecisionMakingProfile{
		DecisionSpeed:             dm.DecisionSpeed,
		InformationGathering:      dm.InformationGathering,
		StakeholderConsideration:  dm.StakeholderConsideration,
		RiskTolerance:             dm.RiskTolerance,
		ConsensusSeeking:          dm.ConsensusSeeking,
		ImplementationOrientation: dm.ImplementationOrientation,
	}
}

// identifyHybridStrengths une las fortalezas fuente: la que aparece en
// mas de un perfil se promociona a "enhanced_". El resultado va ordenado
// para que la salida sea determinista.
func identifyHybridStrengths(profiles []*domain.CognitiveProfile) []string {
	counts := make(map[string]int)
	for _, p := range profiles {
		for _, strength := range p.Strengths {
			counts[strength]++
		}
	}

	set := make(map[string]struct{})
	for strength, count := range counts {
		if count > 1 {
			set["enhanced_"+strength] = struct{}{}
		} else {
			set[strength] = struct{}{}
		}
	}

	if len(profiles) > 2 {
		set["cognitive_versatility"] = struct{}{}
	}
	set["adaptive_thinking"] = struct{}{}

	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func identifyPotentialConflicts(profiles []*domain.CognitiveProfile) []string {
	var conflicts []string

	styles := make(map[domain.ThinkingStyle]struct{})
	var hasQuick, hasDeliberate, hasHighTolerance, hasLowTolerance bool
	maxAnalytical, maxIntuitive := 0.0, 0.0

	for _, p := range profiles {
		styles[p.CognitiveTraits.PrimaryThinkingStyle] = struct{}{}

		switch p.DecisionMakingProfile.DecisionSpeed {
		case domain.SpeedQuick:
			hasQuick = true
		case domain.SpeedDeliberate:
			hasDeliberate = true
		}

		switch p.DecisionMakingProfile.RiskTolerance {
		case domain.LevelHigh:
			hasHighTolerance = true
		case domain.LevelLow:
			hasLowTolerance = true
		}

		maxAnalytical = math.Max(maxAnalytical, p.CognitiveTraits.AnalyticalTendency)
		maxIntuitive = math.Max(maxIntuitive, p.CognitiveTraits.IntuitiveTendency)
	}

	if len(styles) > 1 {
		conflicts = append(conflicts, "conflicting_thinking_styles")
	}
	if hasQuick && hasDeliberate {
		conflicts = append(conflicts, "decision_speed_tension")
	}
	if hasHighTolerance && hasLowTolerance {
		conflicts = append(conflicts, "risk_tolerance_conflict")
	}
	if maxAnalytical > 0.8 && maxIntuitive > 0.8 {
		conflicts = append(conflicts, "analytical_intuitive_tension")
	}

	return conflicts
}

func generateOptimizationSuggestions(useCase string, traits domain.CognitiveTraits) []string {
	var suggestions []string

	switch useCase {
	case "leadership":
		suggestions = append(suggestions,
			"Focus on balancing analytical and intuitive decision-making",
			"Develop stakeholder communication strategies",
		)
	case "innovation":
		suggestions = append(suggestions,
			"Leverage creative thinking while maintaining systematic approach",
			"Create structured ideation processes",
		)
	case "problem_solving":
		suggestions = append(suggestions,
			"Develop frameworks that combine multiple thinking styles",
			"Practice switching between analytical and creative modes",
		)
	}

	if traits.AnalyticalTendency > 0.7 && traits.CreativeTendency > 0.7 {
		suggestions = append(suggestions, "Create structured creativity sessions to balance both strengths")
	}
	if traits.DecisionConfidence < 0.4 {
		suggestions = append(suggestions, "Develop confidence-building exercises for decision-making")
	}

	return suggestions
}
