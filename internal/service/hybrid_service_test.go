package service

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"

	"mind-clone/internal/domain"
)

func sourceProfile(id string, style domain.ThinkingStyle, analytical, intuitive float64) *domain.CognitiveProfile {
	return &domain.CognitiveProfile{
		ProfileID: id,
		CognitiveTraits: domain.CognitiveTraits{
			PrimaryThinkingStyle:    style,
			AnalyticalTendency:      analytical,
			IntuitiveTendency:       intuitive,
			CreativeTendency:        0.5,
			SystematicTendency:      0.5,
			DecisionConfidence:      0.5,
			ProblemSolvingApproach:  domain.SolutionFocused,
			ComplexityComfort:       domain.LevelMedium,
			StakeholderAwareness:    domain.LevelMedium,
			RiskAssessmentStyle:     domain.LevelMedium,
			CollaborationPreference: domain.LevelMedium,
			ImplementationFocus:     domain.LevelMedium,
		},
		DecisionMakingProfile: domain.DecisionMakingProfile{
			DecisionSpeed:        domain.SpeedMedium,
			RiskTolerance:        domain.LevelMedium,
			InformationGathering: "balanced",
		},
	}
}

func TestCreateHybridProfile_CountMismatch(t *testing.T) {
	s := NewHybridService(zap.NewNop())

	_, err := s.CreateHybridProfile(
		[]*domain.CognitiveProfile{sourceProfile("a", domain.StyleAnalytical, 0.5, 0.5)},
		[]float64{0.5, 0.5},
		"leadership",
	)
	if !errors.Is(err, ErrProfileCountMismatch) {
		t.Fatalf("expected ErrProfileCountMismatch, got %v", err)
	}
}

func TestCreateHybridProfile_WeightSum(t *testing.T) {
	s := NewHybridService(zap.NewNop())
	profiles := []*domain.CognitiveProfile{
		sourceProfile("a", domain.StyleAnalytical, 0.5, 0.5),
		sourceProfile("b", domain.StyleCreative, 0.5, 0.5),
	}

	if _, err := s.CreateHybridProfile(profiles, []float64{0.5, 0.45}, ""); !errors.Is(err, ErrWeightSum) {
		t.Fatalf("expected ErrWeightSum for sum 0.95, got %v", err)
	}
	// Dentro de la tolerancia de 0.01 se acepta.
	if _, err := s.CreateHybridProfile(profiles, []float64{0.5, 0.495}, ""); err != nil {
		t.Fatalf("sum 0.995 must be accepted, got %v", err)
	}
	if _, err := s.CreateHybridProfile(profiles, []float64{0.5, 0.5}, ""); err != nil {
		t.Fatalf("sum 1.0 must be accepted, got %v", err)
	}
}

func TestCreateHybridProfile_WeightedBlendAndDominant(t *testing.T) {
	s := NewHybridService(zap.NewNop())

	a := sourceProfile("a", domain.StyleAnalytical, 0.66, 0.2)
	b := sourceProfile("b", domain.StyleCreative, 0.34, 0.8)

	hybrid, err := s.CreateHybridProfile([]*domain.CognitiveProfile{a, b}, []float64{0.9, 0.1}, "leadership")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantAnalytical := 0.66*0.9 + 0.34*0.1
	if math.Abs(hybrid.CognitiveTraits.AnalyticalTendency-wantAnalytical) > 1e-9 {
		t.Fatalf("expected analytical %.4f, got %.4f", wantAnalytical, hybrid.CognitiveTraits.AnalyticalTendency)
	}
	wantIntuitive := 0.2*0.9 + 0.8*0.1
	if math.Abs(hybrid.CognitiveTraits.IntuitiveTendency-wantIntuitive) > 1e-9 {
		t.Fatalf("expected intuitive %.4f, got %.4f", wantIntuitive, hybrid.CognitiveTraits.IntuitiveTendency)
	}

	// Los rasgos categoricos salen del perfil de mayor peso.
	if hybrid.CognitiveTraits.PrimaryThinkingStyle != domain.StyleAnalytical {
		t.Fatalf("categorical traits must come from dominant profile, got %s", hybrid.CognitiveTraits.PrimaryThinkingStyle)
	}

	if hybrid.ProfileType != domain.ProfileTypeHybrid {
		t.Fatalf("unexpected profile type %s", hybrid.ProfileType)
	}
	if len(hybrid.SourceProfiles) != 2 || hybrid.SourceProfiles[0] != "a" || hybrid.SourceProfiles[1] != "b" {
		t.Fatalf("unexpected source profiles %v", hybrid.SourceProfiles)
	}
	if hybrid.UseCase != "leadership" {
		t.Fatalf("unexpected use case %s", hybrid.UseCase)
	}
	if hybrid.ThinkingArchitecture.HybridNotes != "Primary architecture from profile 1, influenced by 2 profiles" {
		t.Fatalf("unexpected hybrid notes %q", hybrid.ThinkingArchitecture.HybridNotes)
	}
	if hybrid.CommunicationStyle.HybridInfluence != "Dominant style with influences from 2 profiles" {
		t.Fatalf("unexpected hybrid influence %q", hybrid.CommunicationStyle.HybridInfluence)
	}
}

func TestCreateHybridProfile_DominantTieGoesToFirst(t *testing.T) {
	s := NewHybridService(zap.NewNop())

	a := sourceProfile("a", domain.StyleIntuitive, 0.5, 0.5)
	b := sourceProfile("b", domain.StyleCreative, 0.5, 0.5)

	hybrid, err := s.CreateHybridProfile([]*domain.CognitiveProfile{a, b}, []float64{0.5, 0.5}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hybrid.CognitiveTraits.PrimaryThinkingStyle != domain.StyleIntuitive {
		t.Fatalf("tie must pick first profile, got %s", hybrid.CognitiveTraits.PrimaryThinkingStyle)
	}
}

func TestCreateHybridProfile_Conflicts(t *testing.T) {
	s := NewHybridService(zap.NewNop())

	a := sourceProfile("a", domain.StyleAnalytical, 0.9, 0.1)
	a.DecisionMakingProfile.DecisionSpeed = domain.SpeedQuick
	a.DecisionMakingProfile.RiskTolerance = domain.LevelHigh

	b := sourceProfile("b", domain.StyleIntuitive, 0.1, 0.9)
	b.DecisionMakingProfile.DecisionSpeed = domain.SpeedDeliberate
	b.DecisionMakingProfile.RiskTolerance = domain.LevelLow

	hybrid, err := s.CreateHybridProfile([]*domain.CognitiveProfile{a, b}, []float64{0.5, 0.5}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"conflicting_thinking_styles",
		"decision_speed_tension",
		"risk_tolerance_conflict",
		"analytical_intuitive_tension",
	}
	if len(hybrid.PotentialConflicts) != len(want) {
		t.Fatalf("unexpected conflicts: %v", hybrid.PotentialConflicts)
	}
	for i, c := range want {
		if hybrid.PotentialConflicts[i] != c {
			t.Fatalf("conflict %d: expected %s, got %s", i, c, hybrid.PotentialConflicts[i])
		}
	}
}

func TestCreateHybridProfile_NoConflictsForAlignedProfiles(t *testing.T) {
	s := NewHybridService(zap.NewNop())

	a := sourceProfile("a", domain.StyleAnalytical, 0.6, 0.4)
	b := sourceProfile("b", domain.StyleAnalytical, 0.7, 0.3)

	hybrid, err := s.CreateHybridProfile([]*domain.CognitiveProfile{a, b}, []float64{0.5, 0.5}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hybrid.PotentialConflicts) != 0 {
		t.Fatalf("expected no conflicts, got %v", hybrid.PotentialConflicts)
	}
}

func TestCreateHybridProfile_Strengths(t *testing.T) {
	s := NewHybridService(zap.NewNop())

	a := sourceProfile("a", domain.StyleAnalytical, 0.5, 0.5)
	a.Strengths = []string{"systematic_analysis", "execution_excellence"}
	b := sourceProfile("b", domain.StyleCreative, 0.5, 0.5)
	b.Strengths = []string{"systematic_analysis", "innovative_thinking"}
	c := sourceProfile("c", domain.StyleIntuitive, 0.5, 0.5)

	hybrid, err := s.CreateHybridProfile([]*domain.CognitiveProfile{a, b, c}, []float64{0.4, 0.3, 0.3}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"adaptive_thinking",
		"cognitive_versatility",
		"enhanced_systematic_analysis",
		"execution_excellence",
		"innovative_thinking",
	}
	if len(hybrid.HybridStrengths) != len(want) {
		t.Fatalf("unexpected strengths: %v", hybrid.HybridStrengths)
	}
	for i, w := range want {
		if hybrid.HybridStrengths[i] != w {
			t.Fatalf("strength %d: expected %s, got %s", i, w, hybrid.HybridStrengths[i])
		}
	}
}

func TestCreateHybridProfile_OptimizationSuggestions(t *testing.T) {
	s := NewHybridService(zap.NewNop())

	a := sourceProfile("a", domain.StyleAnalytical, 0.8, 0.2)
	a.CognitiveTraits.CreativeTendency = 0.8
	a.CognitiveTraits.DecisionConfidence = 0.3

	hybrid, err := s.CreateHybridProfile([]*domain.CognitiveProfile{a}, []float64{1.0}, "leadership")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"Focus on balancing analytical and intuitive decision-making",
		"Develop stakeholder communication strategies",
		"Create structured creativity sessions to balance both strengths",
		"Develop confidence-building exercises for decision-making",
	}
	if len(hybrid.OptimizationSuggestions) != len(want) {
		t.Fatalf("unexpected suggestions: %v", hybrid.OptimizationSuggestions)
	}
	for i, w := range want {
		if hybrid.OptimizationSuggestions[i] != w {
			t.Fatalf("suggestion %d: expected %q, got %q", i, w, hybrid.OptimizationSuggestions[i])
		}
	}
}
