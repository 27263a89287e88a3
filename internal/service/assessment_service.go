package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mind-clone/internal/domain"
)

var (
	ErrSessionNotFound      = errors.New("assessment session not found")
	ErrAssessmentComplete   = errors.New("assessment already complete")
	ErrAssessmentIncomplete = errors.New("assessment not yet complete")
)

// personalityStage es una etapa de la fase de personalidad: una pregunta
// abierta mas follow-ups enfocados en un rasgo Big Five.
type personalityStage struct {
	Question   string
	FollowUps  []string
	TraitFocus string
}

// problemScenario es un escenario de resolucion de problemas con sus
// follow-ups. Type alimenta el analisis (management/analytical/creative).
type problemScenario struct {
	Title     string
	Scenario  string
	Type      string
	FollowUps []string
}

const responsesPerStage = 2
const responsesPerScenario = 3

var personalityStages = []personalityStage{
	{
		Question:   "Hi! Let's start with something I'm curious about. When you have free time, what kind of activities do you naturally gravitate toward? What draws you to spend your time that way?",
		FollowUps:  []string{"That's interesting! What specifically do you enjoy about those activities?", "How do you usually decide what to do when you have multiple options?"},
		TraitFocus: "openness",
	},
	{
		Question:   "Now I'm curious about how you approach work or projects. When you start something new, what's your typical process? Walk me through how you like to tackle things.",
		FollowUps:  []string{"Do you prefer to plan everything out first, or do you like to dive in and figure it out as you go?", "How do you handle deadlines and time pressure?"},
		TraitFocus: "conscientiousness",
	},
	{
		Question:   "Tell me about a recent situation where you had to work with other people - maybe at work, in a group project, or even planning something with friends. How did that experience go for you?",
		FollowUps:  []string{"Do you usually prefer to take the lead, or do you like collaborating as an equal partner?", "How do you handle it when people have different opinions or approaches?"},
		TraitFocus: "extraversion",
	},
	{
		Question:   "When there's conflict or disagreement - whether it's at work, with friends, or even in online discussions - what's your natural response? How do you typically handle those situations?",
		FollowUps:  []string{"How important is it to you that everyone gets along and feels heard?", "Do you generally trust people's intentions, or do you tend to be more cautious?"},
		TraitFocus: "agreeableness",
	},
	{
		Question:   "Let's talk about stress and pressure. Think of a recent time when you felt overwhelmed or stressed. How did you handle it? What goes through your mind in those moments?",
		FollowUps:  []string{"What strategies do you use to cope when things get tough?", "Do you find yourself worrying about things that might go wrong?"},
		TraitFocus: "neuroticism",
	},
}

var problemScenarios = []problemScenario{
	{
		Title:    "Project Management Challenge",
		Scenario: "You're managing a team project that's running behind schedule. The deadline is in two weeks, and you've just discovered that a key team member will be unavailable for the next week due to a family emergency. The project involves both technical development and client coordination. How would you handle this situation?",
		Type:     "management",
		FollowUps: []string{
			"What would be your very first action in this situation?",
			"How would you balance supporting your team member while meeting the deadline?",
			"How would you communicate this setback to stakeholders?",
		},
	},
	{
		Title:    "Product Launch Decision",
		Scenario: "Your company is considering launching a new product. Market research shows promising demand in one segment but concerning feedback from another key demographic. The financial projections are positive, but the timeline is aggressive. You need to make a recommendation to the leadership team. How would you approach this decision?",
		Type:     "analytical",
		FollowUps: []string{
			"What additional information would you want before making this decision?",
			"How would you weigh the conflicting market signals?",
			"What factors would be most important in your final recommendation?",
		},
	},
	{
		Title:    "Remote Work Design",
		Scenario: "You need to design a solution that makes remote work more engaging and productive for a diverse team - some are highly social and miss office interaction, while others are introverted and prefer focused solo work. The budget is flexible, and you have creative freedom. What would you propose?",
		Type:     "creative",
		FollowUps: []string{
			"How would you ensure your solution works for both personality types?",
			"What would be your process for developing and testing this solution?",
			"How would you measure success?",
		},
	},
}

// AssessmentService conduce la sesion de assessment: fase de
// personalidad (5 etapas, 2 respuestas por etapa) y fase de escenarios
// (3 escenarios, 3 respuestas por escenario). El estado vive en el
// store, no en el servicio, asi que varias sesiones avanzan en paralelo.
type AssessmentService struct {
	analyzer   *ResponseAnalyzer
	aggregator ProfileAggregator
	generator  *ProfileGenerator
	store      AssessmentStore
	logger     *zap.Logger
}

func NewAssessmentService(analyzer *ResponseAnalyzer, generator *ProfileGenerator, store AssessmentStore, logger *zap.Logger) *AssessmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentService{
		analyzer:  analyzer,
		generator: generator,
		store:     store,
		logger:    logger,
	}
}

// Start crea una sesion nueva y devuelve la primera pregunta.
func (s *AssessmentService) Start(ctx context.Context) (*domain.AssessmentState, string, error) {
	now := time.Now().UTC()
	state := &domain.AssessmentState{
		SessionID: uuid.NewString(),
		Phase:     domain.PhasePersonality,
		StartedAt: now,
		UpdatedAt: now,
	}

	prompt, _ := nextPrompt(state)
	state.Transcript = append(state.Transcript, domain.ConversationMessage{
		Role:      "assistant",
		Content:   prompt,
		Stage:     stageLabel(state),
		CreatedAt: now,
	})

	if err := s.store.Save(ctx, state); err != nil {
		return nil, "", fmt.Errorf("saving assessment session: %w", err)
	}

	s.logger.Info("assessment session started", zap.String("session_id", state.SessionID))
	return state, prompt, nil
}

// Submit registra la respuesta del usuario, la analiza segun la fase
// actual y devuelve el siguiente prompt. done=true cuando el assessment
// termino y Results ya puede generar el perfil.
func (s *AssessmentService) Submit(ctx context.Context, sessionID, text string) (next string, done bool, err error) {
	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return "", false, err
	}
	if state.Phase == domain.PhaseComplete {
		return "", true, ErrAssessmentComplete
	}

	now := time.Now().UTC()
	state.Transcript = append(state.Transcript, domain.ConversationMessage{
		Role:      "user",
		Content:   text,
		Stage:     stageLabel(state),
		CreatedAt: now,
	})

	switch state.Phase {
	case domain.PhasePersonality:
		stage := personalityStages[state.PersonalityStage]
		features, aerr := s.analyzer.Analyze(text, stage.TraitFocus)
		if aerr != nil {
			return "", false, fmt.Errorf("analyzing personality response: %w", aerr)
		}
		state.PersonalityFeatures = append(state.PersonalityFeatures, features)
		state.StageResponses++
		if state.StageResponses >= responsesPerStage {
			state.PersonalityStage++
			state.StageResponses = 0
			if state.PersonalityStage >= len(personalityStages) {
				state.Phase = domain.PhaseProblemSolving
			}
		}

	case domain.PhaseProblemSolving:
		scenario := problemScenarios[state.ScenarioIndex]
		features, aerr := s.analyzer.AnalyzeProblemSolving(text, scenario.Type)
		if aerr != nil {
			return "", false, fmt.Errorf("analyzing scenario response: %w", aerr)
		}
		state.ProblemFeatures = append(state.ProblemFeatures, features)
		state.ScenarioResponses++
		if state.ScenarioResponses >= responsesPerScenario {
			state.ScenarioIndex++
			state.ScenarioResponses = 0
			if state.ScenarioIndex >= len(problemScenarios) {
				state.Phase = domain.PhaseComplete
			}
		}
	}

	next, done = nextPrompt(state)
	if !done {
		state.Transcript = append(state.Transcript, domain.ConversationMessage{
			Role:      "assistant",
			Content:   next,
			Stage:     stageLabel(state),
			CreatedAt: now,
		})
	}
	state.UpdatedAt = now

	if err := s.store.Save(ctx, state); err != nil {
		return "", false, fmt.Errorf("saving assessment session: %w", err)
	}
	return next, done, nil
}

// Results genera el perfil cognitivo comprehensivo de una sesion
// terminada.
func (s *AssessmentService) Results(ctx context.Context, sessionID string) (*domain.CognitiveProfile, error) {
	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.Phase != domain.PhaseComplete {
		return nil, ErrAssessmentIncomplete
	}

	personality := s.aggregator.GeneratePersonalityProfile(state.PersonalityFeatures)
	problemSolving := s.aggregator.GenerateProblemSolvingProfile(state.ProblemFeatures)
	profile := s.generator.GenerateComprehensiveProfile(personality, problemSolving, state.Transcript)

	s.logger.Info("assessment results generated",
		zap.String("session_id", sessionID),
		zap.String("profile_id", profile.ProfileID),
	)
	return profile, nil
}

// nextPrompt deriva el siguiente prompt del estado actual. done=true
// solo cuando ambas fases estan agotadas.
func nextPrompt(state *domain.AssessmentState) (string, bool) {
	switch state.Phase {
	case domain.PhasePersonality:
		stage := personalityStages[state.PersonalityStage]
		if state.StageResponses == 0 {
			return stage.Question, false
		}
		return stage.FollowUps[state.StageResponses-1], false

	case domain.PhaseProblemSolving:
		scenario := problemScenarios[state.ScenarioIndex]
		if state.ScenarioResponses == 0 {
			return scenario.Scenario, false
		}
		return scenario.FollowUps[state.ScenarioResponses-1], false

	default:
		return "", true
	}
}

func stageLabel(state *domain.AssessmentState) string {
	switch state.Phase {
	case domain.PhasePersonality:
		if state.PersonalityStage < len(personalityStages) {
			return personalityStages[state.PersonalityStage].TraitFocus
		}
	case domain.PhaseProblemSolving:
		if state.ScenarioIndex < len(problemScenarios) {
			return problemScenarios[state.ScenarioIndex].Type
		}
	}
	return state.Phase
}
