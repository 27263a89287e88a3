package domain

import "time"

// Fases del assessment conversacional.
const (
	PhasePersonality    = "personality"
	PhaseProblemSolving = "problem_solving"
	PhaseComplete       = "complete"
)

// ConversationMessage es un turno del chat de assessment.
type ConversationMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Stage     string    `json:"stage"`
	CreatedAt time.Time `json:"created_at"`
}

// AssessmentState es el estado explicito de una sesion de assessment.
// Reemplaza el estado ambiental por un objeto que el adaptador de
// presentacion posee y pasa al core; es serializable para el store.
type AssessmentState struct {
	SessionID string `json:"session_id"`
	Phase     string `json:"phase"`

	PersonalityStage    int                `json:"personality_stage"`
	StageResponses      int                `json:"stage_responses"`
	PersonalityFeatures []ResponseFeatures `json:"personality_features"`

	ScenarioIndex     int                `json:"scenario_index"`
	ScenarioResponses int                `json:"scenario_responses"`
	ProblemFeatures   []ResponseFeatures `json:"problem_features"`

	Transcript []ConversationMessage `json:"transcript"`

	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
