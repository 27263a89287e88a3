package domain

import "time"

// ProblemSolvingStyle distingue orientacion a solucion vs proceso.
type ProblemSolvingStyle string

const (
	SolutionFocused ProblemSolvingStyle = "solution-focused"
	ProcessFocused  ProblemSolvingStyle = "process-focused"

	// ApproachBalanced es el default del sintetizador cuando no hay
	// perfil de resolucion de problemas.
	ApproachBalanced ProblemSolvingStyle = "balanced"
)

// Prefix devuelve el prefijo de dos letras usado en la firma cognitiva.
func (s ProblemSolvingStyle) Prefix() string {
	return signaturePrefix(string(s))
}

// Level es la escala cualitativa de tres niveles usada en todo el perfil.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// DecisionSpeed clasifica la velocidad de decision. "medium" solo aparece
// como default cuando no hay datos de escenarios.
type DecisionSpeed string

const (
	SpeedQuick      DecisionSpeed = "quick"
	SpeedDeliberate DecisionSpeed = "deliberate"
	SpeedMedium     DecisionSpeed = "medium"
)

// ProblemSolvingProfile se deriva de las respuestas a escenarios
// (management/analytical/creative). Inmutable una vez generado.
type ProblemSolvingProfile struct {
	Style                  ProblemSolvingStyle `json:"problem_solving_style"`
	StakeholderOrientation Level               `json:"stakeholder_orientation"`
	RiskAssessment         Level               `json:"risk_assessment"`
	CollaborationTendency  Level               `json:"collaboration_tendency"`
	ImplementationFocus    Level               `json:"implementation_focus"`
	DecisionMakingSpeed    DecisionSpeed       `json:"decision_making_speed"`
	ComplexityComfort      Level               `json:"complexity_comfort"`
	GeneratedAt            time.Time           `json:"generation_timestamp"`
}
