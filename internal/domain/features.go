package domain

import "time"

// CertaintyLevel clasifica el nivel de certeza lexical de una respuesta.
// Se deriva siempre del texto; nunca se setea a mano.
type CertaintyLevel string

const (
	CertaintyLow    CertaintyLevel = "low"
	CertaintyMedium CertaintyLevel = "medium"
	CertaintyHigh   CertaintyLevel = "high"
)

// ResponseFeatures es la bolsa de indicadores lexicales de UNA respuesta.
// Los conteos de categoria son de presencia (0/1 por keyword), no de
// ocurrencias: estan acotados por el tamano de cada lista.
type ResponseFeatures struct {
	Text      string    `json:"text"`
	Context   string    `json:"context"`
	Timestamp time.Time `json:"timestamp"`

	Length            int            `json:"length"`
	WordCount         int            `json:"word_count"`
	SentenceCount     int            `json:"sentence_count"`
	AvgSentenceLength float64        `json:"avg_sentence_length"`
	ReadabilityScore  float64        `json:"readability_score"`
	QuestionCount     int            `json:"question_count"`
	ExclamationCount  int            `json:"exclamation_count"`
	UncertaintyWords  int            `json:"uncertainty_words"`
	AnalyticalCount   int            `json:"analytical_indicators"`
	IntuitiveCount    int            `json:"intuitive_indicators"`
	CreativeCount     int            `json:"creative_indicators"`
	SystematicCount   int            `json:"systematic_indicators"`
	PersonalPronouns  int            `json:"personal_pronouns"`
	EmotionWords      int            `json:"emotion_words"`
	CertaintyLevel    CertaintyLevel `json:"certainty_level"`

	// Solo presente en contextos de resolucion de problemas.
	ProblemSolving *ProblemIndicators `json:"problem_solving,omitempty"`
}

// ProblemIndicators agrega los ocho conteos extra de escenarios.
type ProblemIndicators struct {
	SolutionOrientation     int `json:"solution_orientation"`
	ProcessOrientation      int `json:"process_orientation"`
	StakeholderAwareness    int `json:"stakeholder_awareness"`
	RiskAwareness           int `json:"risk_awareness"`
	ResourceConsideration   int `json:"resource_consideration"`
	TimeOrientation         int `json:"time_orientation"`
	CollaborationIndicators int `json:"collaboration_indicators"`
	ImplementationFocus     int `json:"implementation_focus"`
}
