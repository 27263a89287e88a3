package service

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"mind-clone/internal/domain"
)

// CloneSettings ajusta el comportamiento del motor de razonamiento.
type CloneSettings struct {
	// ConfidenceAdjustment multiplica la confianza base. 0 usa el
	// default conservador de 0.8.
	ConfidenceAdjustment float64
}

// ReasoningEngine razona problemas imitando los patrones cognitivos del
// perfil: elige un enfoque segun el problema y los rasgos, arma la
// respuesta con plantillas del estilo dominante y la ajusta al estilo de
// comunicacion y decision del perfil.
type ReasoningEngine struct {
	profile  *domain.CognitiveProfile
	settings CloneSettings

	// pick elige un indice en [0,n); inyectable en tests.
	pick func(n int) int
}

func NewReasoningEngine(profile *domain.CognitiveProfile, settings CloneSettings) *ReasoningEngine {
	if settings.ConfidenceAdjustment == 0 {
		settings.ConfidenceAdjustment = 0.8
	}
	return &ReasoningEngine{
		profile:  profile,
		settings: settings,
		pick:     rand.Intn,
	}
}

type reasoningTemplates struct {
	Opening    []string
	Process    []string
	Conclusion []string
}

var styleTemplates = map[string]reasoningTemplates{
	"analytical": {
		Opening: []string{
			"Let me break this down systematically:",
			"I need to analyze the key components here:",
			"First, let me examine the core elements:",
			"Looking at this logically, I should start by:",
		},
		Process: []string{
			"The evidence suggests that...",
			"Based on the available data...",
			"If I examine each factor individually...",
			"The logical progression would be...",
		},
		Conclusion: []string{
			"Based on this analysis, my recommendation is:",
			"Weighing all the factors, I conclude that:",
			"The most logical approach would be to:",
			"Given the evidence, the best course of action is:",
		},
	},
	"intuitive": {
		Opening: []string{
			"My initial sense about this is:",
			"Something tells me that:",
			"I have a strong feeling that:",
			"My gut reaction is that:",
		},
		Process: []string{
			"This situation reminds me of...",
			"I sense that the underlying issue might be...",
			"My intuition suggests that...",
			"It feels like the key insight here is...",
		},
		Conclusion: []string{
			"So my instinct says:",
			"Based on my intuition, I believe:",
			"My gut tells me the answer is:",
			"I feel strongly that we should:",
		},
	},
	"creative": {
		Opening: []string{
			"What if we approached this differently?",
			"Let me think outside the box here:",
			"I'm imagining some unconventional possibilities:",
			"There might be a creative solution here:",
		},
		Process: []string{
			"One innovative approach could be...",
			"What if we completely reimagined...",
			"I'm envisioning a scenario where...",
			"A creative twist might be to...",
		},
		Conclusion: []string{
			"So my creative solution would be:",
			"I think an innovative approach is:",
			"The most interesting possibility is:",
			"My unconventional recommendation is:",
		},
	},
	"balanced": {
		Opening: []string{
			"Let me consider this from multiple angles:",
			"I want to balance logic and intuition here:",
			"Looking at both the analytical and creative aspects:",
			"This requires both systematic thinking and insights:",
		},
		Process: []string{
			"On one hand, the data shows... but I also sense that...",
			"Logically, this suggests... yet intuitively, I feel...",
			"The systematic approach would be... while creatively, we could...",
			"Balancing facts with insights...",
		},
		Conclusion: []string{
			"Considering all perspectives, I recommend:",
			"Balancing analysis with intuition, I think:",
			"My integrated approach would be:",
			"Combining logic and insight, the best path is:",
		},
	},
}

// ReasonAboutProblem genera la respuesta al problema. complexity acepta
// simple/medium/complex; cualquier otro valor se trata como medium.
func (e *ReasoningEngine) ReasonAboutProblem(problem, complexity string) *domain.ReasoningResult {
	analysis := analyzeProblemCharacteristics(problem)
	approach := e.selectReasoningApproach(analysis)
	steps := reasoningSteps(approach, complexity)
	response := e.buildResponse(problem, approach)

	return &domain.ReasoningResult{
		Problem:            problem,
		Response:           response,
		ReasoningSteps:     steps,
		DecisionFactors:    e.identifyDecisionFactors(),
		ReasoningApproach:  approach,
		Complexity:         complexity,
		Confidence:         e.calculateConfidence(complexity, approach),
		Timestamp:          time.Now().UTC(),
		CognitiveSignature: e.profile.CognitiveSignature,
	}
}

type problemCharacteristics struct {
	Type                 string
	StakeholderMentions  int
	UrgencyLevel         string
	ComplexityIndicators float64
	RequiresDecision     bool
	CreativePotential    float64
	RiskElements         int
}

func analyzeProblemCharacteristics(problem string) problemCharacteristics {
	lower := strings.ToLower(problem)
	return problemCharacteristics{
		Type:                 classifyProblemType(lower),
		StakeholderMentions:  presenceCount(lower, []string{"team", "people", "stakeholder", "client", "customer", "employee", "others"}),
		UrgencyLevel:         assessUrgency(lower),
		ComplexityIndicators: math.Min(float64(presenceCount(lower, []string{"complex", "complicated", "multiple", "various", "many", "different", "challenging"}))/3.0, 1.0),
		RequiresDecision:     presenceCount(lower, []string{"decide", "choose", "select", "pick", "option", "alternative"}) > 0,
		CreativePotential:    math.Min(float64(presenceCount(lower, []string{"creative", "innovative", "new", "design", "improve", "better way"}))/2.0, 1.0),
		RiskElements:         presenceCount(lower, []string{"risk", "danger", "problem", "issue", "challenge", "difficulty"}),
	}
}

func classifyProblemType(lower string) string {
	switch {
	case presenceCount(lower, []string{"decision", "choose", "decide"}) > 0:
		return "decision"
	case presenceCount(lower, []string{"plan", "organize", "manage"}) > 0:
		return "planning"
	case presenceCount(lower, []string{"create", "design", "innovate"}) > 0:
		return "creative"
	case presenceCount(lower, []string{"conflict", "disagreement", "problem"}) > 0:
		return "problem_solving"
	default:
		return "general"
	}
}

func assessUrgency(lower string) string {
	if presenceCount(lower, []string{"urgent", "immediate", "quickly", "asap", "deadline", "emergency"}) > 0 {
		return "high"
	}
	if presenceCount(lower, []string{"soon", "timeline", "schedule"}) > 0 {
		return "medium"
	}
	return "low"
}

// El problema puede desviar el enfoque del estilo dominante: un problema
// muy creativo empuja a "creative" si el perfil tiene algo de tendencia
// creativa, y asi sucesivamente.
func (e *ReasoningEngine) selectReasoningApproach(analysis problemCharacteristics) string {
	traits := e.profile.CognitiveTraits
	switch {
	case analysis.CreativePotential > 0.7 && traits.CreativeTendency > 0.5:
		return "creative"
	case analysis.ComplexityIndicators > 0.7 && traits.AnalyticalTendency > 0.5:
		return "analytical"
	case analysis.UrgencyLevel == "high" && traits.IntuitiveTendency > 0.5:
		return "intuitive"
	default:
		return string(traits.PrimaryThinkingStyle)
	}
}

func reasoningSteps(approach, complexity string) []string {
	var steps []string
	switch approach {
	case "analytical":
		steps = []string{
			"Identify and define the core problem clearly",
			"Gather and analyze all available relevant information",
			"Break down the problem into manageable components",
			"Evaluate potential solutions against clear criteria",
			"Select the most logical solution based on evidence",
		}
		if complexity == "complex" {
			steps = append(steps,
				"Consider second-order effects and long-term implications",
				"Identify potential risks and develop mitigation strategies",
				"Create implementation plan with measurable milestones",
			)
		}
	case "intuitive":
		steps = []string{
			"Get an overall sense of the situation and context",
			"Notice patterns and what immediately stands out",
			"Draw on past experiences and gut feelings",
			"Trust initial instincts about promising directions",
			"Integrate insights into a holistic understanding",
		}
		if complexity == "complex" {
			steps = append(steps,
				"Allow time for subconscious processing of complex elements",
				"Validate intuitive insights with key stakeholders",
			)
		}
	case "creative":
		steps = []string{
			"Reframe the problem from multiple perspectives",
			"Brainstorm unconventional approaches and possibilities",
			"Look for unexpected connections and analogies",
			"Prototype and test innovative ideas quickly",
			"Iterate and refine the most promising concepts",
		}
		if complexity == "complex" {
			steps = append(steps,
				"Explore cross-industry solutions and inspirations",
				"Design experiments to test creative hypotheses",
			)
		}
	default:
		steps = []string{
			"Combine systematic analysis with intuitive insights",
			"Use data and logic while staying open to creative possibilities",
			"Validate analytical conclusions against gut feelings",
			"Consider both rational and emotional aspects of the situation",
			"Integrate multiple perspectives into a comprehensive solution",
		}
	}
	return steps
}

func (e *ReasoningEngine) buildResponse(problem, approach string) string {
	templates, ok := styleTemplates[approach]
	if !ok {
		templates = styleTemplates["balanced"]
	}

	var sb strings.Builder
	sb.WriteString(templates.Opening[e.pick(len(templates.Opening))])
	sb.WriteString("\n\n")
	sb.WriteString(templates.Process[e.pick(len(templates.Process))])
	sb.WriteString("\n\n")
	sb.WriteString(solutionContent(problem, approach))
	sb.WriteString("\n\n")
	sb.WriteString(templates.Conclusion[e.pick(len(templates.Conclusion))])

	response := sb.String()
	response = e.applyCommunicationStyle(response)
	response = e.applyDecisionMakingStyle(response)
	return response
}

func solutionContent(problem, approach string) string {
	switch classifyProblemCategory(strings.ToLower(problem)) {
	case "decision":
		return decisionSolution(approach)
	case "planning":
		return planningSolution(approach)
	case "problem_solving":
		return problemSolvingSolution(approach)
	case "creative":
		return creativeSolution(approach)
	default:
		return generalSolution(approach)
	}
}

// La categoria de solucion usa listas ligeramente distintas a la
// clasificacion de tipo, y en otro orden de precedencia.
func classifyProblemCategory(lower string) string {
	switch {
	case presenceCount(lower, []string{"decision", "choose", "decide", "select"}) > 0:
		return "decision"
	case presenceCount(lower, []string{"plan", "organize", "manage", "schedule"}) > 0:
		return "planning"
	case presenceCount(lower, []string{"conflict", "disagreement", "problem", "issue"}) > 0:
		return "problem_solving"
	case presenceCount(lower, []string{"create", "design", "innovate", "improve"}) > 0:
		return "creative"
	default:
		return "general"
	}
}

func decisionSolution(approach string) string {
	switch approach {
	case "analytical":
		return "I would create a decision matrix to evaluate the key criteria, assign weights based on importance, score each option objectively, and select the highest-scoring alternative while considering implementation feasibility."
	case "intuitive":
		return "I would reflect deeply on which option feels most aligned with my core values and long-term vision, considering how each choice resonates emotionally and trusting my instincts about the right path forward."
	case "creative":
		return "I would explore whether there are alternative options beyond the obvious choices, perhaps combining elements from different possibilities or finding a completely novel third way that addresses the underlying need differently."
	default:
		return "I would combine systematic evaluation of the options with careful consideration of how each choice feels intuitively, ensuring both the logical and emotional aspects align before making my final decision."
	}
}

func planningSolution(approach string) string {
	switch approach {
	case "analytical":
		return "I would break this into clear phases with specific deliverables, create detailed timelines with dependencies mapped out, identify critical path activities, and establish measurable milestones with regular review points."
	case "intuitive":
		return "I would start with the big picture vision of success, work backwards to identify the key milestones that feel most important, and maintain flexibility to adapt the plan as new insights emerge along the way."
	case "creative":
		return "I would explore innovative approaches that might accomplish the goal more efficiently, look for opportunities to combine or reimagine traditional steps, and design the plan to allow for creative pivots and improvements."
	default:
		return "I would develop a structured framework that includes clear milestones while building in flexibility for adjustments, balancing detailed planning with the ability to respond to unexpected opportunities or challenges."
	}
}

func problemSolvingSolution(approach string) string {
	switch approach {
	case "analytical":
		return "I would systematically identify the root causes using techniques like the 5 Whys, research best practices and proven solutions, develop a step-by-step action plan, and implement with careful monitoring and adjustment."
	case "intuitive":
		return "I would step back to understand the broader context and underlying patterns, listen carefully to all perspectives involved, and focus on addressing the deeper needs and concerns rather than just the surface symptoms."
	case "creative":
		return "I would reframe the problem to uncover new possibilities, brainstorm unconventional solutions, look for ways to turn the challenge into an opportunity, and experiment with innovative approaches."
	default:
		return "I would combine thorough analysis of the situation with creative brainstorming, ensuring I understand both the logical and emotional dimensions of the problem while exploring both traditional and innovative solutions."
	}
}

func creativeSolution(approach string) string {
	base := "I would start by immersing myself in the challenge to understand it deeply, then explore inspiration from diverse sources and industries, prototype ideas quickly to test concepts, and iterate based on feedback to refine the most promising innovations."
	switch approach {
	case "analytical":
		return base + " I'd also establish clear success metrics and evaluation criteria to ensure the creative solution meets practical requirements."
	case "intuitive":
		return base + " I'd trust my instincts about which ideas have the most potential and allow time for subconscious processing to generate breakthrough insights."
	default:
		return base
	}
}

func generalSolution(approach string) string {
	switch approach {
	case "analytical":
		return "I would approach this systematically by first understanding all the key factors involved, researching relevant information and best practices, developing a clear strategy with specific steps, and implementing with careful tracking and adjustment as needed."
	case "intuitive":
		return "I would start by getting a feel for the overall situation, trusting my instincts about the most important aspects to address first, and allowing my understanding to evolve naturally as I engage with the challenge."
	case "creative":
		return "I would look for innovative ways to approach this challenge, explore unconventional solutions and fresh perspectives, and experiment with ideas that might lead to breakthrough results."
	default:
		return "I would combine careful analysis with creative thinking, ensuring I understand the situation thoroughly while remaining open to innovative solutions and approaches that might emerge during the process."
	}
}

func (e *ReasoningEngine) applyCommunicationStyle(response string) string {
	comm := e.profile.CommunicationStyle
	style := string(comm.StyleCategory)

	if comm.ExplanationPreference == "detailed" || style == "detailed_explanatory" || style == "detailed_inquisitive" {
		response += "\n\nTo elaborate further, this approach allows for comprehensive consideration of all relevant factors while maintaining flexibility to adapt as new information emerges."
	}
	if strings.Contains(style, "inquisitive") || comm.QuestionFrequency > 0.5 {
		response += "\n\nI'd be curious to know: What aspects of this situation do you think are most important to consider? Are there any constraints or considerations I might have missed?"
	}
	return response
}

func (e *ReasoningEngine) applyDecisionMakingStyle(response string) string {
	traits := e.profile.CognitiveTraits

	if traits.StakeholderAwareness == domain.LevelHigh {
		response += "\n\nIt would also be important to consider how this affects all stakeholders involved and ensure everyone's perspectives are heard and valued in the process."
	}
	if traits.RiskAssessmentStyle == domain.LevelHigh {
		response += "\n\nI'd also want to carefully assess potential risks and develop contingency plans to address any challenges that might arise during implementation."
	}
	if traits.CollaborationPreference == domain.LevelHigh {
		response += "\n\nThis would work best as a collaborative effort, bringing together different perspectives and expertise to ensure the best possible outcome."
	}
	if traits.ImplementationFocus == domain.LevelHigh {
		response += "\n\nMost importantly, I'd want to ensure we have a concrete plan for implementation with clear responsibilities, timelines, and success metrics."
	}
	return response
}

func (e *ReasoningEngine) identifyDecisionFactors() []string {
	traits := e.profile.CognitiveTraits
	factors := []string{
		"Potential outcomes and their likelihood",
		"Available resources and constraints",
		"Alignment with goals and values",
	}

	if traits.AnalyticalTendency > 0.6 {
		factors = append(factors, "Data and evidence supporting each option")
	}
	if traits.CreativeTendency > 0.6 {
		factors = append(factors, "Opportunities for innovation and creative solutions")
	}
	if traits.StakeholderAwareness == domain.LevelHigh {
		factors = append(factors, "Impact on all stakeholders and their perspectives")
	}
	if traits.RiskAssessmentStyle == domain.LevelHigh {
		factors = append(factors, "Risk assessment and contingency planning")
	}
	if traits.CollaborationPreference == domain.LevelHigh {
		factors = append(factors, "Potential for collaboration and team input")
	}
	if e.profile.DecisionMakingProfile.ImplementationOrientation == domain.LevelHigh {
		factors = append(factors, "Practical implementation feasibility")
	}

	if len(factors) > 6 {
		factors = factors[:6]
	}
	return factors
}

// La confianza queda acotada a [0.5, 0.95]: el clon nunca es categorico
// ni completamente inseguro.
func (e *ReasoningEngine) calculateConfidence(complexity, approach string) float64 {
	confidence := 0.75

	switch complexity {
	case "simple":
		confidence += 0.15
	case "complex":
		confidence -= 0.10
	}

	if approach == string(e.profile.CognitiveTraits.PrimaryThinkingStyle) {
		confidence += 0.10
	}

	confidence += (e.profile.CognitiveTraits.DecisionConfidence - 0.5) * 0.2
	confidence *= e.settings.ConfidenceAdjustment

	return math.Max(0.5, math.Min(0.95, confidence))
}
