package nlp

// MockAnalyzer permite fijar el resultado de analisis en tests.
type MockAnalyzer struct {
	Result Analysis
	Err    error
}

func (m *MockAnalyzer) Analyze(text string) (Analysis, error) {
	return m.Result, m.Err
}
