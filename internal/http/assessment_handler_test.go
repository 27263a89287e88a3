package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mind-clone/internal/nlp"
	"mind-clone/internal/repository"
	"mind-clone/internal/service"
)

func assessmentTestRouter(repo repository.ProfileRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	analyzer := service.NewResponseAnalyzer(nlp.NewBasicAnalyzer())
	generator := service.NewProfileGenerator(logger)
	assessments := service.NewAssessmentService(analyzer, generator, service.NewMemoryAssessmentStore(), logger)
	handler := NewAssessmentHandler(logger, assessments, repo)

	r := gin.New()
	r.POST("/assessment/start", handler.StartAssessment)
	r.POST("/assessment/:id/respond", handler.SubmitResponse)
	r.GET("/assessment/:id/results", handler.GetResults)
	return r
}

func submitJSON(t *testing.T, r *gin.Engine, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAssessmentHandler_FullSession(t *testing.T) {
	repo := repository.NewMemoryProfileRepository()
	r := assessmentTestRouter(repo)

	w := submitJSON(t, r, "/assessment/start", gin.H{})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var started struct {
		SessionID string `json:"session_id"`
		Phase     string `json:"phase"`
		Prompt    string `json:"prompt"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &started); err != nil {
		t.Fatalf("unmarshaling start response: %v", err)
	}
	if started.SessionID == "" || started.Phase != "personality" || started.Prompt == "" {
		t.Fatalf("unexpected start response: %+v", started)
	}

	respondURL := fmt.Sprintf("/assessment/%s/respond", started.SessionID)
	answer := gin.H{"text": "I like to analyze the data and plan with the team before deciding."}
	for i := 0; i < 19; i++ {
		w = submitJSON(t, r, respondURL, answer)
		if w.Code != http.StatusOK {
			t.Fatalf("respond %d: expected 200, got %d: %s", i, w.Code, w.Body.String())
		}
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/assessment/%s/results", started.SessionID), nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var results struct {
		Profile struct {
			ProfileID string `json:"profile_id"`
		} `json:"profile"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatalf("unmarshaling results: %v", err)
	}
	if results.Profile.ProfileID == "" {
		t.Fatal("expected a profile id in results")
	}

	// El perfil queda persistido en el repositorio.
	if _, err := repo.GetByID(context.Background(), results.Profile.ProfileID); err != nil {
		t.Fatalf("expected profile to be saved: %v", err)
	}
}

func TestAssessmentHandler_ErrorMapping(t *testing.T) {
	repo := repository.NewMemoryProfileRepository()
	r := assessmentTestRouter(repo)

	// Sesion inexistente.
	w := submitJSON(t, r, "/assessment/nope/respond", gin.H{"text": "hello"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	// Payload sin texto.
	w = submitJSON(t, r, "/assessment/start", gin.H{})
	var started struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &started); err != nil {
		t.Fatalf("unmarshaling start response: %v", err)
	}
	respondURL := fmt.Sprintf("/assessment/%s/respond", started.SessionID)
	w = submitJSON(t, r, respondURL, gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing text, got %d", w.Code)
	}

	// Resultados antes de terminar.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/assessment/%s/results", started.SessionID), nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for incomplete assessment, got %d", w.Code)
	}
}
