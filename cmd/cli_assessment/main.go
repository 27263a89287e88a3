package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"mind-clone/internal/nlp"
	"mind-clone/internal/repository"
	"mind-clone/internal/service"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	logger := zap.NewExample()
	defer logger.Sync()

	analyzer := service.NewResponseAnalyzer(nlp.NewBasicAnalyzer())
	generator := service.NewProfileGenerator(logger)
	store := service.NewMemoryAssessmentStore()
	assessmentSvc := service.NewAssessmentService(analyzer, generator, store, logger)
	profileRepo := repository.NewMemoryProfileRepository()

	fmt.Println("=== Cognitive Assessment ===")
	fmt.Println("Responde cada pregunta y presiona Enter. Escribe 'quit' para salir.")
	fmt.Println()

	state, prompt, err := assessmentSvc.Start(ctx)
	if err != nil {
		log.Fatal(err)
	}

	for {
		fmt.Printf("Assistant: %s\n\n> ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			log.Fatal(err)
		}
		line = strings.TrimSpace(line)
		if line == "quit" {
			fmt.Println("Sesion abandonada.")
			return
		}
		if line == "" {
			fmt.Println("(respuesta vacia, intenta de nuevo)")
			continue
		}

		next, done, err := assessmentSvc.Submit(ctx, state.SessionID, line)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		if done {
			break
		}
		prompt = next
		fmt.Println()
	}

	fmt.Println("\n=== Assessment completo ===")

	profile, err := assessmentSvc.Results(ctx, state.SessionID)
	if err != nil {
		log.Fatal(err)
	}
	if err := profileRepo.Save(ctx, profile); err != nil {
		log.Fatal(err)
	}

	payload, _ := json.MarshalIndent(profile, "", "  ")
	fmt.Println(string(payload))

	engine := service.NewReasoningEngine(profile, service.CloneSettings{})
	fmt.Println("\nEscribe un problema para razonarlo con tu perfil (Enter vacio para terminar):")
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" || line == "quit" {
			return
		}
		result := engine.ReasonAboutProblem(line, "medium")
		fmt.Printf("\n%s\n\n(confianza: %.2f, enfoque: %s)\n\n", result.Response, result.Confidence, result.ReasoningApproach)
	}
}
