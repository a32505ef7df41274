package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/application/services"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/evaluation"
)

const defaultAccuracyFloor = 0.8

func main() {
	_ = godotenv.Load()

	intentService, err := services.NewIntentService(
		"config/intent_patterns.json",
		"config/entity_vocabulary.json",
	)
	if err != nil {
		log.Fatalf("Failed to load intent tables: %v", err)
	}

	kb, err := services.NewKnowledgeBaseService("config/knowledge_base.json")
	if err != nil {
		log.Fatalf("Failed to load knowledge base: %v", err)
	}
	responseService := services.NewResponseService(kb)

	cases, err := evaluation.LoadGoldenCases("config/eval_transcripts.json")
	if err != nil {
		log.Fatalf("Failed to load golden cases: %v", err)
	}
	if err := evaluation.ValidateGoldenCases(cases); err != nil {
		log.Fatalf("Golden cases are malformed: %v", err)
	}

	runner := evaluation.NewRunner(intentService, responseService)
	summary := runner.Run(cases)

	// Output results as JSON
	out, _ := json.MarshalIndent(summary, "", "  ")
	fmt.Println(string(out))

	floor := accuracyFloor()
	failed := false

	if summary.IntentAccuracy < floor {
		fmt.Fprintf(os.Stderr, "FAIL: intent accuracy %.3f is below the floor %.3f\n", summary.IntentAccuracy, floor)
		failed = true
	}
	for _, violation := range summary.Violations {
		fmt.Fprintf(os.Stderr, "FAIL: %s\n", violation)
		failed = true
	}

	if failed {
		os.Exit(1)
	}
}

// accuracyFloor reads EVAL_ACCURACY_FLOOR so CI can tighten the gate without
// a rebuild.
func accuracyFloor() float64 {
	raw := os.Getenv("EVAL_ACCURACY_FLOOR")
	if raw == "" {
		return defaultAccuracyFloor
	}

	floor, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Invalid EVAL_ACCURACY_FLOOR %q: %v", raw, err)
	}
	return floor
}
