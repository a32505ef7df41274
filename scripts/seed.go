package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/application/services"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
	"github.com/GowthamPulluri/Healthcare-chatbot/internal/infrastructure/clients/postgres"
	"github.com/GowthamPulluri/Healthcare-chatbot/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	api_token TEXT NOT NULL UNIQUE,
	preferred_language TEXT NOT NULL DEFAULT 'en',
	conditions JSONB NOT NULL DEFAULT '[]',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS chat_messages (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	role TEXT NOT NULL,
	content TEXT NOT NULL,
	language TEXT NOT NULL,
	intent TEXT,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_chat_messages_user_created
	ON chat_messages (user_id, created_at);
`

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()
	db := pgClient.DB()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := db.ExecContext(ctx, `
			TRUNCATE TABLE
				chat_messages,
				users
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}
	log.Println("Schema is in place")

	// 1. Seed demo users, one per supported language. Fixed IDs and tokens
	// so reruns are no-ops and curl examples keep working.
	demoUsers := []entities.User{
		{
			ID:                "7c9e6679-7425-40de-944b-e07fc1f90ae7",
			Name:              "Asha Rao",
			Email:             "asha@example.com",
			APIToken:          "dev-token-asha",
			PreferredLanguage: "en",
			Conditions:        []string{"diabetes"},
		},
		{
			ID:                "550e8400-e29b-41d4-a716-446655440001",
			Name:              "Priya Sharma",
			Email:             "priya@example.com",
			APIToken:          "dev-token-priya",
			PreferredLanguage: "hi",
			Conditions:        []string{"hypertension", "asthma"},
		},
		{
			ID:                "550e8400-e29b-41d4-a716-446655440002",
			Name:              "Ravi Kumar",
			Email:             "ravi@example.com",
			APIToken:          "dev-token-ravi",
			PreferredLanguage: "te",
			Conditions:        []string{},
		},
		{
			ID:                "550e8400-e29b-41d4-a716-446655440003",
			Name:              "Meena Lakshmi",
			Email:             "meena@example.com",
			APIToken:          "dev-token-meena",
			PreferredLanguage: "ta",
			Conditions:        []string{},
		},
		{
			ID:                "550e8400-e29b-41d4-a716-446655440004",
			Name:              "Arjun Gowda",
			Email:             "arjun@example.com",
			APIToken:          "dev-token-arjun",
			PreferredLanguage: "kn",
			Conditions:        []string{},
		},
		{
			ID:                "550e8400-e29b-41d4-a716-446655440005",
			Name:              "Lakshmi Nair",
			Email:             "lakshmi@example.com",
			APIToken:          "dev-token-lakshmi",
			PreferredLanguage: "ml",
			Conditions:        []string{"thyroid"},
		},
	}

	for _, u := range demoUsers {
		conditions, err := json.Marshal(u.Conditions)
		if err != nil {
			log.Fatalf("Failed to encode conditions for %s: %v", u.Email, err)
		}

		_, err = db.ExecContext(ctx, `
			INSERT INTO users (id, name, email, api_token, preferred_language, conditions, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				email = EXCLUDED.email,
				api_token = EXCLUDED.api_token,
				preferred_language = EXCLUDED.preferred_language,
				conditions = EXCLUDED.conditions,
				updated_at = NOW()`,
			u.ID, u.Name, u.Email, u.APIToken, u.PreferredLanguage, conditions,
		)
		if err != nil {
			log.Printf("Failed to upsert user %s: %v", u.Email, err)
		}
	}

	// 2. Seed a short transcript for the English demo user. The assistant
	// turn is synthesized by the real services so the stored reply matches
	// what the live pipeline would have said.
	intentService, err := services.NewIntentService(
		filepath.Join(cfg.Chat.DataDir, "intent_patterns.json"),
		filepath.Join(cfg.Chat.DataDir, "entity_vocabulary.json"),
	)
	if err != nil {
		log.Fatalf("Failed to load intent tables: %v", err)
	}
	kb, err := services.NewKnowledgeBaseService(filepath.Join(cfg.Chat.DataDir, "knowledge_base.json"))
	if err != nil {
		log.Fatalf("Failed to load knowledge base: %v", err)
	}
	responseService := services.NewResponseService(kb)

	asha := demoUsers[0]
	question := "what is diabetes"
	detected := intentService.DetectIntent(question)
	reply := responseService.GetMedicalResponse(detected.Intent, detected.Entities, asha.Conditions, "en")

	now := time.Now().UTC()
	transcript := []entities.ChatMessage{
		{
			ID:        "b3f1a2c4-0d5e-4f6a-8b7c-9d0e1f2a3b41",
			UserID:    asha.ID,
			Role:      entities.ChatRoleUser,
			Content:   question,
			Language:  "en",
			Intent:    string(detected.Intent),
			CreatedAt: now,
		},
		{
			ID:        "b3f1a2c4-0d5e-4f6a-8b7c-9d0e1f2a3b42",
			UserID:    asha.ID,
			Role:      entities.ChatRoleAssistant,
			Content:   reply.Response,
			Language:  "en",
			CreatedAt: now.Add(time.Millisecond),
		},
	}

	for _, m := range transcript {
		_, err := db.ExecContext(ctx, `
			INSERT INTO chat_messages (id, user_id, role, content, language, intent, created_at)
			VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
			ON CONFLICT (id) DO NOTHING`,
			m.ID, m.UserID, m.Role, m.Content, m.Language, m.Intent, m.CreatedAt,
		)
		if err != nil {
			log.Printf("Failed to insert transcript message %s: %v", m.ID, err)
		}
	}

	log.Println("Seeding completed. Demo API tokens:")
	for _, u := range demoUsers {
		log.Printf("  %-22s %-3s %s", u.Email, u.PreferredLanguage, u.APIToken)
	}
}
