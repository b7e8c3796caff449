package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	httpadapter "github.com/cityhospital/assistant/internal/adapters/http"
	"github.com/cityhospital/assistant/internal/adapters/llm"
	memstore "github.com/cityhospital/assistant/internal/adapters/storage/memory"
	sqlitestore "github.com/cityhospital/assistant/internal/adapters/storage/sqlite"
	"github.com/cityhospital/assistant/internal/app/classifier"
	"github.com/cityhospital/assistant/internal/app/conversation"
	"github.com/cityhospital/assistant/internal/app/records"
	"github.com/cityhospital/assistant/internal/app/store"
	"github.com/cityhospital/assistant/internal/config"
	"github.com/cityhospital/assistant/internal/domain"
	"github.com/cityhospital/assistant/internal/observability"
)

func main() {
	ctx := context.Background()
	log := observability.Component("main")

	// Optional .env for local development.
	_ = godotenv.Load()

	cfg := config.Load()

	// Storage: sqlite (durable, the default) or memory.
	var stateStore domain.StateStore
	switch cfg.StorageBackend {
	case "memory":
		log.Info("using in-memory storage")
		stateStore = memstore.NewStateStore()
	default:
		log.Info("using sqlite storage", "path", cfg.SQLitePath)
		db, err := sqlitestore.New(cfg.SQLitePath)
		if err != nil {
			log.Error("failed to open sqlite store", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		stateStore = db
	}

	// LLM: mock, Gemini, or none. With no client the classifier runs in
	// offline mode (rule tier only, placeholder ids).
	var llmClient domain.LLMClient
	switch {
	case cfg.UseMockLLM:
		log.Info("using mock LLM client")
		llmClient = llm.NewMockLLM()
	case cfg.GeminiAPIKey != "":
		log.Info("using Gemini LLM client", "model", cfg.ModelName)
		client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.ModelName)
		if err != nil {
			log.Error("failed to initialize Gemini client", "error", err)
			os.Exit(1)
		}
		llmClient = client
	default:
		log.Info("no Gemini credential configured, classification is rule-only")
	}

	st := store.New(ctx, stateStore)
	cls := classifier.New(llmClient, cfg.LLMTimeout)

	convSvc := conversation.NewService(cls, st)
	recSvc := records.NewService(st)

	handler := httpadapter.NewServer(convSvc, recSvc, stateStore)

	addr := ":" + cfg.Port
	log.Info("hospital assistant API listening", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
