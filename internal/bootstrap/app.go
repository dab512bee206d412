package bootstrap

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"resumecraft-backend/internal/conversations"
	"resumecraft-backend/internal/docgen"
	"resumecraft-backend/internal/llm"
	openai "resumecraft-backend/internal/llm/openai"
	"resumecraft-backend/internal/profile"
	"resumecraft-backend/internal/shared/config"
	"resumecraft-backend/internal/shared/server"
	"resumecraft-backend/internal/tailor"
	"resumecraft-backend/internal/uploads"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine

	ProfileStore      profile.Store
	ChatStore         conversations.ChatStore
	ConversationStore conversations.ConversationStore
	Slot              *uploads.SlotStore
	LLM               llm.Client

	ProfileService *profile.Service
	TailorService  *tailor.Service
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}

	profileStore := profile.NewFileStore(cfg.ProfilePath())
	chatStore := conversations.NewFileChatStore(cfg.ChatHistoryPath())
	conversationStore := conversations.NewFileConversationStore(cfg.ConversationsPath())
	slot := uploads.NewSlotStore(cfg.ResumesDir)

	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	profileSvc := profile.NewService(profileStore)
	tailorSvc := tailor.NewService(profileSvc, slot, llmClient)
	pdfRenderer := &docgen.PDFRenderer{FontPath: cfg.PDFFontPath, OutDir: cfg.DataDir}

	app := &App{
		Config:            cfg,
		ProfileStore:      profileStore,
		ChatStore:         chatStore,
		ConversationStore: conversationStore,
		Slot:              slot,
		LLM:               llmClient,
		ProfileService:    profileSvc,
		TailorService:     tailorSvc,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:               cfg,
		ProfileHandler:       profile.NewHandler(profileSvc),
		ConversationsHandler: conversations.NewHandler(chatStore, conversationStore),
		UploadsHandler:       uploads.NewHandler(slot),
		TailorHandler:        tailor.NewHandler(tailorSvc),
		DownloadHandler:      docgen.NewHandler(profileSvc, cfg.ResumesDir, pdfRenderer),
	})

	return app, nil
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if cfg.LLMProvider != "openai" {
		return llm.PlaceholderClient{}, nil
	}
	client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	if err != nil {
		if cfg.Env == "production" {
			return nil, err
		}
		log.Printf("bootstrap: openai client unavailable, using placeholder: %v", err)
		return llm.PlaceholderClient{}, nil
	}
	return client, nil
}
