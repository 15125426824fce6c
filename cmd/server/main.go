package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/rueidis"

	"github.com/niharsaraf26/smartdocs/internal/ai"
	"github.com/niharsaraf26/smartdocs/internal/ai/embcache"
	_ "github.com/niharsaraf26/smartdocs/internal/ai/providers"
	"github.com/niharsaraf26/smartdocs/internal/config"
	"github.com/niharsaraf26/smartdocs/internal/handler"
	"github.com/niharsaraf26/smartdocs/internal/port"
	"github.com/niharsaraf26/smartdocs/internal/qna"
	"github.com/niharsaraf26/smartdocs/internal/repository/postgres"
	"github.com/niharsaraf26/smartdocs/internal/router"
	"github.com/niharsaraf26/smartdocs/internal/service"
	"github.com/niharsaraf26/smartdocs/internal/storage/s3"
	"github.com/niharsaraf26/smartdocs/internal/vectorstore/pinecone"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: load config: %v", err)
	}

	ctx := context.Background()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		log.Fatalf("main: %v", err)
	}
	defer db.Close()

	documentRepo := postgres.NewDocumentRepository(db)
	metadataRepo := postgres.NewMetadataRepository(db)
	userRepo := postgres.NewUserRepository(db)

	routingGen, err := ai.NewGenerator(cfg.Routing)
	if err != nil {
		log.Fatalf("main: routing generator: %v", err)
	}
	answerGen, err := ai.NewGenerator(cfg.Generation)
	if err != nil {
		log.Fatalf("main: answer generator: %v", err)
	}

	embedder, err := ai.NewEmbedder(cfg.Embedding)
	if err != nil {
		log.Fatalf("main: embedder: %v", err)
	}
	embedder = wrapWithCache(embedder, &cfg.Redis)

	index, err := pinecone.New(&cfg.Pinecone)
	if err != nil {
		log.Fatalf("main: pinecone: %v", err)
	}

	storage, err := s3.NewClient(ctx, &cfg.S3)
	if err != nil {
		log.Fatalf("main: s3: %v", err)
	}

	authService := service.NewAuthService(userRepo, &cfg.JWT)
	documentService := service.NewDocumentService(
		documentRepo, metadataRepo, storage, index,
		cfg.S3.MaxFileSizeMB, cfg.S3.PresignExpiry)
	ingestService := service.NewIngestService(documentRepo, metadataRepo, embedder, index)
	qnaService := qna.NewService(
		qna.NewClassifier(routingGen), answerGen, embedder, index,
		documentRepo, metadataRepo, cfg.QnA.TopK, cfg.QnA.MaxContextChars)

	engine := router.New(cfg, authService, router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Document: handler.NewDocumentHandler(documentService, ingestService),
		Answer:   handler.NewAnswerHandler(qnaService),
		Health:   handler.NewHealthHandler(db),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("main: listening on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main: serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("main: shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("main: shutdown: %v", err)
	}
}

// wrapWithCache layers the Redis embedding cache over the embedder when a
// Redis address is configured.
func wrapWithCache(embedder port.Embedder, cfg *config.RedisConfig) port.Embedder {
	if cfg.Address == "" {
		return embedder
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress: []string{cfg.Address},
		Password:    cfg.Password,
		SelectDB:    cfg.DB,
	})
	if err != nil {
		log.Printf("main: redis unavailable, embedding cache disabled: %v", err)
		return embedder
	}

	log.Printf("main: embedding cache enabled at %s", cfg.Address)
	return embcache.New(embedder, client, 14*24*time.Hour)
}
