package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"vocal-feed/internal/audio"
	"vocal-feed/internal/entity"
	"vocal-feed/internal/repo/cache"
	"vocal-feed/internal/repo/persistent"
	"vocal-feed/internal/tts"
	"vocal-feed/internal/usecase"
	"vocal-feed/pkg/blob"
	"vocal-feed/pkg/config"
	"vocal-feed/pkg/database"
	"vocal-feed/pkg/jwt"
	"vocal-feed/pkg/logger"
	"vocal-feed/pkg/metrics"
)

type seedPost struct {
	input     entity.PostInput
	withAudio bool
}

var testUsers = []struct {
	email    string
	pseudo   string
	password string
	posts    []seedPost
}{
	{"alice@test.com", "alice", "password123", []seedPost{
		{entity.PostInput{Type: "Post A", Content: "Good morning everyone, the coffee is ready.", Hashtags: []string{"morning", "coffee"}, TTSInstructions: "calm"}, true},
		{entity.PostInput{Type: "Post B", Title: "Reading list", Content: "Three books I want to finish this month.", Hashtags: []string{"books"}}, false},
	}},
	{"bob@test.com", "bob", "password123", []seedPost{
		{entity.PostInput{Type: "Post A", Content: "Match tonight! Who is watching?", Hashtags: []string{"sport"}, TTSInstructions: "energetic"}, true},
		{entity.PostInput{Type: "Post A", Content: "Private note to self.", Visibility: "private"}, false},
	}},
	{"charlie@test.com", "charlie", "password123", []seedPost{
		{entity.PostInput{Type: "Post B", Title: "Once upon a time", Content: "A short story told in three sentences.", TTSInstructions: "narrator"}, true},
	}},
}

func main() {
	withDrafts := flag.Bool("drafts", true, "also save one draft per user")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}
	defer database.Close(db)

	store, err := blob.NewFileStore(cfg.AudioDir)
	if err != nil {
		log.Error("Failed to open audio directory: %v", err)
		panic(err)
	}
	enricher, err := tts.LoadEnricher(cfg.TTSPresetsPath)
	if err != nil {
		log.Error("Failed to load tts presets: %v", err)
		panic(err)
	}
	var engine tts.Engine = tts.StubEngine{}
	if cfg.TTSAPIKey != "" {
		engine = tts.NewHTTPEngine(cfg.TTSAPIURL, cfg.TTSAPIKey, cfg.TTSModelID, cfg.TTSTimeout, cfg.TTSRatePerMin)
	}
	audioCache := audio.NewCache(store, engine, enricher, cfg.AudioURLBase, metrics.Noop{}, log)

	postUseCase := usecase.NewPostUseCase(persistent.NewPostRepository(db), audioCache, nil, cache.NewPostCache(nil), log)
	authUseCase := usecase.NewAuthUseCase(persistent.NewUserRepository(db), jwt.NewService("seed"), log)

	if err := seedDatabase(context.Background(), authUseCase, postUseCase, *withDrafts, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(ctx context.Context, auth usecase.AuthUseCase, posts usecase.PostUseCase, withDrafts bool, log *logger.Logger) error {
	for _, userData := range testUsers {
		user, _, err := auth.Register(ctx, userData.email, userData.password, userData.pseudo)
		if errors.Is(err, entity.ErrConflict) {
			log.Info("User %s already exists, skipping", userData.pseudo)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.pseudo, err)
		}
		log.Info("Created user: %s (%s)", user.Pseudo, user.Email)

		for _, sp := range userData.posts {
			post, err := posts.CreatePost(ctx, user.ID, sp.input)
			if err != nil {
				log.Error("Failed to create post for user %s: %v", user.Pseudo, err)
				continue
			}
			if sp.withAudio {
				result, err := posts.GenerateAndAttachAudio(ctx, post.Content, post.TTSInstructions, post.ID)
				if err != nil {
					log.Error("Failed to generate audio for post %s: %v", post.ID, err)
					continue
				}
				log.Info("Attached audio %s to post %s", result.URL, post.ID)
			}
		}

		if withDrafts {
			if _, err := posts.SaveDraft(ctx, user.ID, entity.PostInput{Content: "Half-finished thought from " + user.Pseudo}); err != nil {
				log.Error("Failed to save draft for user %s: %v", user.Pseudo, err)
			}
		}
	}
	return nil
}
