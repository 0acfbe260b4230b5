package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getzep/csmentor/config"
	"github.com/getzep/csmentor/pkg/auth"
	"github.com/getzep/csmentor/pkg/intents"
	"github.com/getzep/csmentor/pkg/models"
	"github.com/getzep/csmentor/pkg/qa"
	"github.com/getzep/csmentor/pkg/resolver"
	"github.com/getzep/csmentor/pkg/server"
)

const shutdownTimeout = 10 * time.Second

// run is the entrypoint for the csmentor server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring csmentor: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting csmentor server version %s", config.VersionString)

	config.SetLogLevel(cfg)
	appState := NewAppState(cfg)

	srv := server.Create(appState)
	setupSignalHandler(srv)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// NewAppState loads the intent corpus and QA model described by cfg and builds the
// resolver. A corpus that fails to load is recorded on the AppState rather than
// aborting startup, so /health can report it.
func NewAppState(cfg *config.Config) *models.AppState {
	appState := &models.AppState{
		Config: cfg,
	}

	strategy, err := resolver.ParseStrategy(cfg.Answer.Strategy)
	if err != nil {
		log.Fatal(err)
	}

	corpus, err := intents.NewLoader().Load(cfg.Intents.Path)
	if err != nil {
		log.Errorf("Failed to load intents from %s: %v", cfg.Intents.Path, err)
		appState.CorpusErr = err
	}
	appState.Corpus = corpus

	var model qa.Model
	if strategy != resolver.StrategyIntents {
		model, err = qa.NewModel(&cfg.QA)
		if err != nil {
			log.Fatalf("Failed to initialize qa model: %v", err)
		}
		appState.ModelName = model.Name()
		log.Info("Using qa model: ", model.Name())
	}

	if corpus == nil && strategy != resolver.StrategyModel {
		// Nothing to answer from until the corpus is fixed and the process restarted.
		return appState
	}

	r, err := resolver.NewFromConfig(&cfg.Answer, corpus, model)
	if err != nil {
		log.Fatal(err)
	}
	appState.Resolver = r

	log.Info("Using answer strategy: ", r.Strategy())

	return appState
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if dumpConfig {
		redacted := *cfg
		if redacted.Auth.Secret != "" {
			redacted.Auth.Secret = "********"
		}
		out, err := json.MarshalIndent(redacted, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(out))
		os.Exit(0)
	}
	if generateKey {
		token, err := auth.GenerateJWT(cfg, 0)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(token)
		os.Exit(0)
	}
}

// setupSignalHandler shuts the server down gracefully on termination
func setupSignalHandler(srv *http.Server) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("Error shutting down server: %v", err)
		}
	}()
}
