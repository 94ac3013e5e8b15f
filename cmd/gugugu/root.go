package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gugugu/internal/chunker"
	"gugugu/internal/config"
	"gugugu/internal/docfile"
	"gugugu/internal/embedding"
	"gugugu/internal/embedding/openai"
	"gugugu/internal/vectorstore"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "gugugu",
	Short: "Document embedding store with cosine-similarity search",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to YAML config (default gugugu.yaml, then ~/.config/gugugu/config.yaml)")
}

// loadConfig loads .env and the YAML config the same way for every command.
func loadConfig() (*config.AppConfig, error) {
	_ = godotenv.Load()
	if flagConfig != "" {
		return config.Load(flagConfig)
	}
	cfg, _, err := config.LoadDefault()
	return cfg, err
}

// openStore assembles the resolver, chunker, embedder, and store from config.
// A provider that cannot be constructed (usually a missing API key) is logged
// and replaced by nil: the store then serves pseudo-random fallback vectors
// instead of refusing to start.
func openStore(cfg *config.AppConfig) (*vectorstore.Store, error) {
	var emb embedding.Embedder
	if oc := cfg.Embedder.OpenAI; oc != nil {
		client, err := openai.NewClient(openai.Config{
			BaseURL:   oc.BaseURL,
			APIKeyEnv: oc.APIKeyEnv,
			Model:     oc.Model,
			Timeout:   time.Duration(oc.TimeoutSecs) * time.Second,
		})
		if err != nil {
			log.Printf("embedder unavailable (%v); degrading to fallback vectors", err)
		} else {
			emb = client
		}
	}

	return vectorstore.Open(vectorstore.Options{
		StorageDir: cfg.StorageDir,
		Resolver:   docfile.NewResolver(cfg.DocumentDir),
		Embedder:   emb,
		Chunker:    chunker.New(cfg.Chunker.ChunkSize, cfg.Chunker.Overlap),
	})
}
