package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Chunker.ChunkSize != 1000 || cfg.Chunker.Overlap != 200 {
		t.Errorf("chunker defaults = %+v", cfg.Chunker)
	}
	if cfg.Search.TopK != 5 {
		t.Errorf("top_k default = %d", cfg.Search.TopK)
	}
	if cfg.Embedder.OpenAI == nil || cfg.Embedder.OpenAI.APIKeyEnv != "OPENAI_API_KEY" {
		t.Errorf("embedder defaults = %+v", cfg.Embedder)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := &AppConfig{
		StorageDir:  "/tmp/vectors",
		DocumentDir: "/tmp/docs",
		Chunker:     ChunkerConfig{ChunkSize: 500, Overlap: 50},
		Search:      SearchConfig{TopK: 3},
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if got.StorageDir != want.StorageDir || got.DocumentDir != want.DocumentDir {
		t.Errorf("directories = %s / %s", got.StorageDir, got.DocumentDir)
	}
	if got.Chunker != want.Chunker {
		t.Errorf("chunker = %+v, want %+v", got.Chunker, want.Chunker)
	}
	if got.Search.TopK != 3 {
		t.Errorf("top_k = %d, want 3", got.Search.TopK)
	}
}

func TestLoadPartialConfigAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("storage_dir: /data\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.StorageDir != "/data" {
		t.Errorf("storage_dir = %s", cfg.StorageDir)
	}
	if cfg.Chunker.ChunkSize != 1000 {
		t.Errorf("chunk_size default not applied: %d", cfg.Chunker.ChunkSize)
	}
	if cfg.Embedder.Type != "openai" {
		t.Errorf("embedder type default not applied: %s", cfg.Embedder.Type)
	}
}
