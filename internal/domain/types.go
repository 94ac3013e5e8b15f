package domain

import (
	"fmt"
	"time"
)

// Chunk is a bounded substring of a document, the unit of embedding and retrieval.
type Chunk struct {
	FilePath string `json:"file_path"`
	Index    int    `json:"chunk_index"`
	Content  string `json:"content"`
	Length   int    `json:"length"`
}

// ID returns the chunk identifier, unique within the store.
func (c Chunk) ID() string {
	return ChunkID(c.FilePath, c.Index)
}

// ChunkID builds a chunk identifier from its owning path and zero-based index.
func ChunkID(filePath string, index int) string {
	return fmt.Sprintf("%s#%d", filePath, index)
}

// FileMetadata tracks a processed document for change detection and reporting.
// It is keyed by the document's canonical absolute path and never used for search.
type FileMetadata struct {
	Hash        string    `json:"hash"`
	ChunkCount  int       `json:"chunk_count"`
	ProcessedAt time.Time `json:"processed_at"`
}

// SearchResult is a chunk annotated with its similarity to a query.
// KeywordScore and CombinedScore are zero until the result is reranked.
type SearchResult struct {
	ChunkID       string  `json:"chunk_id"`
	Chunk         Chunk   `json:"chunk"`
	Similarity    float64 `json:"similarity"`
	KeywordScore  float64 `json:"keyword_score"`
	CombinedScore float64 `json:"combined_score"`
}

// FileInfo describes one tracked document for listing.
type FileInfo struct {
	FilePath    string    `json:"file_path"`
	FileName    string    `json:"file_name"`
	ChunkCount  int       `json:"chunk_count"`
	ProcessedAt time.Time `json:"processed_at"`
	Exists      bool      `json:"exists"`
}

// FileStat is the per-file entry inside Stats.
type FileStat struct {
	FilePath   string `json:"file_path"`
	ChunkCount int    `json:"chunk_count"`
	Exists     bool   `json:"exists"`
}

// Stats aggregates counts over the whole store.
type Stats struct {
	TotalFiles       int        `json:"total_files"`
	TotalChunks      int        `json:"total_chunks"`
	AvgChunksPerFile float64    `json:"avg_chunks_per_file"`
	Files            []FileStat `json:"files"`
	StorageSizeMB    float64    `json:"storage_size_mb"`
}
