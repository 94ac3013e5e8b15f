package vectorstore

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"gugugu/internal/chunker"
	"gugugu/internal/docfile"
	"gugugu/internal/domain"
	"gugugu/internal/embedding"
	"gugugu/internal/render"
)

// fallbackDimension is used for pseudo-random vectors when the provider has
// not yet reported its dimension.
const fallbackDimension = 1536

// Store is the aggregate root owning chunks, embeddings, and file metadata.
// The chunk and embedding maps are kept in lockstep: every chunk ID present
// in one is present in the other. A single lock serializes mutations and
// flushes; reads run concurrently against a consistent view.
type Store struct {
	mu         sync.RWMutex
	storageDir string
	resolver   *docfile.Resolver
	embedder   embedding.Embedder
	chunker    *chunker.WindowChunker

	chunks     map[string]domain.Chunk
	embeddings map[string][]float64
	files      map[string]domain.FileMetadata
	order      []string // chunk IDs in insertion order, for deterministic ranking ties
}

// Options configures a Store. Embedder may be nil, in which case every
// embedding degrades to a pseudo-random fallback vector.
type Options struct {
	StorageDir string
	Resolver   *docfile.Resolver
	Embedder   embedding.Embedder
	Chunker    *chunker.WindowChunker
}

// Open creates the storage directory if needed and loads the persisted
// artifacts. Unreadable or corrupt artifacts are logged and skipped; the
// store starts empty in that case.
func Open(opts Options) (*Store, error) {
	if err := os.MkdirAll(opts.StorageDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	ch := opts.Chunker
	if ch == nil {
		ch = chunker.New(1000, 200)
	}
	s := &Store{
		storageDir: opts.StorageDir,
		resolver:   opts.Resolver,
		embedder:   opts.Embedder,
		chunker:    ch,
		chunks:     make(map[string]domain.Chunk),
		embeddings: make(map[string][]float64),
		files:      make(map[string]domain.FileMetadata),
	}
	s.load()
	return s, nil
}

// AddDocument ingests the referenced document: resolve, fingerprint-compare,
// chunk, embed, replace the old chunk set, persist. It reports whether the
// document was (re)processed; an unchanged document is a no-op unless force
// is set.
func (s *Store) AddDocument(path, name string, force bool) (bool, error) {
	resolved, err := s.resolver.Resolve(path, name)
	if err != nil {
		return false, err
	}
	hash := docfile.Fingerprint(resolved)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !force {
		if meta, ok := s.files[resolved]; ok && meta.Hash == hash {
			return false, nil
		}
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", resolved, err)
	}
	content := string(data)
	if render.IsMarkdown(resolved) {
		content = render.PlainText(content)
	}

	pieces := s.chunker.Chunk(content)

	// Full replace: chunk indices are not stable across re-chunking.
	s.deleteFileChunksLocked(resolved)
	for i, piece := range pieces {
		ch := domain.Chunk{
			FilePath: resolved,
			Index:    i,
			Content:  piece,
			Length:   len([]rune(piece)),
		}
		id := ch.ID()
		s.chunks[id] = ch
		s.embeddings[id] = s.embedOrFallback(piece)
		s.order = append(s.order, id)
	}

	s.files[resolved] = domain.FileMetadata{
		Hash:        hash,
		ChunkCount:  len(pieces),
		ProcessedAt: time.Now().UTC(),
	}
	s.flushLocked()

	log.Printf("vectorstore: processed %s: %d chunks", resolved, len(pieces))
	return true, nil
}

// RemoveDocument deletes every chunk and embedding owned by path along with
// its file metadata, then persists. It reports whether the document was
// tracked; removing an untracked path mutates nothing.
func (s *Store) RemoveDocument(path string) bool {
	canonical := docfile.Canonical(path)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[canonical]; !ok {
		return false
	}
	removed := s.deleteFileChunksLocked(canonical)
	delete(s.files, canonical)
	s.flushLocked()

	log.Printf("vectorstore: removed %s: %d chunks deleted", canonical, removed)
	return true
}

// ListFiles enumerates tracked documents, ordered by path. A document can be
// missing from disk and still listed until it is removed.
func (s *Store) ListFiles() []domain.FileInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]domain.FileInfo, 0, len(s.files))
	for path, meta := range s.files {
		infos = append(infos, domain.FileInfo{
			FilePath:    path,
			FileName:    filepath.Base(path),
			ChunkCount:  meta.ChunkCount,
			ProcessedAt: meta.ProcessedAt,
			Exists:      fileExists(path),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].FilePath < infos[j].FilePath })
	return infos
}

// Stats aggregates store-wide counts and the on-disk artifact size.
func (s *Store) Stats() domain.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.Stats{
		TotalFiles:    len(s.files),
		TotalChunks:   len(s.chunks),
		StorageSizeMB: s.storageSizeMB(),
	}
	if stats.TotalFiles > 0 {
		stats.AvgChunksPerFile = float64(stats.TotalChunks) / float64(stats.TotalFiles)
	}
	for path, meta := range s.files {
		stats.Files = append(stats.Files, domain.FileStat{
			FilePath:   path,
			ChunkCount: meta.ChunkCount,
			Exists:     fileExists(path),
		})
	}
	sort.Slice(stats.Files, func(i, j int) bool { return stats.Files[i].FilePath < stats.Files[j].FilePath })
	return stats
}

// deleteFileChunksLocked removes all chunks and embeddings owned by path and
// returns how many were deleted. Caller holds the write lock.
func (s *Store) deleteFileChunksLocked(path string) int {
	removed := 0
	kept := s.order[:0]
	for _, id := range s.order {
		if s.chunks[id].FilePath == path {
			delete(s.chunks, id)
			delete(s.embeddings, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return removed
}

// embedOrFallback asks the provider for an embedding and substitutes a
// pseudo-random vector when the call fails, keeping ingestion and search
// available in degraded mode. Fallback-embedded chunks are not tagged.
func (s *Store) embedOrFallback(text string) []float64 {
	if s.embedder != nil {
		vec, err := s.embedder.Embed(text)
		if err == nil {
			return vec
		}
		log.Printf("vectorstore: %v", &domain.ProviderError{Err: err})
	}
	dim := 0
	if s.embedder != nil {
		dim = s.embedder.Dimension()
	}
	if dim <= 0 {
		dim = fallbackDimension
	}
	vec := make([]float64, dim)
	for i := range vec {
		vec[i] = rand.Float64()
	}
	return vec
}

func (s *Store) storageSizeMB() float64 {
	var total int64
	for _, name := range []string{embeddingsArtifact, chunksArtifact, filesArtifact} {
		if info, err := os.Stat(filepath.Join(s.storageDir, name)); err == nil {
			total += info.Size()
		}
	}
	return math.Round(float64(total)/(1024*1024)*100) / 100
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
