package vectorstore

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"

	"gugugu/internal/domain"
)

// The three persisted artifacts. Each is rewritten in full on every mutating
// operation and read in full at startup; there is no append log and no
// transaction across them.
const (
	embeddingsArtifact = "embeddings.gob.gz"
	chunksArtifact     = "chunks.json"
	filesArtifact      = "files.json"
)

// flushLocked writes all three artifacts. Failures are logged and swallowed:
// the in-memory mutation stands and disk catches up on the next successful
// flush. Caller holds the write lock.
func (s *Store) flushLocked() {
	if err := s.writeEmbeddings(); err != nil {
		log.Printf("vectorstore: %v", &domain.PersistenceError{Artifact: embeddingsArtifact, Err: err})
	}
	if err := writeJSON(filepath.Join(s.storageDir, chunksArtifact), s.chunks); err != nil {
		log.Printf("vectorstore: %v", &domain.PersistenceError{Artifact: chunksArtifact, Err: err})
	}
	if err := writeJSON(filepath.Join(s.storageDir, filesArtifact), s.files); err != nil {
		log.Printf("vectorstore: %v", &domain.PersistenceError{Artifact: filesArtifact, Err: err})
	}
}

// load reads the artifacts into the store and reconciles the chunk and
// embedding maps: an identifier present in only one of them (a crash between
// artifact writes) is dropped from both. Called once from Open.
func (s *Store) load() {
	if err := s.readEmbeddings(); err != nil && !os.IsNotExist(err) {
		log.Printf("vectorstore: %v", &domain.PersistenceError{Artifact: embeddingsArtifact, Err: err})
	}
	if err := readJSON(filepath.Join(s.storageDir, chunksArtifact), &s.chunks); err != nil && !os.IsNotExist(err) {
		log.Printf("vectorstore: %v", &domain.PersistenceError{Artifact: chunksArtifact, Err: err})
	}
	if err := readJSON(filepath.Join(s.storageDir, filesArtifact), &s.files); err != nil && !os.IsNotExist(err) {
		log.Printf("vectorstore: %v", &domain.PersistenceError{Artifact: filesArtifact, Err: err})
	}

	dropped := 0
	for id := range s.chunks {
		if _, ok := s.embeddings[id]; !ok {
			delete(s.chunks, id)
			dropped++
		}
	}
	for id := range s.embeddings {
		if _, ok := s.chunks[id]; !ok {
			delete(s.embeddings, id)
			dropped++
		}
	}
	if dropped > 0 {
		log.Printf("vectorstore: dropped %d orphaned entries while loading", dropped)
	}

	// Maps carry no order; rebuild a deterministic one.
	s.order = s.order[:0]
	for id := range s.chunks {
		s.order = append(s.order, id)
	}
	sort.Slice(s.order, func(i, j int) bool {
		a, b := s.chunks[s.order[i]], s.chunks[s.order[j]]
		if a.FilePath != b.FilePath {
			return a.FilePath < b.FilePath
		}
		return a.Index < b.Index
	})
}

func (s *Store) writeEmbeddings() error {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if err := gob.NewEncoder(gz).Encode(s.embeddings); err != nil {
		return err
	}
	if err := gz.Close(); err != nil {
		return err
	}
	return writeAtomic(filepath.Join(s.storageDir, embeddingsArtifact), buf.Bytes())
}

func (s *Store) readEmbeddings() error {
	f, err := os.Open(filepath.Join(s.storageDir, embeddingsArtifact))
	if err != nil {
		return err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return err
	}
	defer gz.Close()
	return gob.NewDecoder(gz).Decode(&s.embeddings)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// writeAtomic writes to a temp file and renames it into place, so a crash
// mid-write never leaves a truncated artifact. Renames are not transactional
// across artifacts.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
