package embedding

// Embedder converts free text into a fixed-dimension vector representation.
// Implementations talk to a remote model; callers must be prepared for Embed
// to fail and degrade accordingly.
type Embedder interface {
	Name() string
	// Dimension reports the vector size, or 0 if no embedding has been
	// produced yet (remote providers learn it from the first response).
	Dimension() int
	Embed(text string) ([]float64, error)
}
