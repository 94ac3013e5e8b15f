package chunker

import "strings"

// How far back from the window end we look for a sentence-terminating period.
const sentenceLookback = 100

// WindowChunker splits text into fixed-size windows with overlap, preferring
// to end each window at a sentence boundary. Sizes are in runes.
type WindowChunker struct {
	maxSize int
	overlap int
}

// New creates a chunker producing windows of at most maxSize runes that
// overlap by overlap runes.
func New(maxSize, overlap int) *WindowChunker {
	if maxSize <= 0 {
		maxSize = 1000
	}
	if overlap < 0 || overlap >= maxSize {
		overlap = maxSize / 5
	}
	return &WindowChunker{maxSize: maxSize, overlap: overlap}
}

// Chunk splits text into an ordered sequence of non-empty chunks.
// Text that fits in a single window is returned as one chunk unchanged.
// The same input always yields the same sequence.
func (c *WindowChunker) Chunk(text string) []string {
	runes := []rune(text)
	if len(runes) <= c.maxSize {
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + c.maxSize
		if end < len(runes) {
			// Back off to the last period in the window, but only if it falls
			// within the final lookback runes; otherwise keep the raw boundary.
			if p := lastPeriod(runes, start, end); p > start+c.maxSize-sentenceLookback {
				end = p + 1
			}
		}

		// Only the slice is clamped; the advance below uses the raw end, so
		// the final window does not restart inside the text.
		sliceEnd := min(end, len(runes))
		chunk := strings.TrimSpace(string(runes[start:sliceEnd]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		next := end - c.overlap
		if next <= start {
			// Sentence backoff shrank the window below the overlap; move past
			// the window instead of looping in place.
			next = end
		}
		start = next
	}
	return chunks
}

// lastPeriod returns the index of the last '.' in runes[start:end), or -1.
func lastPeriod(runes []rune, start, end int) int {
	for i := end - 1; i >= start; i-- {
		if runes[i] == '.' {
			return i
		}
	}
	return -1
}
