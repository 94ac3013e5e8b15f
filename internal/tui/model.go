package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gugugu/internal/domain"
)

// StorePort is the TUI-facing subset of the vector store.
type StorePort interface {
	Search(query, path, name string, topK int) ([]domain.SearchResult, error)
	Rerank(results []domain.SearchResult, query string) []domain.SearchResult
	Stats() domain.Stats
}

// Model is the Bubble Tea model for the interactive search UI.
type Model struct {
	store     StorePort
	input     textinput.Model
	viewport  viewport.Model
	results   []domain.SearchResult
	status    string
	cursor    int
	ready     bool
	topK      int
	lastQuery string
}

// New creates a TUI over the given store. topK bounds each query.
func New(store StorePort, topK int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type query and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	stats := store.Stats()
	status := fmt.Sprintf("%d files, %d chunks indexed. Type to search.", stats.TotalFiles, stats.TotalChunks)
	return Model{store: store, input: ti, viewport: vp, topK: topK, status: status}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 1 + 1 + qh + 1 // header, status, query box, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderCurrentResult())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				res, err := m.store.Search(q, "", "", m.topK)
				if err != nil {
					m.status = "Error: " + err.Error()
					m.results = nil
				} else {
					m.results = m.store.Rerank(res, q)
					m.cursor = 0
					m.lastQuery = q
					m.status = fmt.Sprintf("Results for %q", q)
				}
				m.viewport.SetContent(m.renderCurrentResult())
				return m, nil
			}
		case "down":
			if len(m.results) > 0 {
				m.cursor = (m.cursor + 1) % len(m.results)
				m.viewport.SetContent(m.renderCurrentResult())
				return m, nil
			}
		case "up":
			if len(m.results) > 0 {
				m.cursor = (m.cursor - 1 + len(m.results)) % len(m.results)
				m.viewport.SetContent(m.renderCurrentResult())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and current result.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Gugugu Document Search")
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	results := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + results + "\n" + input + "\n" + status
}

func (m Model) renderCurrentResult() string {
	if len(m.results) == 0 {
		return "No results yet."
	}
	r := m.results[m.cursor]
	title := fmt.Sprintf("Result %d/%d  %s", m.cursor+1, len(m.results), scoreStyle.Render(
		fmt.Sprintf("combined=%.3f semantic=%.3f keyword=%.3f", r.CombinedScore, r.Similarity, r.KeywordScore)))
	source := sourceStyle.Render(r.ChunkID)
	return title + "\n" + source + "\n\n" + highlightQueryWords(r.Chunk.Content, m.lastQuery)
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	scoreStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	sourceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// highlightQueryWords emphasizes every word of the chunk that also occurs in
// the query, using the same case-insensitive whitespace tokens as the reranker.
func highlightQueryWords(text, query string) string {
	queryWords := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(query)) {
		queryWords[w] = struct{}{}
	}
	if len(queryWords) == 0 {
		return text
	}
	words := strings.Fields(text)
	for i, w := range words {
		if _, ok := queryWords[strings.ToLower(w)]; ok {
			words[i] = highlightStyle.Render(w)
		}
	}
	return strings.Join(words, " ")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
