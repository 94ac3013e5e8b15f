package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	flagSearchFile   string
	flagSearchName   string
	flagSearchTopK   int
	flagSearchRerank bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search indexed chunks by cosine similarity",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		topK := flagSearchTopK
		if topK == 0 {
			topK = cfg.Search.TopK
		}
		results, err := st.Search(query, flagSearchFile, flagSearchName, topK)
		if err != nil {
			return err
		}
		if flagSearchRerank {
			results = st.Rerank(results, query)
		}

		if len(results) == 0 {
			fmt.Println("No results.")
			return nil
		}
		for i, r := range results {
			fmt.Printf("%d. %s  similarity=%.4f", i+1, r.ChunkID, r.Similarity)
			if flagSearchRerank {
				fmt.Printf("  keyword=%.4f  combined=%.4f", r.KeywordScore, r.CombinedScore)
			}
			fmt.Printf("\n   %s\n", snippet(r.Chunk.Content, 160))
		}
		return nil
	},
}

func snippet(text string, limit int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func init() {
	searchCmd.Flags().StringVar(&flagSearchFile, "file", "", "limit search to the document at this path")
	searchCmd.Flags().StringVar(&flagSearchName, "name", "", "limit search to the named document under the document dir")
	searchCmd.Flags().IntVar(&flagSearchTopK, "top-k", 0, "number of results (default from config)")
	searchCmd.Flags().BoolVar(&flagSearchRerank, "rerank", false, "blend semantic similarity with lexical overlap")
	rootCmd.AddCommand(searchCmd)
}
