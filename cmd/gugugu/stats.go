package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show store statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}

		stats := st.Stats()
		fmt.Printf("Files:   %d\n", stats.TotalFiles)
		fmt.Printf("Chunks:  %d\n", stats.TotalChunks)
		fmt.Printf("Average: %.2f chunks/file\n", stats.AvgChunksPerFile)
		fmt.Printf("Storage: %.2f MB\n", stats.StorageSizeMB)
		for _, f := range stats.Files {
			missing := ""
			if !f.Exists {
				missing = "  (missing from disk)"
			}
			fmt.Printf("  %-30s  %3d chunks%s\n", filepath.Base(f.FilePath), f.ChunkCount, missing)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
