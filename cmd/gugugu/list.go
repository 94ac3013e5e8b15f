package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked documents",
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

		files := st.ListFiles()
		if len(files) == 0 {
			fmt.Println("No documents tracked.")
			return nil
		}
		for _, f := range files {
			marker := " "
			if !f.Exists {
				marker = "!" // tracked but missing from disk
			}
			fmt.Printf("%s %-30s  %3d chunks  %s  %s\n",
				marker, f.FileName, f.ChunkCount, f.ProcessedAt.Format("2006-01-02 15:04"), f.FilePath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
