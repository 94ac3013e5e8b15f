package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <path>",
	Short: "Remove a document and all of its chunks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}

		if st.RemoveDocument(args[0]) {
			fmt.Println("Document removed.")
		} else {
			fmt.Println("Document not tracked, nothing removed.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
