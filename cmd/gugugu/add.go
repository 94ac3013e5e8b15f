package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagAddName  string
	flagAddForce bool
)

var addCmd = &cobra.Command{
	Use:   "add [path]",
	Short: "Ingest a document into the store",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}

		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		processed, err := st.AddDocument(path, flagAddName, flagAddForce)
		if err != nil {
			return err
		}
		if processed {
			fmt.Println("Document processed.")
		} else {
			fmt.Println("Document unchanged, skipped.")
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&flagAddName, "name", "", "bare file name, searched under the document dir")
	addCmd.Flags().BoolVar(&flagAddForce, "force", false, "reprocess even if the content is unchanged")
	rootCmd.AddCommand(addCmd)
}
