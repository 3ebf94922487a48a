package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chrisuehlinger/domkit/dom"
)

func queryCmd() *cobra.Command {
	var textOnly bool
	var firstOnly bool

	cmd := &cobra.Command{
		Use:   "query <file> <selector>",
		Short: "Print elements matching a selector",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseFile(args[0])
			if err != nil {
				return err
			}

			matches := doc.QuerySelectorAll(args[1])
			if firstOnly && len(matches) > 1 {
				matches = matches[:1]
			}
			for _, el := range matches {
				if textOnly {
					fmt.Println(el.TextContent())
				} else {
					fmt.Println(el.OuterHTML())
				}
			}
			if len(matches) == 0 {
				fmt.Fprintf(os.Stderr, "no matches for %q\n", args[1])
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&textOnly, "text", "t", false, "Print text content instead of HTML")
	cmd.Flags().BoolVarP(&firstOnly, "first", "1", false, "Print only the first match")

	return cmd
}

// parseFile reads and parses an HTML file.
func parseFile(path string) (*dom.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return dom.ParseDocument(string(data))
}
