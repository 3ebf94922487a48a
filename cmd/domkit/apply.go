package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chrisuehlinger/domkit/pipeline"
)

func applyCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "apply <file> <pipeline.yaml>",
		Short: "Run a YAML pipeline of transforms against an HTML file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseFile(args[0])
			if err != nil {
				return err
			}

			p, err := pipeline.LoadFile(args[1])
			if err != nil {
				return err
			}

			touched, err := p.Apply(doc)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "applied %d op(s) to %d element(s)\n", len(p.Ops), touched)

			out := doc.OuterHTML()
			if outPath == "" {
				fmt.Println(out)
				return nil
			}
			return os.WriteFile(outPath, []byte(out), 0o644)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the result to a file instead of stdout")

	return cmd
}
