package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chrisuehlinger/domkit/dom"
)

func classesCmd() *cobra.Command {
	var add, remove, toggle string

	cmd := &cobra.Command{
		Use:   "classes <file> <selector>",
		Short: "Add, remove, or toggle classes on matched elements",
		Long: `Apply class changes to every element matching the selector and
print the resulting document to stdout. Class flags take space-separated
lists and may be combined; adds run first, then removes, then toggles.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if add == "" && remove == "" && toggle == "" {
				return fmt.Errorf("nothing to do: pass --add, --remove, or --toggle")
			}

			doc, err := parseFile(args[0])
			if err != nil {
				return err
			}

			for _, el := range doc.QuerySelectorAll(args[1]) {
				dom.AddClasses(el, add)
				dom.RemoveClasses(el, remove)
				dom.ToggleClasses(el, toggle)
			}

			fmt.Println(doc.OuterHTML())
			return nil
		},
	}

	cmd.Flags().StringVarP(&add, "add", "a", "", "Classes to add")
	cmd.Flags().StringVarP(&remove, "remove", "r", "", "Classes to remove")
	cmd.Flags().StringVarP(&toggle, "toggle", "x", "", "Classes to toggle")

	return cmd
}
