package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// get <key>: print the value stored under a flat or dotted key.
func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value stored under a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, ok := db.Get(args[0])
			if !ok {
				return fmt.Errorf("key %q not found", args[0])
			}
			fmt.Println(v)
			return nil
		},
	}
}

func hasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "has <key>",
		Short: "Report whether a key exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(db.Has(args[0]))
			return nil
		},
	}
}
