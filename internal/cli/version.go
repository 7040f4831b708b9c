package cli

import (
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tick version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("tick version %s\n", Version)
		},
	}
}
