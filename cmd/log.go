package cmd

import (
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Start logging a climbing session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
