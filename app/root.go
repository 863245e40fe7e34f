// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "letterly",
	Short: "Letterly is the content management backend for the Letterly site",
	Long: `Letterly is the content management backend for the Letterly
marketing site. It serves the public content API and the session-gated
admin mutation API for pages, collections, settings and assets.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
