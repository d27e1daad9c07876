package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/student-portfolio/internal/media"
)

var youtubeCmd = &cobra.Command{
	Use:   "youtube <url>",
	Short: "Print the embeddable URL for a YouTube link",
	Args:  cobra.ExactArgs(1),
	RunE:  runYouTube,
}

func init() {
	rootCmd.AddCommand(youtubeCmd)
}

func runYouTube(cmd *cobra.Command, args []string) error {
	embed := media.YouTubeEmbedURL(args[0])
	if embed == "" {
		return fmt.Errorf("not a YouTube link: %s", args[0])
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), embed)
	return nil
}
