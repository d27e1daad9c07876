// Package media resolves embeddable media links used on portfolio pages.
package media

import "regexp"

// youtubePatterns match the watch, short-link, embed and legacy /v/ URL forms
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?v=([^&]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtu\.be/([^?]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/embed/([^?]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/v/([^?]+)`),
}

// YouTubeVideoID extracts the video id from a YouTube URL, or "" when url is not one
func YouTubeVideoID(url string) string {
	if url == "" {
		return ""
	}
	for _, re := range youtubePatterns {
		if m := re.FindStringSubmatch(url); len(m) > 1 && m[1] != "" {
			return m[1]
		}
	}
	return ""
}

// YouTubeEmbedURL returns the embeddable URL for a YouTube link, or "" when url is not one
func YouTubeEmbedURL(url string) string {
	id := YouTubeVideoID(url)
	if id == "" {
		return ""
	}
	return "https://www.youtube.com/embed/" + id
}
