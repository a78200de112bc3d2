// Package share builds the social share text and links for a result.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
)

const emailSubject = "My AI Adoption Score"

// Links are ready-to-open share targets
type Links struct {
	Text     string `json:"text"`
	URL      string `json:"url"`
	Twitter  string `json:"twitter"`
	LinkedIn string `json:"linkedin"`
	Email    string `json:"email"`
}

// Text is the message shared alongside the link
func Text(result scoring.Result) string {
	return fmt.Sprintf("I scored %d/100 on the AI Adoption Score! I'm an %q. Find out your AI adoption level:",
		result.OverallScore, string(result.Archetype))
}

// Build returns share links for result pointing at baseURL
func Build(result scoring.Result, baseURL string) Links {
	text := Text(result)
	encodedText := encodeComponent(text)
	encodedURL := encodeComponent(baseURL)

	return Links{
		Text:     text,
		URL:      baseURL,
		Twitter:  "https://twitter.com/intent/tweet?text=" + encodedText + "&url=" + encodedURL,
		LinkedIn: "https://www.linkedin.com/sharing/share-offsite/?url=" + encodedURL,
		Email:    "mailto:?subject=" + encodeComponent(emailSubject) + "&body=" + encodeComponent(text+" "+baseURL),
	}
}

// TopPercent is the "top N%" figure shown next to a percentile
func TopPercent(percentile int) int {
	return 100 - scoring.ClampPercentile(percentile)
}

// encodeComponent percent-encodes s for use inside a query value, with
// spaces as %20 rather than '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
