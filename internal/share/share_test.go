package share

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/scoring"
)

func sample() scoring.Result {
	return scoring.Result{OverallScore: 80, Percentile: 80, Archetype: scoring.ArchetypeAINative}
}

func TestText(t *testing.T) {
	assert.Equal(t,
		`I scored 80/100 on the AI Adoption Score! I'm an "AI Native". Find out your AI adoption level:`,
		Text(sample()))
}

func TestBuild(t *testing.T) {
	links := Build(sample(), "https://aiadoption.example/?ref=share")

	assert.Equal(t, "https://aiadoption.example/?ref=share", links.URL)
	assert.NotContains(t, links.Twitter, "+")
	assert.Contains(t, links.Twitter, "I%20scored%2080%2F100")
	assert.Contains(t, links.LinkedIn, "url=https%3A%2F%2Faiadoption.example%2F%3Fref%3Dshare")

	twitter, err := url.Parse(links.Twitter)
	require.NoError(t, err)
	assert.Equal(t, links.Text, twitter.Query().Get("text"))
	assert.Equal(t, links.URL, twitter.Query().Get("url"))

	email, err := url.Parse(links.Email)
	require.NoError(t, err)
	assert.Equal(t, "mailto", email.Scheme)
	assert.Equal(t, links.Text+" "+links.URL, email.Query().Get("body"))
	assert.Equal(t, "My AI Adoption Score", email.Query().Get("subject"))
}

func TestTopPercent(t *testing.T) {
	tests := []struct {
		percentile, want int
	}{
		{80, 20},
		{99, 1},
		{1, 99},
		{0, 99},
		{150, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TopPercent(tt.percentile))
	}
}
