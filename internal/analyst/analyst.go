// Package analyst answers questions about generated content through a chat
// completion model, falling back to canned answers when no model is
// reachable.
package analyst

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const (
	SystemPrompt = "You are a helpful marketing content analyst. Answer questions about content marketing, audience analysis, and content strategy based on the provided content."

	// NoContext is sent when nothing has been generated yet.
	NoContext = "No content generated yet"

	Temperature = 0.7
	MaxTokens   = 500
)

// Asker sends a system and user message pair to a model.
type Asker interface {
	Ask(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error)
}

// Analyst answers analytical questions. It never returns an error.
type Analyst struct {
	asker   Asker
	timeout time.Duration
}

// New creates an analyst. A nil asker always uses the canned answers.
func New(asker Asker, timeout time.Duration) *Analyst {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Analyst{asker: asker, timeout: timeout}
}

// Live reports whether a model is configured.
func (a *Analyst) Live() bool {
	return a.asker != nil
}

// Answer responds to question using content as context.
func (a *Analyst) Answer(ctx context.Context, question, content string) string {
	if strings.TrimSpace(content) == "" {
		content = NoContext
	}
	if a.asker == nil {
		slog.Warn("LLM API key not found, using mock response")
		return MockAnswer(question)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := a.asker.Ask(ctx, SystemPrompt, fmt.Sprintf("Content: %s\n\nQuestion: %s", content, question), Temperature, MaxTokens)
	if err != nil {
		slog.Error("analyst request failed", "error", err, "elapsed", time.Since(start))
		return MockAnswer(question)
	}
	slog.Debug("analyst answered", "elapsed", time.Since(start))
	return reply
}

var mockAnswers = []struct {
	keywords []string
	answer   string
}{
	{[]string{"audience", "who would"}, `Based on the content, this would resonate well with:

• Young professionals (25-40) interested in health and wellness
• Health-conscious consumers looking for natural alternatives
• People seeking evidence-based health information
• Audiences in the target market who value quality and authenticity

The tone and messaging align well with educated consumers who appreciate detailed information and cultural relevance.`},
	{[]string{"tone", "how does it sound"}, `The content has a professional yet approachable tone that:

• Balances expertise with accessibility
• Uses conversational language while maintaining credibility
• Incorporates cultural nuances appropriate for the target market
• Engages readers with a mix of information and storytelling

This tone works well for building trust while keeping readers engaged.`},
	{[]string{"improve", "better"}, `To enhance this content further, consider:

• Adding more specific examples or case studies
• Including data or statistics to support key claims
• Strengthening the call-to-action
• Adding subheadings for better scannability
• Incorporating more sensory language to increase engagement

The content is already strong, these would make it even more impactful.`},
	{[]string{"compare", "different"}, `This content differs from standard approaches by:

• Emphasizing cultural adaptation for the specific market
• Balancing global best practices with local insights
• Using region-specific examples and references
• Adjusting tone and style for the target audience

These adaptations make it more relevant and effective for the intended market.`},
}

const genericAnswer = `Based on the content analysis:

The content effectively addresses your question by combining professional insights with market-specific adaptations. It maintains a balance between informative and engaging, with culturally relevant examples that resonate with the target audience.

Key strengths include clear structure, appropriate tone for the market, and actionable information that provides value to readers.`

// MockAnswer picks a canned analytical answer by keyword.
func MockAnswer(question string) string {
	lower := strings.ToLower(question)
	for _, m := range mockAnswers {
		for _, kw := range m.keywords {
			if strings.Contains(lower, kw) {
				return m.answer
			}
		}
	}
	return genericAnswer
}
