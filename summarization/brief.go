// Package summarization turns the current fused overlay into a short
// NDMA-style situation brief via OpenAI.
package summarization

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"go-kdms/types"
)

const maxPromptLength = 15000 // rough character limit for the prompt

// GenerateBrief summarises the fused overlay: which counties are hot, what
// is burning or flooding where, and how many people are affected.
func GenerateBrief(ctx context.Context, client *openai.Client, views []types.ResolvedCountyView) (string, error) {
	if client == nil {
		return "", fmt.Errorf("summarization is not configured (no OpenAI API key)")
	}

	digest := buildDigest(views)
	if digest == "" {
		return "All monitored counties are quiet: no active disasters and no elevated risk scores.", nil
	}

	prompt := fmt.Sprintf(
		"Current county overlay for the Kenya Disaster Management System:\n\n%s\n\n"+
			"Write a concise situation brief (4-6 sentences) for national disaster "+
			"management officers. Lead with the most severe situations, mention "+
			"affected people counts, and end with the overall risk picture.",
		digest,
	)
	if len(prompt) > maxPromptLength {
		prompt = prompt[:maxPromptLength]
	}

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that writes terse, factual disaster situation briefs for emergency coordinators.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   300,
			N:           1,
			Temperature: 0.4,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// buildDigest renders the noteworthy part of the overlay as plain text.
// Quiet counties (safe band, no disasters) are left out to keep the prompt
// small.
func buildDigest(views []types.ResolvedCountyView) string {
	var b strings.Builder
	for _, v := range views {
		if v.Style.Band == types.BandSafe && len(v.Disasters) == 0 {
			continue
		}

		score := 0
		if v.Risk != nil {
			score = v.Risk.RiskScore
		}
		fmt.Fprintf(&b, "%s: risk %d (%s)", v.CountyKey, score, v.Style.Band)

		for _, d := range v.Disasters {
			if d.Status != types.Active {
				continue
			}
			fmt.Fprintf(&b, "; %s %s severity, %d affected", d.Type, d.Severity, d.AffectedPeople)
		}
		b.WriteString("\n")
	}
	return b.String()
}
