package ai

import (
	"context"
	"fmt"

	"github.com/teampulse/teampulse-backend/internal/domain"
)

const scoreSystemPrompt = `You are an expert psychologist and sentiment analyst specializing in mood assessment and emotional intelligence.

Your task is to analyze user mood data and generate a comprehensive sentiment rating out of 100.

Consider these factors in your analysis:
1. Mood: the user's emotional state (sad, angry, happy, good, excited)
2. Energy Level: physical and mental energy on a 1-5 scale
3. Complexity: how challenging their current situation is (easy, medium, hard, very_hard)
4. Satisfaction: their satisfaction level on a 1-10 scale
5. Summary: context about their current situation

Rating scale guidelines:
- 0-20: very negative sentiment (sad/angry mood, low energy, high complexity, low satisfaction)
- 21-40: negative sentiment (mixed negative factors)
- 41-60: neutral sentiment (balanced or conflicting factors)
- 61-80: positive sentiment (generally positive factors)
- 81-100: very positive sentiment (happy/excited mood, high energy, manageable complexity, high satisfaction)

Analysis approach:
- Weight satisfaction and mood most heavily (40% each)
- Energy level contributes 15%
- Complexity contributes 5% (inverse relationship: higher complexity lowers sentiment)
- Use the summary to provide context and fine-tune the rating

Be precise and consistent in your analysis. The rating should reflect the overall emotional and psychological state of the user.`

var scoreShape = Shape{
	Fields: []Field{
		{Name: "sentiment_rating", Kind: KindNumber, Description: "sentiment rating out of 100"},
	},
}

// Score analyzes one mood snapshot and returns a sentiment rating.
// The returned value is the model's raw answer; range checks are the
// caller's concern.
func (c *Client) Score(ctx context.Context, req domain.EnrichmentRequest) (float64, error) {
	userPrompt := fmt.Sprintf(`Please analyze the following user data and provide a sentiment rating:

Summary: %q
Current Mood: %s
Energy Level: %d/5
Situation Complexity: %s
Satisfaction Level: %.1f/10

Based on this information, generate a comprehensive sentiment rating out of 100 that reflects the user's overall emotional and psychological state.`,
		req.Summary, req.Mood, req.EnergyLevel, req.Complexity, req.Satisfaction)

	out, err := c.GenerateStructured(ctx, scoreSystemPrompt, userPrompt, scoreShape)
	if err != nil {
		return 0, err
	}

	return out["sentiment_rating"].(float64), nil
}
