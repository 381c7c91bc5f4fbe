package character

import "strings"

const (
	FallbackContent = "I'm not sure how to respond to that right now."
	EmotionNeutral  = "neutral"
	EmotionConfused = "confused"
)

func FallbackResponse() Response {
	return Response{Content: FallbackContent, Emotion: EmotionConfused}
}

// SuccessScore averages how the character felt with how the reported effects went.
// Each reported effect counts 1 when positive, 0.5 when zero and 0 when negative;
// no reported effects scores 0.
func SuccessScore(resp Response) float64 {
	emotion := strings.ToLower(strings.TrimSpace(resp.Emotion))
	if emotion == "" {
		emotion = EmotionNeutral
	}
	emotionScore, ok := emotionScores[emotion]
	if !ok {
		emotionScore = defaultEmotionScore
	}

	effectScore := 0.0
	if len(resp.Effects) > 0 {
		total := 0.0
		for _, v := range resp.Effects {
			switch {
			case v > 0:
				total += 1
			case v == 0:
				total += 0.5
			}
		}
		effectScore = total / float64(len(resp.Effects))
	}

	return (emotionScore + effectScore) / 2
}
