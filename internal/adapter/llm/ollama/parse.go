package ollama

import (
	"math"
	"slices"
	"strings"

	"github.com/tidwall/gjson"

	"unbounded/internal/domain/character"
)

const maxEffect = 10

// ParseResponse turns model output into a Response. Whole-text JSON wins, then
// the outermost {...} span; anything else becomes a neutral reply carrying the
// raw text and a zero delta for every vital.
func ParseResponse(text string) character.Response {
	trimmed := strings.TrimSpace(text)
	if resp, ok := decodeObject(trimmed); ok {
		return resp
	}
	start, end := strings.Index(trimmed, "{"), strings.LastIndex(trimmed, "}")
	if start >= 0 && end > start {
		if resp, ok := decodeObject(trimmed[start : end+1]); ok {
			return resp
		}
	}
	return character.Response{
		Content: trimmed,
		Emotion: character.EmotionNeutral,
		Effects: character.NeutralEffects(),
	}
}

func decodeObject(s string) (character.Response, bool) {
	if !gjson.Valid(s) {
		return character.Response{}, false
	}
	doc := gjson.Parse(s)
	content := doc.Get("content")
	if !doc.IsObject() || !content.Exists() {
		return character.Response{}, false
	}

	resp := character.Response{
		Content: content.String(),
		Emotion: strings.TrimSpace(doc.Get("emotion").String()),
		Action:  doc.Get("action").String(),
	}
	if resp.Emotion == "" {
		resp.Emotion = character.EmotionNeutral
	}
	if eff := doc.Get("effects"); eff.IsObject() {
		resp.Effects = character.Effects{}
		eff.ForEach(func(key, value gjson.Result) bool {
			name := strings.ToLower(key.String())
			if slices.Contains(character.Vitals, name) && value.Type == gjson.Number {
				resp.Effects[name] = boundedEffect(value)
			}
			return true
		})
	}
	return resp, true
}

func boundedEffect(v gjson.Result) int {
	n := math.Round(v.Float())
	return int(max(-maxEffect, min(maxEffect, n)))
}
