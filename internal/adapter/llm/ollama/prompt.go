package ollama

import (
	"context"
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"text/template"

	"unbounded/internal/app/ports"
	"unbounded/internal/domain/character"
)

const TemplateName = "interaction.tmpl"

//go:embed interaction.tmpl
var defaultTemplate string

// TemplateSource supplies an operator-provided prompt template.
type TemplateSource interface {
	Template(ctx context.Context, name string) ([]byte, error)
}

type traitLine struct {
	Label       string
	Value       int
	Descriptors string
}

type historyLine struct {
	Kind    string
	Content string
	Reply   string
}

type promptData struct {
	Name        string
	Description string
	Backstory   string
	Traits      []traitLine
	Influences  []string
	State       character.State
	History     []historyLine
	Kind        string
	Content     string
}

var traitDescriptors = map[character.TraitName]string{
	character.TraitOpenness:          "Imagination, Creativity, Curiosity",
	character.TraitConscientiousness: "Organization, Responsibility",
	character.TraitExtraversion:      "Sociability, Energy, Assertiveness",
	character.TraitAgreeableness:     "Cooperation, Compassion",
	character.TraitNeuroticism:       "Emotional Stability, Stress Response",
}

// LoadTemplate parses the template served by src, or the built-in one when src is nil.
func LoadTemplate(ctx context.Context, src TemplateSource) (*template.Template, error) {
	text := defaultTemplate
	if src != nil {
		b, err := src.Template(ctx, TemplateName)
		if err != nil {
			return nil, fmt.Errorf("load prompt template: %w", err)
		}
		text = string(b)
	}
	tmpl, err := template.New(TemplateName).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse prompt template: %w", err)
	}
	return tmpl, nil
}

func BuildPrompt(tmpl *template.Template, req ports.ResponseRequest) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, newPromptData(req)); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return sb.String(), nil
}

func newPromptData(req ports.ResponseRequest) promptData {
	data := promptData{
		Name:        req.Profile.Name,
		Description: req.Profile.Description,
		Backstory:   req.Profile.Backstory,
		State:       req.State,
		Kind:        string(req.Kind),
		Content:     req.Content,
	}
	if data.Name == "" {
		data.Name = "a character"
	}
	for _, name := range character.TraitNames {
		trait, _ := req.State.Personality.Get(name)
		data.Traits = append(data.Traits, traitLine{
			Label:       traitLabel(name),
			Value:       trait.Value,
			Descriptors: traitDescriptors[name],
		})
		if v, ok := req.Influence[name]; ok && v != 0 {
			data.Influences = append(data.Influences, formatInfluence(name, v))
		}
	}
	// records arrive newest first
	for _, rec := range slices.Backward(req.History) {
		line := historyLine{Kind: rec.Kind, Content: rec.Content}
		if rec.Response != nil {
			line.Reply = rec.Response.Content
		}
		data.History = append(data.History, line)
	}
	return data
}

func formatInfluence(name character.TraitName, v float64) string {
	if v > 0 {
		return fmt.Sprintf("- Your high %s makes you more effective (+%.1f%%)", name, v*100)
	}
	return fmt.Sprintf("- Your high %s makes this more challenging (%.1f%%)", name, v*100)
}

func traitLabel(name character.TraitName) string {
	s := string(name)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
