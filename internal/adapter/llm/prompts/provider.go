package prompts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalidTemplatePath = errors.New("invalid prompt template path")

// Provider serves prompt templates from a directory so operators can tune the
// wording without a rebuild.
type Provider struct {
	Root string
}

func (p Provider) Template(_ context.Context, name string) ([]byte, error) {
	safePath, err := secureJoin(p.Root, name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(safePath)
}

func secureJoin(root, rel string) (string, error) {
	rel = strings.TrimSpace(rel)
	if rel == "" || filepath.IsAbs(rel) {
		return "", ErrInvalidTemplatePath
	}
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	target := filepath.Clean(filepath.Join(rootAbs, rel))
	if !strings.HasPrefix(target, rootAbs+string(filepath.Separator)) {
		return "", ErrInvalidTemplatePath
	}
	return target, nil
}
