package prompts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestProvider_Template(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "interaction.tmpl"), []byte("You are {{.Name}}"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	b, err := Provider{Root: root}.Template(context.Background(), "interaction.tmpl")
	if err != nil {
		t.Fatalf("template: %v", err)
	}
	if string(b) != "You are {{.Name}}" {
		t.Fatalf("unexpected template content: %q", string(b))
	}
}

func TestProvider_RejectsPathTraversal(t *testing.T) {
	root := t.TempDir()
	outsidePath := filepath.Join(filepath.Dir(root), "outside.tmpl")
	if err := os.WriteFile(outsidePath, []byte("secret"), 0o644); err != nil {
		t.Fatalf("write outside: %v", err)
	}
	t.Cleanup(func() { _ = os.Remove(outsidePath) })

	p := Provider{Root: root}
	for _, name := range []string{"../outside.tmpl", "", ".", outsidePath} {
		if _, err := p.Template(context.Background(), name); !errors.Is(err, ErrInvalidTemplatePath) {
			t.Fatalf("Template(%q) err = %v, want ErrInvalidTemplatePath", name, err)
		}
	}
}
