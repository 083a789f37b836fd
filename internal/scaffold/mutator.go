package scaffold

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/barisgit/vitekit/internal/patch"
	"github.com/barisgit/vitekit/internal/templates"
)

// PatchFunc transforms the contents of one file
type PatchFunc func(ctx context.Context, src []byte) ([]byte, error)

// Mutator writes artifacts and patches files below an explicit project root
type Mutator struct {
	Root      string
	templates *templates.Manager
}

// NewMutator creates a mutator for the project at root
func NewMutator(root string, tm *templates.Manager) *Mutator {
	return &Mutator{Root: root, templates: tm}
}

// WriteFeature writes every artifact of feature, overwriting
// existing files. It returns the written paths relative to the root.
func (m *Mutator) WriteFeature(feature string) ([]string, error) {
	artifacts, err := m.templates.ForFeature(feature)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, a := range artifacts {
		if err := m.Write(a.Path, a.Content); err != nil {
			return written, err
		}
		written = append(written, a.Path)
	}
	return written, nil
}

// Write writes content to a slash separated path below the root
func (m *Mutator) Write(rel string, content []byte) error {
	path := m.path(rel)
	if err := writeFileAtomic(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}
	return nil
}

// Patch applies fn to the file at rel. The file is rewritten only when the
// patch changed it. Patches that cannot find their anchor leave the file
// untouched and return an error wrapping patch.ErrAnchorNotFound.
func (m *Mutator) Patch(ctx context.Context, rel string, fn PatchFunc) (bool, error) {
	path := m.path(rel)
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", rel, err)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", rel, err)
	}

	out, err := fn(ctx, src)
	if err != nil {
		if errors.Is(err, patch.ErrAnchorNotFound) {
			return false, err
		}
		return false, fmt.Errorf("failed to patch %s: %w", rel, err)
	}
	if bytes.Equal(src, out) {
		return false, nil
	}

	if err := writeFileAtomic(path, out, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", rel, err)
	}
	return true, nil
}

func (m *Mutator) path(rel string) string {
	return filepath.Join(m.Root, filepath.FromSlash(rel))
}
