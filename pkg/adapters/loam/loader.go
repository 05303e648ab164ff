package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/loam"

	"github.com/aretw0/statespace/pkg/domain"
)

// Loader adapts the Loam library to the ports.PuzzleLoader interface.
// Every document of the repository (Markdown with frontmatter, YAML or JSON)
// is one puzzle definition; the Markdown body becomes its description.
type Loader struct {
	Repo *loam.TypedRepository[PuzzleMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[PuzzleMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a read-only Loam repository at path and wraps it.
func Open(path string) (*Loader, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// Strict mode keeps numbers consistent across Markdown, YAML and JSON documents.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[PuzzleMetadata](repo)), nil
}

// GetDefinition retrieves a puzzle definition from the Loam repository.
func (l *Loader) GetDefinition(ctx context.Context, id string) (map[string]any, error) {
	doc, err := l.Repo.Get(ctx, id)
	if err != nil {
		// Loam reports missing documents with backend-specific errors.
		if ids, listErr := l.ListDefinitions(ctx); listErr == nil && !slices.Contains(ids, id) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPuzzleNotFound, id)
		}
		return nil, fmt.Errorf("loam get failed for %s: %w", id, err)
	}

	return buildDefinition(doc.ID, doc.Data, doc.Content), nil
}

func buildDefinition(docID string, meta PuzzleMetadata, content string) map[string]any {
	data := make(map[string]any)

	rawID := meta.ID
	if rawID == "" {
		rawID = docID
	}
	data["id"] = trimExtension(rawID)

	data["kind"] = meta.Kind
	if meta.Kind == "" {
		data["kind"] = KindRiver
	}

	data["name"] = meta.Name
	if meta.Name == "" {
		data["name"] = data["id"]
	}

	data["title"] = meta.Title
	data["description"] = meta.Description
	if meta.Description == "" {
		data["description"] = strings.TrimSpace(content)
	}

	data["carrier"] = meta.Carrier
	data["capacity"] = meta.Capacity
	data["entities"] = slices.Clone(meta.Entities)

	forbidden := make([]any, 0, len(meta.Forbidden))
	for _, group := range meta.Forbidden {
		forbidden = append(forbidden, slices.Clone(group))
	}
	data["forbidden"] = forbidden

	return data
}

// ListDefinitions lists all puzzle documents in the repository.
func (l *Loader) ListDefinitions(ctx context.Context) ([]string, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	ids := make([]string, 0, len(docs))

	for _, doc := range docs {
		// Use the ID from metadata if available, otherwise filename ID
		rawID := doc.Data.ID
		if rawID == "" {
			rawID = doc.ID
		}
		id := trimExtension(rawID)

		// Collision Detection
		if existingPath, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", id, existingPath, doc.ID)
		}
		seen[id] = doc.ID
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}

// Watch implements ports.Watchable.
// It emits the ID of every changed definition document.
func (l *Loader) Watch(ctx context.Context) (<-chan string, error) {
	events, err := l.Repo.Watch(ctx, "**/*.{md,json,yaml,yml}")
	if err != nil {
		return nil, fmt.Errorf("failed to start loam watcher: %w", err)
	}

	ch := make(chan string, 1)

	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-events:
				if !ok {
					return
				}
				select {
				case ch <- trimExtension(evt.ID):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}
