package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"reply-pilot/models"
	"reply-pilot/storage"
)

const templatesKey = "templates"

// TemplateService stores reply presets as one JSON list document in the
// storage adapter. A mutex serializes the read-modify-write cycles.
type TemplateService struct {
	store storage.Adapter
	mu    sync.Mutex
}

func NewTemplateService(store storage.Adapter) *TemplateService {
	return &TemplateService{store: store}
}

func (s *TemplateService) List(ctx context.Context) ([]models.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Save upserts a template by id, assigning a fresh id on create.
func (s *TemplateService) Save(ctx context.Context, template models.Template) (models.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if template.ID == "" {
		template.ID = uuid.NewString()
	}
	if template.CreatedAt.IsZero() {
		template.CreatedAt = time.Now().UTC()
	}

	templates, err := s.load(ctx)
	if err != nil {
		return models.Template{}, err
	}

	replaced := false
	for i := range templates {
		if templates[i].ID == template.ID {
			templates[i] = template
			replaced = true
			break
		}
	}
	if !replaced {
		templates = append(templates, template)
	}

	if err := s.save(ctx, templates); err != nil {
		return models.Template{}, err
	}
	return template, nil
}

func (s *TemplateService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	templates, err := s.load(ctx)
	if err != nil {
		return err
	}

	filtered := templates[:0]
	for _, t := range templates {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}
	return s.save(ctx, filtered)
}

func (s *TemplateService) load(ctx context.Context) ([]models.Template, error) {
	raw, ok, err := s.store.Get(ctx, templatesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	if !ok {
		return []models.Template{}, nil
	}

	var templates []models.Template
	if err := json.Unmarshal([]byte(raw), &templates); err != nil {
		return nil, fmt.Errorf("corrupt template list: %w", err)
	}
	return templates, nil
}

func (s *TemplateService) save(ctx context.Context, templates []models.Template) error {
	data, err := json.Marshal(templates)
	if err != nil {
		return fmt.Errorf("failed to marshal templates: %w", err)
	}
	return s.store.Set(ctx, templatesKey, string(data), 0)
}
