package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reply-pilot/models"
	"reply-pilot/services"
	"reply-pilot/storage"
)

func TestTemplateSaveAssignsID(t *testing.T) {
	ctx := context.Background()
	svc := services.NewTemplateService(storage.NewMemoryAdapter())

	saved, err := svc.Save(ctx, models.Template{
		Name:   "Happy diner",
		Tone:   "friendly",
		Length: "short",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	templates, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "Happy diner", templates[0].Name)
}

func TestTemplateSaveUpsertsByID(t *testing.T) {
	ctx := context.Background()
	svc := services.NewTemplateService(storage.NewMemoryAdapter())

	saved, err := svc.Save(ctx, models.Template{Name: "v1", Tone: "formal", Length: "long"})
	require.NoError(t, err)

	saved.Name = "v2"
	_, err = svc.Save(ctx, saved)
	require.NoError(t, err)

	templates, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "v2", templates[0].Name)
}

func TestTemplateDelete(t *testing.T) {
	ctx := context.Background()
	svc := services.NewTemplateService(storage.NewMemoryAdapter())

	a, err := svc.Save(ctx, models.Template{Name: "keep", Tone: "casual", Length: "short"})
	require.NoError(t, err)
	b, err := svc.Save(ctx, models.Template{Name: "drop", Tone: "casual", Length: "short"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, b.ID))

	templates, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, a.ID, templates[0].ID)

	// Deleting an unknown id is a no-op.
	require.NoError(t, svc.Delete(ctx, "missing"))
}

func TestTemplateListEmpty(t *testing.T) {
	svc := services.NewTemplateService(storage.NewMemoryAdapter())

	templates, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, templates)
}
