package service

import (
	"testing"

	"portfolio/database"
	"portfolio/database/model"

	"github.com/stretchr/testify/assert"
)

func TestAboutSingletonUpsert(t *testing.T) {
	setup()
	defer teardown()

	service := AboutService{}

	// Nothing written yet
	about, err := service.GetAbout()
	assert.NoError(t, err)
	assert.Nil(t, about)

	created, err := service.UpsertAbout(map[string]any{"bio": "hello", "location": "Berlin"})
	assert.NoError(t, err)
	assert.Equal(t, "hello", created.Bio)

	// Second upsert updates the same document
	updated, err := service.UpsertAbout(map[string]any{"bio": "updated"})
	assert.NoError(t, err)
	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, "updated", updated.Bio)
	assert.Equal(t, "Berlin", updated.Location)

	var count int64
	assert.NoError(t, database.GetDB().Model(&model.About{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAboutUpsertIgnoresClientId(t *testing.T) {
	setup()
	defer teardown()

	service := AboutService{}

	created, err := service.UpsertAbout(map[string]any{"bio": "first"})
	assert.NoError(t, err)

	// A client echoing the fetched document back with a stale or wrong id
	// must still update the sole row, never insert a second one.
	updated, err := service.UpsertAbout(map[string]any{"bio": "second", "id": created.Id + 41})
	assert.NoError(t, err)
	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, "second", updated.Bio)

	var count int64
	assert.NoError(t, database.GetDB().Model(&model.About{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	about, err := service.GetAbout()
	assert.NoError(t, err)
	assert.Equal(t, "second", about.Bio)
}

func TestHeroUpsertIgnoresClientId(t *testing.T) {
	setup()
	defer teardown()

	service := HeroService{}

	created, err := service.UpsertHero(map[string]any{"name": "Ada", "title": "Engineer"})
	assert.NoError(t, err)

	updated, err := service.UpsertHero(map[string]any{"title": "Lead", "id": created.Id + 7})
	assert.NoError(t, err)
	assert.Equal(t, created.Id, updated.Id)

	var count int64
	assert.NoError(t, database.GetDB().Model(&model.Hero{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAboutValidation(t *testing.T) {
	setup()
	defer teardown()

	service := AboutService{}

	_, err := service.UpsertAbout(map[string]any{"location": "nowhere"})
	assert.Error(t, err)
	assert.True(t, IsValidation(err))

	// Failed upsert must not create a document
	about, err := service.GetAbout()
	assert.NoError(t, err)
	assert.Nil(t, about)
}

func TestHeroSingletonUpsert(t *testing.T) {
	setup()
	defer teardown()

	service := HeroService{}

	hero, err := service.GetHero()
	assert.NoError(t, err)
	assert.Nil(t, hero)

	created, err := service.UpsertHero(map[string]any{"name": "Ada", "title": "Engineer"})
	assert.NoError(t, err)
	assert.NotZero(t, created.Id)

	updated, err := service.UpsertHero(map[string]any{"subtitle": "Builds things"})
	assert.NoError(t, err)
	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, "Ada", updated.Name)
	assert.Equal(t, "Builds things", updated.Subtitle)

	var count int64
	assert.NoError(t, database.GetDB().Model(&model.Hero{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
