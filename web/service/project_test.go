package service

import (
	"testing"

	"portfolio/database"
	"portfolio/database/model"

	"github.com/stretchr/testify/assert"
)

func TestProjectCRUDRoundTrip(t *testing.T) {
	setup()
	defer teardown()

	service := ProjectService{}

	project := &model.Project{
		Title:        "Portfolio API",
		Description:  "Backend for the portfolio site",
		Technologies: model.StringList{"go", "sqlite"},
		GithubUrl:    "https://github.com/example/portfolio",
		Featured:     true,
	}
	err := service.AddProject(project)
	assert.NoError(t, err)
	assert.NotZero(t, project.Id)
	assert.NotZero(t, project.CreatedAt)

	got, err := service.GetProject(project.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Portfolio API", got.Title)
	assert.Equal(t, "Backend for the portfolio site", got.Description)
	assert.Equal(t, model.StringList{"go", "sqlite"}, got.Technologies)
	assert.True(t, got.Featured)
	assert.Equal(t, 0, got.Order)

	// Partial update: untouched fields survive
	updated, err := service.UpdateProject(project.Id, map[string]any{"title": "Renamed"})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "Backend for the portfolio site", updated.Description)
	assert.Equal(t, model.StringList{"go", "sqlite"}, updated.Technologies)

	deleted, err := service.DeleteProject(project.Id)
	assert.NoError(t, err)
	assert.True(t, deleted)

	// Second delete is idempotent-false, not an error
	deleted, err = service.DeleteProject(project.Id)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestProjectUpdateIgnoresIdentityFields(t *testing.T) {
	setup()
	defer teardown()

	service := ProjectService{}

	project := &model.Project{Title: "One", Description: "first"}
	assert.NoError(t, service.AddProject(project))
	createdAt := project.CreatedAt

	// id and createdAt in the payload are not client-writable
	updated, err := service.UpdateProject(project.Id, map[string]any{
		"title":     "Renamed",
		"id":        project.Id + 99,
		"createdAt": 42,
	})
	assert.NoError(t, err)
	assert.Equal(t, project.Id, updated.Id)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.Equal(t, "Renamed", updated.Title)

	var count int64
	assert.NoError(t, database.GetDB().Model(&model.Project{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestProjectValidation(t *testing.T) {
	setup()
	defer teardown()

	service := ProjectService{}

	err := service.AddProject(&model.Project{Description: "missing title"})
	assert.Error(t, err)
	assert.True(t, IsValidation(err))

	err = service.AddProject(&model.Project{Title: "missing description"})
	assert.Error(t, err)
	assert.True(t, IsValidation(err))

	// Update may not invalidate the document either
	project := &model.Project{Title: "T", Description: "D"}
	assert.NoError(t, service.AddProject(project))
	_, err = service.UpdateProject(project.Id, map[string]any{"title": ""})
	assert.True(t, IsValidation(err))

	// Wrong shape is a validation failure, not a silent coercion
	_, err = service.UpdateProject(project.Id, map[string]any{"technologies": "not-a-list"})
	assert.True(t, IsValidation(err))
}

func TestProjectUpdateMissing(t *testing.T) {
	setup()
	defer teardown()

	service := ProjectService{}

	_, err := service.UpdateProject(12345, map[string]any{"title": "X"})
	assert.Error(t, err)
	assert.True(t, database.IsNotFound(err))
}

func TestProjectListOrdering(t *testing.T) {
	setup()
	defer teardown()

	service := ProjectService{}

	for _, order := range []int{3, 1, 2} {
		project := &model.Project{
			Title:       "P",
			Description: "D",
			Order:       order,
		}
		assert.NoError(t, service.AddProject(project))
	}
	// Equal creation times so ordering depends on the order field alone
	db := database.GetDB()
	assert.NoError(t, db.Model(&model.Project{}).Where("1 = 1").Update("created_at", 1000).Error)

	projects, err := service.GetProjects()
	assert.NoError(t, err)
	assert.Len(t, projects, 3)
	assert.Equal(t, 1, projects[0].Order)
	assert.Equal(t, 2, projects[1].Order)
	assert.Equal(t, 3, projects[2].Order)
}

func TestProjectListTieBreak(t *testing.T) {
	setup()
	defer teardown()

	service := ProjectService{}

	first := &model.Project{Title: "older", Description: "D"}
	second := &model.Project{Title: "newer", Description: "D"}
	assert.NoError(t, service.AddProject(first))
	assert.NoError(t, service.AddProject(second))

	db := database.GetDB()
	assert.NoError(t, db.Model(first).Update("created_at", 1000).Error)
	assert.NoError(t, db.Model(second).Update("created_at", 2000).Error)

	// Same order value: newest first
	projects, err := service.GetProjects()
	assert.NoError(t, err)
	assert.Len(t, projects, 2)
	assert.Equal(t, "newer", projects[0].Title)
	assert.Equal(t, "older", projects[1].Title)
}

func TestProjectListEmpty(t *testing.T) {
	setup()
	defer teardown()

	service := ProjectService{}

	projects, err := service.GetProjects()
	assert.NoError(t, err)
	assert.Empty(t, projects)
}
