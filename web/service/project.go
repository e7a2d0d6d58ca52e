package service

import (
	"time"

	"portfolio/database"
	"portfolio/database/model"
	"portfolio/web/cache"

	"github.com/goccy/go-json"
)

const projectCache = "projects"

// listOrder is the display ordering shared by all collection resources:
// ascending order field, newest first among equals.
const listOrder = "sort_order ASC, created_at DESC"

// ProjectService provides CRUD over portfolio projects.
type ProjectService struct{}

func (s *ProjectService) GetProjects() ([]*model.Project, error) {
	var projects []*model.Project
	err := cache.GetOrSet(cache.ListKey(projectCache), &projects, cache.TTLContent, func() (any, error) {
		var items []*model.Project
		err := database.GetDB().Order(listOrder).Find(&items).Error
		return items, err
	})
	return projects, err
}

func (s *ProjectService) GetProject(id int) (*model.Project, error) {
	var project model.Project
	err := cache.GetOrSet(cache.ItemKey(projectCache, id), &project, cache.TTLContent, func() (any, error) {
		var item model.Project
		err := database.GetDB().First(&item, id).Error
		return &item, err
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) AddProject(project *model.Project) error {
	if err := s.validate(project); err != nil {
		return err
	}

	now := time.Now().Unix()
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := database.GetDB().Create(project).Error; err != nil {
		return err
	}
	cache.Invalidate(projectCache)
	return nil
}

// UpdateProject applies a partial update: only the supplied fields change,
// then the resulting document is re-validated as a whole.
func (s *ProjectService) UpdateProject(id int, fields map[string]any) (*model.Project, error) {
	db := database.GetDB()

	var project model.Project
	if err := db.First(&project, id).Error; err != nil {
		return nil, err
	}

	if err := applyFields(&project, fields); err != nil {
		return nil, err
	}
	project.Id = id
	if err := s.validate(&project); err != nil {
		return nil, err
	}
	project.UpdatedAt = time.Now().Unix()

	if err := db.Save(&project).Error; err != nil {
		return nil, err
	}
	cache.Invalidate(projectCache)
	return &project, nil
}

// DeleteProject returns false when no project with that id existed. A repeat
// delete is not an error.
func (s *ProjectService) DeleteProject(id int) (bool, error) {
	result := database.GetDB().Delete(&model.Project{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	cache.Invalidate(projectCache)
	return true, nil
}

func (s *ProjectService) validate(project *model.Project) error {
	if project.Title == "" {
		return newValidationErrorf("project title is required")
	}
	if project.Description == "" {
		return newValidationErrorf("project description is required")
	}
	return nil
}

// applyFields merges a partial JSON document onto an existing model value.
// Round-tripping through JSON keeps type checking strict: a wrong-shape field
// surfaces as a validation error instead of silently coercing. Identity and
// creation-time fields are never client-writable, so clients that echo the
// fetched document back on save cannot move a row or its listing position.
func applyFields(dest any, fields map[string]any) error {
	merged := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == "id" || k == "createdAt" {
			continue
		}
		merged[k] = v
	}
	data, err := json.Marshal(merged)
	if err != nil {
		return newValidationErrorf("invalid update payload: %v", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return newValidationErrorf("invalid field shape: %v", err)
	}
	return nil
}
