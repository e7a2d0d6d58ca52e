package service

import (
	"time"

	"portfolio/database"
	"portfolio/database/model"
	"portfolio/web/cache"
)

const experienceCache = "experiences"

// ExperienceService provides CRUD over work experience entries.
type ExperienceService struct{}

func (s *ExperienceService) GetExperiences() ([]*model.Experience, error) {
	var experiences []*model.Experience
	err := cache.GetOrSet(cache.ListKey(experienceCache), &experiences, cache.TTLContent, func() (any, error) {
		var items []*model.Experience
		err := database.GetDB().Order(listOrder).Find(&items).Error
		return items, err
	})
	return experiences, err
}

func (s *ExperienceService) GetExperience(id int) (*model.Experience, error) {
	var experience model.Experience
	err := cache.GetOrSet(cache.ItemKey(experienceCache, id), &experience, cache.TTLContent, func() (any, error) {
		var item model.Experience
		err := database.GetDB().First(&item, id).Error
		return &item, err
	})
	if err != nil {
		return nil, err
	}
	return &experience, nil
}

func (s *ExperienceService) AddExperience(experience *model.Experience) error {
	if err := s.validate(experience); err != nil {
		return err
	}

	now := time.Now().Unix()
	experience.CreatedAt = now
	experience.UpdatedAt = now

	if err := database.GetDB().Create(experience).Error; err != nil {
		return err
	}
	cache.Invalidate(experienceCache)
	return nil
}

func (s *ExperienceService) UpdateExperience(id int, fields map[string]any) (*model.Experience, error) {
	db := database.GetDB()

	var experience model.Experience
	if err := db.First(&experience, id).Error; err != nil {
		return nil, err
	}

	if err := applyFields(&experience, fields); err != nil {
		return nil, err
	}
	experience.Id = id
	if err := s.validate(&experience); err != nil {
		return nil, err
	}
	experience.UpdatedAt = time.Now().Unix()

	if err := db.Save(&experience).Error; err != nil {
		return nil, err
	}
	cache.Invalidate(experienceCache)
	return &experience, nil
}

func (s *ExperienceService) DeleteExperience(id int) (bool, error) {
	result := database.GetDB().Delete(&model.Experience{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	cache.Invalidate(experienceCache)
	return true, nil
}

func (s *ExperienceService) validate(experience *model.Experience) error {
	if experience.Title == "" {
		return newValidationErrorf("experience title is required")
	}
	if experience.Company == "" {
		return newValidationErrorf("experience company is required")
	}
	return nil
}
