package service

import (
	"time"

	"portfolio/database"
	"portfolio/database/model"
	"portfolio/web/cache"
)

const skillCache = "skills"

// SkillService provides CRUD over skill categories and their items.
type SkillService struct{}

func (s *SkillService) GetSkills() ([]*model.Skill, error) {
	var skills []*model.Skill
	err := cache.GetOrSet(cache.ListKey(skillCache), &skills, cache.TTLContent, func() (any, error) {
		var items []*model.Skill
		err := database.GetDB().Order(listOrder).Find(&items).Error
		return items, err
	})
	return skills, err
}

func (s *SkillService) GetSkill(id int) (*model.Skill, error) {
	var skill model.Skill
	err := cache.GetOrSet(cache.ItemKey(skillCache, id), &skill, cache.TTLContent, func() (any, error) {
		var item model.Skill
		err := database.GetDB().First(&item, id).Error
		return &item, err
	})
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (s *SkillService) AddSkill(skill *model.Skill) error {
	if err := s.validate(skill); err != nil {
		return err
	}

	now := time.Now().Unix()
	skill.CreatedAt = now
	skill.UpdatedAt = now

	if err := database.GetDB().Create(skill).Error; err != nil {
		return err
	}
	cache.Invalidate(skillCache)
	return nil
}

func (s *SkillService) UpdateSkill(id int, fields map[string]any) (*model.Skill, error) {
	db := database.GetDB()

	var skill model.Skill
	if err := db.First(&skill, id).Error; err != nil {
		return nil, err
	}

	if err := applyFields(&skill, fields); err != nil {
		return nil, err
	}
	skill.Id = id
	if err := s.validate(&skill); err != nil {
		return nil, err
	}
	skill.UpdatedAt = time.Now().Unix()

	if err := db.Save(&skill).Error; err != nil {
		return nil, err
	}
	cache.Invalidate(skillCache)
	return &skill, nil
}

func (s *SkillService) DeleteSkill(id int) (bool, error) {
	result := database.GetDB().Delete(&model.Skill{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	cache.Invalidate(skillCache)
	return true, nil
}

func (s *SkillService) validate(skill *model.Skill) error {
	if skill.Category == "" {
		return newValidationErrorf("skill category is required")
	}
	for _, item := range skill.Items {
		if item.Name == "" {
			return newValidationErrorf("skill item name is required")
		}
	}
	return nil
}
