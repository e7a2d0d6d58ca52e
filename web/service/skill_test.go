package service

import (
	"testing"

	"portfolio/database/model"

	"github.com/stretchr/testify/assert"
)

func TestSkillNestedItems(t *testing.T) {
	setup()
	defer teardown()

	service := SkillService{}

	skill := &model.Skill{
		Category: "Backend",
		Items: model.SkillItems{
			{Name: "Go", Level: 90},
			{Name: "SQL", Level: 75},
		},
	}
	assert.NoError(t, service.AddSkill(skill))

	got, err := service.GetSkill(skill.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Backend", got.Category)
	assert.Len(t, got.Items, 2)
	assert.Equal(t, "Go", got.Items[0].Name)
	assert.Equal(t, 90, got.Items[0].Level)

	// Items can be replaced through a partial update
	updated, err := service.UpdateSkill(skill.Id, map[string]any{
		"items": []map[string]any{{"name": "Go", "level": 95}},
	})
	assert.NoError(t, err)
	assert.Len(t, updated.Items, 1)
	assert.Equal(t, 95, updated.Items[0].Level)
	assert.Equal(t, "Backend", updated.Category)
}

func TestSkillValidation(t *testing.T) {
	setup()
	defer teardown()

	service := SkillService{}

	err := service.AddSkill(&model.Skill{})
	assert.True(t, IsValidation(err))

	err = service.AddSkill(&model.Skill{
		Category: "Backend",
		Items:    model.SkillItems{{Level: 50}},
	})
	assert.True(t, IsValidation(err))
}
