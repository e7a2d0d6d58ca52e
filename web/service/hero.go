package service

import (
	"time"

	"portfolio/database"
	"portfolio/database/model"
	"portfolio/web/cache"
)

const heroCache = "hero"

// HeroService manages the singleton hero document.
type HeroService struct{}

func (s *HeroService) GetHero() (*model.Hero, error) {
	var hero model.Hero
	err := cache.GetOrSet(cache.SingletonKey(heroCache), &hero, cache.TTLContent, func() (any, error) {
		var item model.Hero
		err := database.GetDB().First(&item).Error
		return &item, err
	})
	if database.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hero, nil
}

// UpsertHero updates the sole document when present and creates it otherwise.
func (s *HeroService) UpsertHero(fields map[string]any) (*model.Hero, error) {
	db := database.GetDB()

	var hero model.Hero
	var err error
	tx := db.Begin()
	defer func() {
		if err != nil {
			tx.Rollback()
		} else {
			tx.Commit()
		}
	}()

	err = tx.First(&hero).Error
	if err != nil && !database.IsNotFound(err) {
		return nil, err
	}
	creating := database.IsNotFound(err)
	err = nil

	loadedId := hero.Id
	if err = applyFields(&hero, fields); err != nil {
		return nil, err
	}
	hero.Id = loadedId
	if err = s.validate(&hero); err != nil {
		return nil, err
	}
	hero.UpdatedAt = time.Now().Unix()

	if creating {
		hero.Id = 0
		err = tx.Create(&hero).Error
	} else {
		err = tx.Save(&hero).Error
	}
	if err != nil {
		return nil, err
	}

	cache.Invalidate(heroCache)
	return &hero, nil
}

func (s *HeroService) validate(hero *model.Hero) error {
	if hero.Name == "" {
		return newValidationErrorf("hero name is required")
	}
	if hero.Title == "" {
		return newValidationErrorf("hero title is required")
	}
	return nil
}
