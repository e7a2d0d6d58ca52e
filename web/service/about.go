package service

import (
	"time"

	"portfolio/database"
	"portfolio/database/model"
	"portfolio/web/cache"
)

const aboutCache = "about"

// AboutService manages the singleton about document: at most one row exists,
// reads return nil when it has never been written.
type AboutService struct{}

func (s *AboutService) GetAbout() (*model.About, error) {
	var about model.About
	err := cache.GetOrSet(cache.SingletonKey(aboutCache), &about, cache.TTLContent, func() (any, error) {
		var item model.About
		err := database.GetDB().First(&item).Error
		return &item, err
	})
	if database.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &about, nil
}

// UpsertAbout updates the sole document when present and creates it
// otherwise. Running inside a transaction keeps the at-most-one invariant
// against a concurrent first write.
func (s *AboutService) UpsertAbout(fields map[string]any) (*model.About, error) {
	db := database.GetDB()

	var about model.About
	var err error
	tx := db.Begin()
	defer func() {
		if err != nil {
			tx.Rollback()
		} else {
			tx.Commit()
		}
	}()

	err = tx.First(&about).Error
	if err != nil && !database.IsNotFound(err) {
		return nil, err
	}
	creating := database.IsNotFound(err)
	err = nil

	loadedId := about.Id
	if err = applyFields(&about, fields); err != nil {
		return nil, err
	}
	about.Id = loadedId
	if err = s.validate(&about); err != nil {
		return nil, err
	}
	about.UpdatedAt = time.Now().Unix()

	if creating {
		about.Id = 0
		err = tx.Create(&about).Error
	} else {
		err = tx.Save(&about).Error
	}
	if err != nil {
		return nil, err
	}

	cache.Invalidate(aboutCache)
	return &about, nil
}

func (s *AboutService) validate(about *model.About) error {
	if about.Bio == "" {
		return newValidationErrorf("about bio is required")
	}
	return nil
}
