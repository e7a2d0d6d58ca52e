package service

import (
	"time"

	"portfolio/database"
	"portfolio/database/model"
	"portfolio/web/cache"
)

const certificationCache = "certifications"

// CertificationService provides CRUD over certifications.
type CertificationService struct{}

func (s *CertificationService) GetCertifications() ([]*model.Certification, error) {
	var certifications []*model.Certification
	err := cache.GetOrSet(cache.ListKey(certificationCache), &certifications, cache.TTLContent, func() (any, error) {
		var items []*model.Certification
		err := database.GetDB().Order(listOrder).Find(&items).Error
		return items, err
	})
	return certifications, err
}

func (s *CertificationService) GetCertification(id int) (*model.Certification, error) {
	var certification model.Certification
	err := cache.GetOrSet(cache.ItemKey(certificationCache, id), &certification, cache.TTLContent, func() (any, error) {
		var item model.Certification
		err := database.GetDB().First(&item, id).Error
		return &item, err
	})
	if err != nil {
		return nil, err
	}
	return &certification, nil
}

func (s *CertificationService) AddCertification(certification *model.Certification) error {
	if err := s.validate(certification); err != nil {
		return err
	}

	now := time.Now().Unix()
	certification.CreatedAt = now
	certification.UpdatedAt = now

	if err := database.GetDB().Create(certification).Error; err != nil {
		return err
	}
	cache.Invalidate(certificationCache)
	return nil
}

func (s *CertificationService) UpdateCertification(id int, fields map[string]any) (*model.Certification, error) {
	db := database.GetDB()

	var certification model.Certification
	if err := db.First(&certification, id).Error; err != nil {
		return nil, err
	}

	if err := applyFields(&certification, fields); err != nil {
		return nil, err
	}
	certification.Id = id
	if err := s.validate(&certification); err != nil {
		return nil, err
	}
	certification.UpdatedAt = time.Now().Unix()

	if err := db.Save(&certification).Error; err != nil {
		return nil, err
	}
	cache.Invalidate(certificationCache)
	return &certification, nil
}

func (s *CertificationService) DeleteCertification(id int) (bool, error) {
	result := database.GetDB().Delete(&model.Certification{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	cache.Invalidate(certificationCache)
	return true, nil
}

func (s *CertificationService) validate(certification *model.Certification) error {
	if certification.Title == "" {
		return newValidationErrorf("certification title is required")
	}
	if certification.Issuer == "" {
		return newValidationErrorf("certification issuer is required")
	}
	return nil
}
