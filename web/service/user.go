// Package service implements the credential store, token service, and the
// per-resource content services backing the API controllers.
package service

import (
	"portfolio/database"
	"portfolio/database/model"
	"portfolio/logger"
	"portfolio/util/common"
	"portfolio/util/crypto"
)

// UserService is the credential store for the single administrator account.
type UserService struct{}

func (s *UserService) GetFirstAdmin() (*model.Admin, error) {
	db := database.GetDB()

	admin := &model.Admin{}
	err := db.Model(model.Admin{}).
		First(admin).
		Error
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// CheckAdmin verifies a username/password pair. It returns nil for both an
// unknown username and a wrong password so callers cannot enumerate accounts.
func (s *UserService) CheckAdmin(username string, password string) *model.Admin {
	db := database.GetDB()

	admin := &model.Admin{}

	err := db.Model(model.Admin{}).
		Where("username = ?", username).
		First(admin).
		Error
	if database.IsNotFound(err) {
		return nil
	} else if err != nil {
		logger.Warning("check admin err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(admin.Password, password) {
		return nil
	}

	return admin
}

// UpdateFirstAdmin updates the administrator credentials. The password is
// hashed only when a new plaintext value is supplied; passing an empty or
// already-hashed value keeps the stored hash, so a re-save never hashes a
// hash.
func (s *UserService) UpdateFirstAdmin(username string, password string) error {
	if username == "" {
		return common.NewError("username can not be empty")
	}

	db := database.GetDB()
	admin := &model.Admin{}
	err := db.Model(model.Admin{}).First(admin).Error
	if err != nil && !database.IsNotFound(err) {
		return err
	}

	if password == "" || password == admin.Password {
		if admin.Id == 0 {
			return common.NewError("password can not be empty")
		}
		// keep existing hash untouched
	} else if crypto.IsHashed(password) {
		admin.Password = password
	} else {
		hashed, err := crypto.HashPassword(password)
		if err != nil {
			return err
		}
		admin.Password = hashed
	}

	admin.Username = username
	if admin.Id == 0 {
		return db.Create(admin).Error
	}
	return db.Save(admin).Error
}
