package impl

import (
	"errors"

	"FaithNest/models"
	"FaithNest/repositories"

	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepositoryImpl{DB: db}
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return repositories.ErrDuplicate
		}
		return tx.Create(user).Error
	})
}

func (r *UserRepositoryImpl) FindByID(id uint) (models.User, error) {
	var user models.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

func (r *UserRepositoryImpl) FindByUsername(username string) (models.User, error) {
	var user models.User
	if err := r.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

func (r *UserRepositoryImpl) ListChildren(parentID uint) ([]models.User, error) {
	children := []models.User{}
	err := r.DB.Where("role = ? AND parent_id = ?", models.RoleChild, parentID).
		Order("id").Find(&children).Error
	return children, err
}

func (r *UserRepositoryImpl) Delete(id uint) error {
	result := r.DB.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repositories.ErrNotFound
	}
	return err
}
