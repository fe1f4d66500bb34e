package repo

import (
	"errors" // Error inspection

	"deckquest/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Users wraps all persistence for user records
type Users struct {
	db *gorm.DB // Database handle
}

// NewUsers creates a user repository
func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// Create registers a new user with an already-hashed password
func (r *Users) Create(email, passwordHash string) (*domain.User, error) {
	user := domain.User{Email: email, Password: passwordHash}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing domain.User
		// Reject duplicate emails before inserting
		if err := tx.Where("email = ?", email).First(&existing).Error; err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail looks a user up by login email
func (r *Users) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByID looks a user up by primary key
func (r *Users) FindByID(id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ConnectWallet binds a wallet address to a user. Fails with ErrWalletTaken
// when the address is already bound to a different user; rebinding the same
// user's own address just overwrites the fields.
func (r *Users) ConnectWallet(userID uint, address, walletType string) (*domain.User, error) {
	var user domain.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var other domain.User
		// The uniqueness check and the update must see a consistent snapshot
		if err := tx.Where("wallet_address = ? AND id <> ?", address, userID).First(&other).Error; err == nil {
			return ErrWalletTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		user.WalletAddress = &address
		user.WalletType = walletType
		return tx.Model(&user).Updates(map[string]any{
			"wallet_address": address,
			"wallet_type":    walletType,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DisconnectWallet clears the user's wallet fields unconditionally
func (r *Users) DisconnectWallet(userID uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := r.db.Model(&user).Updates(map[string]any{
		"wallet_address": nil,
		"wallet_type":    "",
	}).Error; err != nil {
		return nil, err
	}
	user.WalletAddress = nil
	user.WalletType = ""
	return &user, nil
}

// SetBattleBlocked flips the battle-block flag for a user
func (r *Users) SetBattleBlocked(userID uint, blocked bool) error {
	res := r.db.Model(&domain.User{}).Where("id = ?", userID).Update("battle_blocked", blocked)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns a page of users plus the total count, for the admin surface
func (r *Users) List(page, pageSize int) ([]domain.User, int64, error) {
	var total int64
	if err := r.db.Model(&domain.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []domain.User
	offset := (page - 1) * pageSize // Calculate offset for pagination
	if err := r.db.Offset(offset).Limit(pageSize).Order("id").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
