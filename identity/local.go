package identity

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"kacip-storefront/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LocalBackend keeps users in the application database and issues JWTs for them.
// Logout revokes a token by its JTI until the token would have expired anyway.
type LocalBackend struct {
	db     *gorm.DB
	tokens *TokenIssuer
}

func NewLocalBackend(db *gorm.DB, tokens *TokenIssuer) (*LocalBackend, error) {
	if err := db.AutoMigrate(&models.User{}, &models.RevokedToken{}); err != nil {
		return nil, fmt.Errorf("migrate identity tables: %w", err)
	}
	return &LocalBackend{db: db, tokens: tokens}, nil
}

// Login authenticates a user and returns a JWT
func (b *LocalBackend) Login(ctx context.Context, email, password string) (Identity, string, error) {
	var user models.User
	err := b.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Identity{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return Identity{}, "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Identity{}, "", ErrInvalidCredentials
	}

	token, _, err := b.tokens.Generate(&user)
	if err != nil {
		return Identity{}, "", err
	}
	return fromUser(&user), token, nil
}

// Logout revokes token. Revoking an already revoked token is a no-op.
func (b *LocalBackend) Logout(ctx context.Context, token string) error {
	claims, err := b.tokens.Parse(token)
	if err != nil {
		return err
	}
	revoked := models.RevokedToken{JTI: claims.ID, ExpiresAt: claims.ExpiresAt.Time}
	err = b.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&revoked).Error
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// CurrentUser validates token and reloads the user it was issued for
func (b *LocalBackend) CurrentUser(ctx context.Context, token string) (Identity, error) {
	claims, err := b.tokens.Parse(token)
	if err != nil {
		return Identity{}, err
	}

	db := b.db.WithContext(ctx)
	var revoked int64
	if err := db.Model(&models.RevokedToken{}).Where("jti = ?", claims.ID).Count(&revoked).Error; err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if revoked > 0 {
		return Identity{}, ErrInvalidToken
	}

	var user models.User
	err = db.First(&user, claims.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Identity{}, ErrInvalidToken
	}
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return fromUser(&user), nil
}

// Register creates a customer account and signs it in. Self-registration never grants admin.
func (b *LocalBackend) Register(ctx context.Context, name, email, password, phone string) (Identity, string, error) {
	user, err := b.create(ctx, name, email, password, phone, models.RoleCustomer)
	if err != nil {
		return Identity{}, "", err
	}
	token, _, err := b.tokens.Generate(user)
	if err != nil {
		return Identity{}, "", err
	}
	return fromUser(user), token, nil
}

// EnsureUser creates the account when its email is not registered yet. Used to seed the
// admin account at startup.
func (b *LocalBackend) EnsureUser(ctx context.Context, name, email, password string, role models.UserRole) error {
	_, err := b.create(ctx, name, email, password, "", role)
	if errors.Is(err, ErrEmailTaken) {
		return nil
	}
	return err
}

// PurgeRevoked drops revocations whose tokens have expired by now
func (b *LocalBackend) PurgeRevoked(ctx context.Context, now time.Time) (int64, error) {
	res := b.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&models.RevokedToken{})
	if res.Error != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, res.Error)
	}
	return res.RowsAffected, nil
}

func (b *LocalBackend) create(ctx context.Context, name, email, password, phone string, role models.UserRole) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	email = normalizeEmail(email)
	db := b.db.WithContext(ctx)

	// Check email uniqueness
	var existing int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if existing > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        phone,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return user, nil
}

func fromUser(u *models.User) Identity {
	return Identity{
		ID:    strconv.FormatUint(uint64(u.ID), 10),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
