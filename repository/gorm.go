package repository

import (
	"errors"

	"github.com/ILoveTech2001/JALAI-2/models"
	"gorm.io/gorm"
)

// NewGormRepositories wires every repository to the relational backend
func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:         &gormUserRepo{db: db},
		Categories:    &gormCategoryRepo{db: db},
		Products:      &gormProductRepo{db: db},
		Orders:        &gormOrderRepo{db: db},
		Donations:     &gormDonationRepo{db: db},
		Orphanages:    &gormOrphanageRepo{db: db},
		Notifications: &gormNotificationRepo{db: db},
		Reviews:       &gormReviewRepo{db: db},
		Payments:      &gormPaymentRepo{db: db},
		RefreshTokens: &gormRefreshTokenRepo{db: db},
	}
}

// translate maps gorm errors onto the package sentinels
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrInvalidReference
	}
	return err
}

type gormUserRepo struct {
	db *gorm.DB
}

func (r *gormUserRepo) Create(user *models.User) error {
	return translate(r.db.Create(user).Error)
}

func (r *gormUserRepo) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *gormUserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *gormUserRepo) Update(user *models.User) error {
	return translate(r.db.Save(user).Error)
}

func (r *gormUserRepo) ListByRole(role models.Role, page, limit int) ([]models.User, int64, error) {
	page, limit = normalizePage(page, limit)

	query := r.db.Model(&models.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var users []models.User
	err := query.Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&users).Error
	return users, total, translate(err)
}

type gormCategoryRepo struct {
	db *gorm.DB
}

func (r *gormCategoryRepo) Create(category *models.Category) error {
	return translate(r.db.Create(category).Error)
}

func (r *gormCategoryRepo) FindByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (r *gormCategoryRepo) FindBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "slug = ?", slug).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (r *gormCategoryRepo) ListActive() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("is_active = ?", true).
		Order("sort_order asc, name asc").
		Find(&categories).Error
	return categories, translate(err)
}

func (r *gormCategoryRepo) List(page, limit int) ([]models.Category, int64, error) {
	page, limit = normalizePage(page, limit)

	var total int64
	if err := r.db.Model(&models.Category{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var categories []models.Category
	err := r.db.Order("sort_order asc, name asc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&categories).Error
	return categories, total, translate(err)
}

func (r *gormCategoryRepo) Update(category *models.Category) error {
	return translate(r.db.Save(category).Error)
}

func (r *gormCategoryRepo) Delete(id string) error {
	result := r.db.Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type gormProductRepo struct {
	db *gorm.DB
}

func (r *gormProductRepo) Create(product *models.Product) error {
	return translate(r.db.Create(product).Error)
}

func (r *gormProductRepo) FindByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Seller").Preload("Category").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *gormProductRepo) List(filter ProductFilter) ([]models.Product, int64, error) {
	page, limit := normalizePage(filter.Page, filter.Limit)

	query := r.db.Model(&models.Product{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.SellerID != "" {
		query = query.Where("seller_id = ?", filter.SellerID)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var products []models.Product
	err := query.Preload("Seller").Preload("Category").
		Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&products).Error
	return products, total, translate(err)
}

func (r *gormProductRepo) Update(product *models.Product) error {
	return translate(r.db.Save(product).Error)
}

func (r *gormProductRepo) Delete(id string) error {
	result := r.db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormProductRepo) IncrementViews(id string) error {
	return translate(r.db.Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error)
}

func (r *gormProductRepo) CountByStatus(status models.ProductStatus) (int64, error) {
	query := r.db.Model(&models.Product{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var total int64
	err := query.Count(&total).Error
	return total, translate(err)
}

type gormOrderRepo struct {
	db *gorm.DB
}

func (r *gormOrderRepo) Create(order *models.Order) error {
	return translate(r.db.Create(order).Error)
}

func (r *gormOrderRepo) FindByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *gormOrderRepo) ListByBuyer(buyerID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("buyer_id = ?", buyerID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, translate(err)
}

func (r *gormOrderRepo) List(page, limit int) ([]models.Order, int64, error) {
	page, limit = normalizePage(page, limit)

	var total int64
	if err := r.db.Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var orders []models.Order
	err := r.db.Preload("Items").Preload("Buyer").
		Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&orders).Error
	return orders, total, translate(err)
}

type gormDonationRepo struct {
	db *gorm.DB
}

func (r *gormDonationRepo) Create(donation *models.Donation) error {
	return translate(r.db.Create(donation).Error)
}

func (r *gormDonationRepo) FindByID(id string) (*models.Donation, error) {
	var donation models.Donation
	err := r.db.Preload("Orphanage").First(&donation, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &donation, nil
}

func (r *gormDonationRepo) ListByDonor(donorID string) ([]models.Donation, error) {
	var donations []models.Donation
	err := r.db.Preload("Orphanage").
		Where("donor_id = ?", donorID).
		Order("created_at desc").
		Find(&donations).Error
	return donations, translate(err)
}

func (r *gormDonationRepo) List(page, limit int) ([]models.Donation, int64, error) {
	page, limit = normalizePage(page, limit)

	var total int64
	if err := r.db.Model(&models.Donation{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var donations []models.Donation
	err := r.db.Preload("Donor").Preload("Orphanage").
		Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&donations).Error
	return donations, total, translate(err)
}

func (r *gormDonationRepo) Update(donation *models.Donation) error {
	return translate(r.db.Save(donation).Error)
}

type gormOrphanageRepo struct {
	db *gorm.DB
}

func (r *gormOrphanageRepo) Create(orphanage *models.Orphanage) error {
	return translate(r.db.Create(orphanage).Error)
}

func (r *gormOrphanageRepo) FindByID(id string) (*models.Orphanage, error) {
	var orphanage models.Orphanage
	if err := r.db.First(&orphanage, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &orphanage, nil
}

func (r *gormOrphanageRepo) ListVerified() ([]models.Orphanage, error) {
	var orphanages []models.Orphanage
	err := r.db.Where("verified = ?", true).
		Order("name asc").
		Find(&orphanages).Error
	return orphanages, translate(err)
}

func (r *gormOrphanageRepo) List(page, limit int) ([]models.Orphanage, int64, error) {
	page, limit = normalizePage(page, limit)

	var total int64
	if err := r.db.Model(&models.Orphanage{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var orphanages []models.Orphanage
	err := r.db.Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&orphanages).Error
	return orphanages, total, translate(err)
}

func (r *gormOrphanageRepo) Update(orphanage *models.Orphanage) error {
	return translate(r.db.Save(orphanage).Error)
}

type gormNotificationRepo struct {
	db *gorm.DB
}

func (r *gormNotificationRepo) Create(notification *models.Notification) error {
	return translate(r.db.Create(notification).Error)
}

func (r *gormNotificationRepo) FindByID(id string) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.First(&notification, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &notification, nil
}

func (r *gormNotificationRepo) ListByUser(userID string, limit int) ([]models.Notification, error) {
	query := r.db.Where("user_id = ?", userID).Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var notifications []models.Notification
	err := query.Find(&notifications).Error
	return notifications, translate(err)
}

func (r *gormNotificationRepo) ListAll(page, limit int) ([]models.Notification, int64, error) {
	page, limit = normalizePage(page, limit)

	var total int64
	if err := r.db.Model(&models.Notification{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var notifications []models.Notification
	err := r.db.Preload("User").
		Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&notifications).Error
	return notifications, total, translate(err)
}

func (r *gormNotificationRepo) MarkRead(id string) error {
	result := r.db.Model(&models.Notification{}).
		Where("id = ?", id).
		Update("read", true)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormNotificationRepo) MarkAllRead(userID string) error {
	return translate(r.db.Model(&models.Notification{}).
		Where("user_id = ? AND `read` = ?", userID, false).
		Update("read", true).Error)
}

type gormReviewRepo struct {
	db *gorm.DB
}

func (r *gormReviewRepo) Create(review *models.Review) error {
	return translate(r.db.Create(review).Error)
}

func (r *gormReviewRepo) List(page, limit int) ([]models.Review, int64, error) {
	page, limit = normalizePage(page, limit)

	var total int64
	if err := r.db.Model(&models.Review{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var reviews []models.Review
	err := r.db.Preload("User").Preload("Product").
		Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&reviews).Error
	return reviews, total, translate(err)
}

type gormPaymentRepo struct {
	db *gorm.DB
}

func (r *gormPaymentRepo) Create(payment *models.Payment) error {
	return translate(r.db.Create(payment).Error)
}

func (r *gormPaymentRepo) List(page, limit int) ([]models.Payment, int64, error) {
	page, limit = normalizePage(page, limit)

	var total int64
	if err := r.db.Model(&models.Payment{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var payments []models.Payment
	err := r.db.Preload("User").
		Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&payments).Error
	return payments, total, translate(err)
}

type gormRefreshTokenRepo struct {
	db *gorm.DB
}

func (r *gormRefreshTokenRepo) Create(token *models.RefreshToken) error {
	return translate(r.db.Create(token).Error)
}

func (r *gormRefreshTokenRepo) FindByID(jti string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	if err := r.db.First(&token, "id = ?", jti).Error; err != nil {
		return nil, translate(err)
	}
	return &token, nil
}

func (r *gormRefreshTokenRepo) Revoke(jti string) error {
	result := r.db.Model(&models.RefreshToken{}).
		Where("id = ?", jti).
		Update("revoked", true)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormRefreshTokenRepo) RevokeAllForUser(userID string) error {
	return translate(r.db.Model(&models.RefreshToken{}).
		Where("user_id = ?", userID).
		Update("revoked", true).Error)
}
