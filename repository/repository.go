package repository

import (
	"errors"

	"github.com/ILoveTech2001/JALAI-2/models"
)

// Storage sentinels. Both backends translate their native failures into
// these so handlers can map them onto HTTP statuses uniformly.
var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("duplicate entry")
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// ProductFilter narrows product listings. Zero values mean "no filter".
type ProductFilter struct {
	Status     models.ProductStatus
	CategoryID string
	SellerID   string
	Featured   *bool
	Search     string
	Page       int
	Limit      int
}

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	ListByRole(role models.Role, page, limit int) ([]models.User, int64, error)
}

type CategoryRepository interface {
	Create(category *models.Category) error
	FindByID(id string) (*models.Category, error)
	FindBySlug(slug string) (*models.Category, error)
	ListActive() ([]models.Category, error)
	List(page, limit int) ([]models.Category, int64, error)
	Update(category *models.Category) error
	Delete(id string) error
}

type ProductRepository interface {
	Create(product *models.Product) error
	FindByID(id string) (*models.Product, error)
	List(filter ProductFilter) ([]models.Product, int64, error)
	Update(product *models.Product) error
	Delete(id string) error
	IncrementViews(id string) error
	CountByStatus(status models.ProductStatus) (int64, error)
}

type OrderRepository interface {
	Create(order *models.Order) error
	FindByID(id string) (*models.Order, error)
	ListByBuyer(buyerID string) ([]models.Order, error)
	List(page, limit int) ([]models.Order, int64, error)
}

type DonationRepository interface {
	Create(donation *models.Donation) error
	FindByID(id string) (*models.Donation, error)
	ListByDonor(donorID string) ([]models.Donation, error)
	List(page, limit int) ([]models.Donation, int64, error)
	Update(donation *models.Donation) error
}

type OrphanageRepository interface {
	Create(orphanage *models.Orphanage) error
	FindByID(id string) (*models.Orphanage, error)
	ListVerified() ([]models.Orphanage, error)
	List(page, limit int) ([]models.Orphanage, int64, error)
	Update(orphanage *models.Orphanage) error
}

type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindByID(id string) (*models.Notification, error)
	ListByUser(userID string, limit int) ([]models.Notification, error)
	ListAll(page, limit int) ([]models.Notification, int64, error)
	MarkRead(id string) error
	MarkAllRead(userID string) error
}

type ReviewRepository interface {
	Create(review *models.Review) error
	List(page, limit int) ([]models.Review, int64, error)
}

type PaymentRepository interface {
	Create(payment *models.Payment) error
	List(page, limit int) ([]models.Payment, int64, error)
}

type RefreshTokenRepository interface {
	Create(token *models.RefreshToken) error
	FindByID(jti string) (*models.RefreshToken, error)
	Revoke(jti string) error
	RevokeAllForUser(userID string) error
}

// Repositories bundles one repository per aggregate so handlers can be
// wired against either storage backend.
type Repositories struct {
	Users         UserRepository
	Categories    CategoryRepository
	Products      ProductRepository
	Orders        OrderRepository
	Donations     DonationRepository
	Orphanages    OrphanageRepository
	Notifications NotificationRepository
	Reviews       ReviewRepository
	Payments      PaymentRepository
	RefreshTokens RefreshTokenRepository
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
