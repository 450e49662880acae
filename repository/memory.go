package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ILoveTech2001/JALAI-2/models"
	"github.com/ILoveTech2001/JALAI-2/utils"
	"github.com/google/uuid"
)

// memoryStore backs the demo mode and the test suite. Unlike the mock
// servers it replaces, access is guarded by a mutex so concurrent
// requests are safe. All repositories share one store so uniqueness and
// reference checks behave like the relational backend.
type memoryStore struct {
	mu            sync.RWMutex
	users         map[string]models.User
	categories    map[string]models.Category
	products      map[string]models.Product
	orders        map[string]models.Order
	donations     map[string]models.Donation
	orphanages    map[string]models.Orphanage
	notifications map[string]models.Notification
	reviews       map[string]models.Review
	payments      map[string]models.Payment
	refreshTokens map[string]models.RefreshToken
}

// NewMemoryRepositories wires every repository to a shared in-memory store
func NewMemoryRepositories() *Repositories {
	s := &memoryStore{
		users:         make(map[string]models.User),
		categories:    make(map[string]models.Category),
		products:      make(map[string]models.Product),
		orders:        make(map[string]models.Order),
		donations:     make(map[string]models.Donation),
		orphanages:    make(map[string]models.Orphanage),
		notifications: make(map[string]models.Notification),
		reviews:       make(map[string]models.Review),
		payments:      make(map[string]models.Payment),
		refreshTokens: make(map[string]models.RefreshToken),
	}
	return &Repositories{
		Users:         &memoryUserRepo{s},
		Categories:    &memoryCategoryRepo{s},
		Products:      &memoryProductRepo{s},
		Orders:        &memoryOrderRepo{s},
		Donations:     &memoryDonationRepo{s},
		Orphanages:    &memoryOrphanageRepo{s},
		Notifications: &memoryNotificationRepo{s},
		Reviews:       &memoryReviewRepo{s},
		Payments:      &memoryPaymentRepo{s},
		RefreshTokens: &memoryRefreshTokenRepo{s},
	}
}

func stamp(id *string, createdAt *time.Time, updatedAt *time.Time) {
	if *id == "" {
		*id = uuid.NewString()
	}
	now := time.Now()
	if createdAt != nil && createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt != nil {
		*updatedAt = now
	}
}

func paginate[T any](items []T, page, limit int) []T {
	page, limit = normalizePage(page, limit)
	start := (page - 1) * limit
	if start >= len(items) {
		return nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

type memoryUserRepo struct {
	s *memoryStore
}

func (r *memoryUserRepo) Create(user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return ErrDuplicate
		}
	}
	stamp(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if user.Role == "" {
		user.Role = models.RoleClient
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepo) FindByID(id string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *memoryUserRepo) FindByEmail(email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, user := range r.s.users {
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepo) Update(user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.ID]; !ok {
		return ErrNotFound
	}
	for _, existing := range r.s.users {
		if existing.ID != user.ID && strings.EqualFold(existing.Email, user.Email) {
			return ErrDuplicate
		}
	}
	user.UpdatedAt = time.Now()
	r.s.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepo) ListByRole(role models.Role, page, limit int) ([]models.User, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var users []models.User
	for _, user := range r.s.users {
		if role == "" || user.Role == role {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	total := int64(len(users))
	return paginate(users, page, limit), total, nil
}

type memoryCategoryRepo struct {
	s *memoryStore
}

func (r *memoryCategoryRepo) Create(category *models.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if category.Slug == "" {
		category.Slug = utils.Slugify(category.Name)
	}
	for _, existing := range r.s.categories {
		if strings.EqualFold(existing.Name, category.Name) || existing.Slug == category.Slug {
			return ErrDuplicate
		}
	}
	stamp(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	r.s.categories[category.ID] = *category
	return nil
}

func (r *memoryCategoryRepo) FindByID(id string) (*models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	category, ok := r.s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	category.SyncImageURL()
	return &category, nil
}

func (r *memoryCategoryRepo) FindBySlug(slug string) (*models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, category := range r.s.categories {
		if category.Slug == slug {
			c := category
			c.SyncImageURL()
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func sortCategories(categories []models.Category) {
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].SortOrder != categories[j].SortOrder {
			return categories[i].SortOrder < categories[j].SortOrder
		}
		return categories[i].Name < categories[j].Name
	})
}

func (r *memoryCategoryRepo) ListActive() ([]models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var categories []models.Category
	for _, category := range r.s.categories {
		if category.IsActive {
			category.SyncImageURL()
			categories = append(categories, category)
		}
	}
	sortCategories(categories)
	return categories, nil
}

func (r *memoryCategoryRepo) List(page, limit int) ([]models.Category, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var categories []models.Category
	for _, category := range r.s.categories {
		category.SyncImageURL()
		categories = append(categories, category)
	}
	sortCategories(categories)
	total := int64(len(categories))
	return paginate(categories, page, limit), total, nil
}

func (r *memoryCategoryRepo) Update(category *models.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[category.ID]; !ok {
		return ErrNotFound
	}
	for _, existing := range r.s.categories {
		if existing.ID == category.ID {
			continue
		}
		if strings.EqualFold(existing.Name, category.Name) || existing.Slug == category.Slug {
			return ErrDuplicate
		}
	}
	category.UpdatedAt = time.Now()
	r.s.categories[category.ID] = *category
	return nil
}

func (r *memoryCategoryRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.categories, id)
	return nil
}

type memoryProductRepo struct {
	s *memoryStore
}

// attach fills the relations the gorm backend preloads
func (r *memoryProductRepo) attach(product models.Product) models.Product {
	product.SyncImageURL()
	if seller, ok := r.s.users[product.SellerID]; ok {
		s := seller
		product.Seller = &s
	}
	if category, ok := r.s.categories[product.CategoryID]; ok {
		c := category
		product.Category = &c
	}
	return product
}

func (r *memoryProductRepo) Create(product *models.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[product.SellerID]; !ok {
		return ErrInvalidReference
	}
	if _, ok := r.s.categories[product.CategoryID]; !ok {
		return ErrInvalidReference
	}
	stamp(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if product.Condition == "" {
		product.Condition = models.ConditionGood
	}
	if product.Status == "" {
		product.Status = models.StatusPendingApproval
	}
	stored := *product
	stored.Seller = nil
	stored.Category = nil
	r.s.products[product.ID] = stored
	return nil
}

func (r *memoryProductRepo) FindByID(id string) (*models.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	product, ok := r.s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	attached := r.attach(product)
	return &attached, nil
}

func (r *memoryProductRepo) List(filter ProductFilter) ([]models.Product, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	var products []models.Product
	for _, product := range r.s.products {
		if filter.Status != "" && product.Status != filter.Status {
			continue
		}
		if filter.CategoryID != "" && product.CategoryID != filter.CategoryID {
			continue
		}
		if filter.SellerID != "" && product.SellerID != filter.SellerID {
			continue
		}
		if filter.Featured != nil && product.Featured != *filter.Featured {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(product.Name), search) &&
			!strings.Contains(strings.ToLower(product.Description), search) {
			continue
		}
		products = append(products, r.attach(product))
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	total := int64(len(products))
	return paginate(products, filter.Page, filter.Limit), total, nil
}

func (r *memoryProductRepo) Update(product *models.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[product.ID]; !ok {
		return ErrNotFound
	}
	product.UpdatedAt = time.Now()
	stored := *product
	stored.Seller = nil
	stored.Category = nil
	r.s.products[product.ID] = stored
	return nil
}

func (r *memoryProductRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

func (r *memoryProductRepo) IncrementViews(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	product, ok := r.s.products[id]
	if !ok {
		return ErrNotFound
	}
	product.Views++
	r.s.products[id] = product
	return nil
}

func (r *memoryProductRepo) CountByStatus(status models.ProductStatus) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var total int64
	for _, product := range r.s.products {
		if status == "" || product.Status == status {
			total++
		}
	}
	return total, nil
}

type memoryOrderRepo struct {
	s *memoryStore
}

func (r *memoryOrderRepo) Create(order *models.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[order.BuyerID]; !ok {
		return ErrInvalidReference
	}
	stamp(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if order.Status == "" {
		order.Status = models.OrderPending
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = models.PaymentUnpaid
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.NewString()
		}
		order.Items[i].OrderID = order.ID
	}
	stored := *order
	stored.Buyer = nil
	r.s.orders[order.ID] = stored
	return nil
}

func (r *memoryOrderRepo) FindByID(id string) (*models.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	order, ok := r.s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &order, nil
}

func (r *memoryOrderRepo) ListByBuyer(buyerID string) ([]models.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var orders []models.Order
	for _, order := range r.s.orders {
		if order.BuyerID == buyerID {
			orders = append(orders, order)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *memoryOrderRepo) List(page, limit int) ([]models.Order, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var orders []models.Order
	for _, order := range r.s.orders {
		if buyer, ok := r.s.users[order.BuyerID]; ok {
			b := buyer
			order.Buyer = &b
		}
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	total := int64(len(orders))
	return paginate(orders, page, limit), total, nil
}

type memoryDonationRepo struct {
	s *memoryStore
}

func (r *memoryDonationRepo) attach(donation models.Donation) models.Donation {
	if orphanage, ok := r.s.orphanages[donation.OrphanageID]; ok {
		o := orphanage
		donation.Orphanage = &o
	}
	return donation
}

func (r *memoryDonationRepo) Create(donation *models.Donation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[donation.DonorID]; !ok {
		return ErrInvalidReference
	}
	if _, ok := r.s.orphanages[donation.OrphanageID]; !ok {
		return ErrInvalidReference
	}
	stamp(&donation.ID, &donation.CreatedAt, &donation.UpdatedAt)
	if donation.Status == "" {
		donation.Status = models.DonationPending
	}
	stored := *donation
	stored.Donor = nil
	stored.Orphanage = nil
	r.s.donations[donation.ID] = stored
	return nil
}

func (r *memoryDonationRepo) FindByID(id string) (*models.Donation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	donation, ok := r.s.donations[id]
	if !ok {
		return nil, ErrNotFound
	}
	attached := r.attach(donation)
	return &attached, nil
}

func (r *memoryDonationRepo) ListByDonor(donorID string) ([]models.Donation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var donations []models.Donation
	for _, donation := range r.s.donations {
		if donation.DonorID == donorID {
			donations = append(donations, r.attach(donation))
		}
	}
	sort.Slice(donations, func(i, j int) bool {
		return donations[i].CreatedAt.After(donations[j].CreatedAt)
	})
	return donations, nil
}

func (r *memoryDonationRepo) List(page, limit int) ([]models.Donation, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var donations []models.Donation
	for _, donation := range r.s.donations {
		attached := r.attach(donation)
		if donor, ok := r.s.users[donation.DonorID]; ok {
			d := donor
			attached.Donor = &d
		}
		donations = append(donations, attached)
	}
	sort.Slice(donations, func(i, j int) bool {
		return donations[i].CreatedAt.After(donations[j].CreatedAt)
	})
	total := int64(len(donations))
	return paginate(donations, page, limit), total, nil
}

func (r *memoryDonationRepo) Update(donation *models.Donation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.donations[donation.ID]; !ok {
		return ErrNotFound
	}
	donation.UpdatedAt = time.Now()
	stored := *donation
	stored.Donor = nil
	stored.Orphanage = nil
	r.s.donations[donation.ID] = stored
	return nil
}

type memoryOrphanageRepo struct {
	s *memoryStore
}

func (r *memoryOrphanageRepo) Create(orphanage *models.Orphanage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stamp(&orphanage.ID, &orphanage.CreatedAt, &orphanage.UpdatedAt)
	r.s.orphanages[orphanage.ID] = *orphanage
	return nil
}

func (r *memoryOrphanageRepo) FindByID(id string) (*models.Orphanage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	orphanage, ok := r.s.orphanages[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &orphanage, nil
}

func (r *memoryOrphanageRepo) ListVerified() ([]models.Orphanage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var orphanages []models.Orphanage
	for _, orphanage := range r.s.orphanages {
		if orphanage.Verified {
			orphanages = append(orphanages, orphanage)
		}
	}
	sort.Slice(orphanages, func(i, j int) bool {
		return orphanages[i].Name < orphanages[j].Name
	})
	return orphanages, nil
}

func (r *memoryOrphanageRepo) List(page, limit int) ([]models.Orphanage, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var orphanages []models.Orphanage
	for _, orphanage := range r.s.orphanages {
		orphanages = append(orphanages, orphanage)
	}
	sort.Slice(orphanages, func(i, j int) bool {
		return orphanages[i].CreatedAt.After(orphanages[j].CreatedAt)
	})
	total := int64(len(orphanages))
	return paginate(orphanages, page, limit), total, nil
}

func (r *memoryOrphanageRepo) Update(orphanage *models.Orphanage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.orphanages[orphanage.ID]; !ok {
		return ErrNotFound
	}
	orphanage.UpdatedAt = time.Now()
	r.s.orphanages[orphanage.ID] = *orphanage
	return nil
}

type memoryNotificationRepo struct {
	s *memoryStore
}

func (r *memoryNotificationRepo) Create(notification *models.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stamp(&notification.ID, &notification.CreatedAt, nil)
	r.s.notifications[notification.ID] = *notification
	return nil
}

func (r *memoryNotificationRepo) FindByID(id string) (*models.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	notification, ok := r.s.notifications[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &notification, nil
}

func (r *memoryNotificationRepo) ListByUser(userID string, limit int) ([]models.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var notifications []models.Notification
	for _, notification := range r.s.notifications {
		if notification.UserID == userID {
			notifications = append(notifications, notification)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	if limit > 0 && len(notifications) > limit {
		notifications = notifications[:limit]
	}
	return notifications, nil
}

func (r *memoryNotificationRepo) ListAll(page, limit int) ([]models.Notification, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var notifications []models.Notification
	for _, notification := range r.s.notifications {
		if user, ok := r.s.users[notification.UserID]; ok {
			u := user
			notification.User = &u
		}
		notifications = append(notifications, notification)
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	total := int64(len(notifications))
	return paginate(notifications, page, limit), total, nil
}

func (r *memoryNotificationRepo) MarkRead(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	notification, ok := r.s.notifications[id]
	if !ok {
		return ErrNotFound
	}
	notification.Read = true
	r.s.notifications[id] = notification
	return nil
}

func (r *memoryNotificationRepo) MarkAllRead(userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, notification := range r.s.notifications {
		if notification.UserID == userID && !notification.Read {
			notification.Read = true
			r.s.notifications[id] = notification
		}
	}
	return nil
}

type memoryReviewRepo struct {
	s *memoryStore
}

func (r *memoryReviewRepo) Create(review *models.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[review.UserID]; !ok {
		return ErrInvalidReference
	}
	if _, ok := r.s.products[review.ProductID]; !ok {
		return ErrInvalidReference
	}
	stamp(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if review.Status == "" {
		review.Status = models.ReviewPending
	}
	stored := *review
	stored.User = nil
	stored.Product = nil
	r.s.reviews[review.ID] = stored
	return nil
}

func (r *memoryReviewRepo) List(page, limit int) ([]models.Review, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var reviews []models.Review
	for _, review := range r.s.reviews {
		if user, ok := r.s.users[review.UserID]; ok {
			u := user
			review.User = &u
		}
		if product, ok := r.s.products[review.ProductID]; ok {
			p := product
			review.Product = &p
		}
		reviews = append(reviews, review)
	}
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	total := int64(len(reviews))
	return paginate(reviews, page, limit), total, nil
}

type memoryPaymentRepo struct {
	s *memoryStore
}

func (r *memoryPaymentRepo) Create(payment *models.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[payment.UserID]; !ok {
		return ErrInvalidReference
	}
	if _, ok := r.s.orders[payment.OrderID]; !ok {
		return ErrInvalidReference
	}
	stamp(&payment.ID, &payment.CreatedAt, nil)
	if payment.Status == "" {
		payment.Status = models.PaymentStatePending
	}
	if payment.Currency == "" {
		payment.Currency = "XAF"
	}
	stored := *payment
	stored.User = nil
	r.s.payments[payment.ID] = stored
	return nil
}

func (r *memoryPaymentRepo) List(page, limit int) ([]models.Payment, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var payments []models.Payment
	for _, payment := range r.s.payments {
		if user, ok := r.s.users[payment.UserID]; ok {
			u := user
			payment.User = &u
		}
		payments = append(payments, payment)
	}
	sort.Slice(payments, func(i, j int) bool {
		return payments[i].CreatedAt.After(payments[j].CreatedAt)
	})
	total := int64(len(payments))
	return paginate(payments, page, limit), total, nil
}

type memoryRefreshTokenRepo struct {
	s *memoryStore
}

func (r *memoryRefreshTokenRepo) Create(token *models.RefreshToken) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}
	r.s.refreshTokens[token.ID] = *token
	return nil
}

func (r *memoryRefreshTokenRepo) FindByID(jti string) (*models.RefreshToken, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	token, ok := r.s.refreshTokens[jti]
	if !ok {
		return nil, ErrNotFound
	}
	return &token, nil
}

func (r *memoryRefreshTokenRepo) Revoke(jti string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	token, ok := r.s.refreshTokens[jti]
	if !ok {
		return ErrNotFound
	}
	token.Revoked = true
	r.s.refreshTokens[jti] = token
	return nil
}

func (r *memoryRefreshTokenRepo) RevokeAllForUser(userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for jti, token := range r.s.refreshTokens {
		if token.UserID == userID {
			token.Revoked = true
			r.s.refreshTokens[jti] = token
		}
	}
	return nil
}
