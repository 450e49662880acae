package handlers_test

import (
	"testing"

	"github.com/ILoveTech2001/JALAI-2/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	app, repos := newTestApp(t)
	_, adminToken := seedUser(t, repos, "admin@example.com", models.RoleAdmin)
	seller, _ := seedUser(t, repos, "client1@example.com", models.RoleClient)
	seedUser(t, repos, "client2@example.com", models.RoleClient)
	category := seedCategory(t, repos, "Electronics")
	seedProduct(t, repos, seller.ID, category.ID, models.StatusPendingApproval)
	seedProduct(t, repos, seller.ID, category.ID, models.StatusActive)
	seedProduct(t, repos, seller.ID, category.ID, models.StatusActive)
	seedProduct(t, repos, seller.ID, category.ID, models.StatusSold)
	seedOrphanage(t, repos, "Hope Home", true)

	resp := doRequest(t, app, fiber.MethodGet, "/api/admin/dashboard/stats", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.EqualValues(t, 2, dataField(t, body, "clients"))
	assert.EqualValues(t, 4, dataField(t, body, "products"))
	assert.EqualValues(t, 1, dataField(t, body, "pendingProducts"))
	assert.EqualValues(t, 2, dataField(t, body, "activeProducts"))
	assert.EqualValues(t, 1, dataField(t, body, "soldProducts"))
	assert.EqualValues(t, 1, dataField(t, body, "orphanages"))
}

func TestAdminListingsArePaginated(t *testing.T) {
	app, repos := newTestApp(t)
	_, adminToken := seedUser(t, repos, "admin@example.com", models.RoleAdmin)
	for i := 0; i < 5; i++ {
		seedUser(t, repos, string(rune('a'+i))+"@example.com", models.RoleClient)
	}

	resp := doRequest(t, app, fiber.MethodGet, "/api/admin/clients?page=1&limit=2", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	clients, ok := dataField(t, body, "clients").([]interface{})
	require.True(t, ok)
	assert.Len(t, clients, 2)

	pagination, ok := dataField(t, body, "pagination").(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 5, pagination["total"])
	assert.EqualValues(t, 3, pagination["pages"])
	assert.EqualValues(t, 1, pagination["page"])
}

func TestAdminProductListIncludesAllStatuses(t *testing.T) {
	app, repos := newTestApp(t)
	_, adminToken := seedUser(t, repos, "admin@example.com", models.RoleAdmin)
	seller, _ := seedUser(t, repos, "seller@example.com", models.RoleClient)
	category := seedCategory(t, repos, "Electronics")
	seedProduct(t, repos, seller.ID, category.ID, models.StatusPendingApproval)
	seedProduct(t, repos, seller.ID, category.ID, models.StatusRejected)

	resp := doRequest(t, app, fiber.MethodGet, "/api/admin/products", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	products, ok := dataField(t, body, "products").([]interface{})
	require.True(t, ok)
	assert.Len(t, products, 2)

	resp = doRequest(t, app, fiber.MethodGet, "/api/admin/products?status=REJECTED", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	products, ok = dataField(t, body, "products").([]interface{})
	require.True(t, ok)
	assert.Len(t, products, 1)
}

func TestAdminReviewListing(t *testing.T) {
	app, repos := newTestApp(t)
	_, adminToken := seedUser(t, repos, "admin@example.com", models.RoleAdmin)
	buyer, _ := seedUser(t, repos, "buyer@example.com", models.RoleClient)
	category := seedCategory(t, repos, "Electronics")
	product := seedProduct(t, repos, buyer.ID, category.ID, models.StatusActive)

	review := &models.Review{
		UserID:    buyer.ID,
		ProductID: product.ID,
		Rating:    5,
		Title:     "Great phone",
		Comment:   "Arrived quickly and works perfectly.",
		Status:    models.ReviewApproved,
	}
	require.NoError(t, repos.Reviews.Create(review))

	resp := doRequest(t, app, fiber.MethodGet, "/api/admin/reviews", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	reviews, ok := dataField(t, body, "reviews").([]interface{})
	require.True(t, ok)
	require.Len(t, reviews, 1)
	entry, ok := reviews[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Great phone", entry["title"])
	assert.EqualValues(t, 5, entry["rating"])
	user, ok := entry["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, buyer.ID, user["id"])
}

func TestAdminPaymentListing(t *testing.T) {
	app, repos := newTestApp(t)
	_, adminToken := seedUser(t, repos, "admin@example.com", models.RoleAdmin)
	buyer, _ := seedUser(t, repos, "buyer@example.com", models.RoleClient)

	order := &models.Order{BuyerID: buyer.ID, Total: 250}
	require.NoError(t, repos.Orders.Create(order))
	payment := &models.Payment{
		OrderID:       order.ID,
		UserID:        buyer.ID,
		Amount:        250,
		Method:        "MOBILE_MONEY",
		Provider:      "MTN_MOMO",
		Status:        models.PaymentStateCompleted,
		TransactionID: "mtn-001",
		Reference:     "REF-100",
	}
	require.NoError(t, repos.Payments.Create(payment))

	resp := doRequest(t, app, fiber.MethodGet, "/api/admin/payments", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	payments, ok := dataField(t, body, "payments").([]interface{})
	require.True(t, ok)
	require.Len(t, payments, 1)
	entry, ok := payments[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "REF-100", entry["reference"])
	assert.Equal(t, "COMPLETED", entry["status"])
	assert.Equal(t, "XAF", entry["currency"])
	assert.EqualValues(t, 250, entry["amount"])
}

func TestAdminSurfaceRequiresAdminRole(t *testing.T) {
	app, repos := newTestApp(t)
	_, clientToken := seedUser(t, repos, "client@example.com", models.RoleClient)

	paths := []string{
		"/api/admin/dashboard/stats",
		"/api/admin/clients",
		"/api/admin/products",
		"/api/admin/orders",
		"/api/admin/donations",
		"/api/admin/orphanages",
		"/api/admin/reviews",
		"/api/admin/payments",
		"/api/admin/categories",
	}
	for _, path := range paths {
		resp := doRequest(t, app, fiber.MethodGet, path, clientToken, nil)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, path)

		resp = doRequest(t, app, fiber.MethodGet, path, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
	}
}
