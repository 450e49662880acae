package handlers_test

import (
	"encoding/base64"
	"testing"

	"github.com/ILoveTech2001/JALAI-2/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductValidation(t *testing.T) {
	app, repos := newTestApp(t)
	_, token := seedUser(t, repos, "seller@example.com", models.RoleClient)

	resp := doRequest(t, app, fiber.MethodPost, "/api/products", token, fiber.Map{
		"name":       "Phone",
		"price":      -5,
		"categoryId": "whatever",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Validation failed", body["message"])
	assert.Contains(t, errorFields(body), "price")
}

func TestCreateProductUnknownCategory(t *testing.T) {
	app, repos := newTestApp(t)
	_, token := seedUser(t, repos, "seller@example.com", models.RoleClient)

	resp := doRequest(t, app, fiber.MethodPost, "/api/products", token, fiber.Map{
		"name":       "Phone",
		"price":      100,
		"categoryId": "does-not-exist",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Category not found", body["message"])
}

func TestCreateProductStartsPending(t *testing.T) {
	app, repos := newTestApp(t)
	seller, token := seedUser(t, repos, "seller@example.com", models.RoleClient)
	category := seedCategory(t, repos, "Electronics")

	resp := doRequest(t, app, fiber.MethodPost, "/api/products", token, fiber.Map{
		"name":       "Phone",
		"price":      150.5,
		"categoryId": category.ID,
		"condition":  "LIKE_NEW",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	product, ok := dataField(t, body, "product").(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, string(models.StatusPendingApproval), product["status"])
	assert.Equal(t, seller.ID, product["sellerId"])
	assert.Equal(t, "LIKE_NEW", product["condition"])
}

func TestCreateProductRejectsBadImageData(t *testing.T) {
	app, repos := newTestApp(t)
	_, token := seedUser(t, repos, "seller@example.com", models.RoleClient)
	category := seedCategory(t, repos, "Electronics")

	resp := doRequest(t, app, fiber.MethodPost, "/api/products", token, fiber.Map{
		"name":       "Phone",
		"price":      100,
		"categoryId": category.ID,
		"imageData":  "%%% not base64 %%%",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Invalid image data format", body["message"])
}

func TestCreateProductAcceptsDataURL(t *testing.T) {
	app, repos := newTestApp(t)
	_, token := seedUser(t, repos, "seller@example.com", models.RoleClient)
	category := seedCategory(t, repos, "Electronics")

	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	resp := doRequest(t, app, fiber.MethodPost, "/api/products", token, fiber.Map{
		"name":       "Phone",
		"price":      100,
		"categoryId": category.ID,
		"imageData":  "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw),
		"imageType":  "image/png",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	product, ok := dataField(t, body, "product").(map[string]interface{})
	require.True(t, ok)
	id, _ := product["id"].(string)
	assert.Equal(t, "/api/products/"+id+"/image", product["imageUrl"])

	imgResp := doRequest(t, app, fiber.MethodGet, "/api/products/"+id+"/image", "", nil)
	require.Equal(t, fiber.StatusOK, imgResp.StatusCode)
	assert.Equal(t, "image/png", imgResp.Header.Get(fiber.HeaderContentType))
}

func TestPendingProductHiddenFromPublic(t *testing.T) {
	app, repos := newTestApp(t)
	seller, sellerToken := seedUser(t, repos, "seller@example.com", models.RoleClient)
	_, adminToken := seedUser(t, repos, "admin@example.com", models.RoleAdmin)
	_, otherToken := seedUser(t, repos, "other@example.com", models.RoleClient)
	category := seedCategory(t, repos, "Electronics")
	product := seedProduct(t, repos, seller.ID, category.ID, models.StatusPendingApproval)

	resp := doRequest(t, app, fiber.MethodGet, "/api/products/"+product.ID, "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodGet, "/api/products/"+product.ID, otherToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodGet, "/api/products/"+product.ID, sellerToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodGet, "/api/products/"+product.ID, adminToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPublicListingForcesActiveStatus(t *testing.T) {
	app, repos := newTestApp(t)
	seller, _ := seedUser(t, repos, "seller@example.com", models.RoleClient)
	_, adminToken := seedUser(t, repos, "admin@example.com", models.RoleAdmin)
	category := seedCategory(t, repos, "Electronics")
	seedProduct(t, repos, seller.ID, category.ID, models.StatusPendingApproval)
	active := seedProduct(t, repos, seller.ID, category.ID, models.StatusActive)

	resp := doRequest(t, app, fiber.MethodGet, "/api/products?status=PENDING_APPROVAL", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	products, ok := dataField(t, body, "products").([]interface{})
	require.True(t, ok)
	require.Len(t, products, 1)
	first, _ := products[0].(map[string]interface{})
	assert.Equal(t, active.ID, first["id"])

	resp = doRequest(t, app, fiber.MethodGet, "/api/products?status=PENDING_APPROVAL", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	products, ok = dataField(t, body, "products").([]interface{})
	require.True(t, ok)
	assert.Len(t, products, 1)
}

func TestViewCounterIncrements(t *testing.T) {
	app, repos := newTestApp(t)
	seller, _ := seedUser(t, repos, "seller@example.com", models.RoleClient)
	category := seedCategory(t, repos, "Electronics")
	product := seedProduct(t, repos, seller.ID, category.ID, models.StatusActive)

	for i := 1; i <= 3; i++ {
		resp := doRequest(t, app, fiber.MethodGet, "/api/products/"+product.ID, "", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		fetched, ok := dataField(t, body, "product").(map[string]interface{})
		require.True(t, ok)
		assert.EqualValues(t, i, fetched["views"])
	}
}

func TestApproveProduct(t *testing.T) {
	app, repos := newTestApp(t)
	seller, _ := seedUser(t, repos, "seller@example.com", models.RoleClient)
	admin, adminToken := seedUser(t, repos, "admin@example.com", models.RoleAdmin)
	category := seedCategory(t, repos, "Electronics")
	product := seedProduct(t, repos, seller.ID, category.ID, models.StatusPendingApproval)

	resp := doRequest(t, app, fiber.MethodPut, "/api/products/"+product.ID+"/approve", adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	approved, err := repos.Products.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, admin.ID, *approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovedAt)

	notifications, err := repos.Notifications.ListByUser(seller.ID, 0)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotifProductApproved, notifications[0].Type)
	assert.Equal(t, product.ID, notifications[0].ReferenceID)
}

func TestApproveProductForbiddenForClient(t *testing.T) {
	app, repos := newTestApp(t)
	seller, sellerToken := seedUser(t, repos, "seller@example.com", models.RoleClient)
	category := seedCategory(t, repos, "Electronics")
	product := seedProduct(t, repos, seller.ID, category.ID, models.StatusPendingApproval)

	resp := doRequest(t, app, fiber.MethodPut, "/api/products/"+product.ID+"/approve", sellerToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRejectProductRequiresReason(t *testing.T) {
	app, repos := newTestApp(t)
	seller, _ := seedUser(t, repos, "seller@example.com", models.RoleClient)
	_, adminToken := seedUser(t, repos, "admin@example.com", models.RoleAdmin)
	category := seedCategory(t, repos, "Electronics")
	product := seedProduct(t, repos, seller.ID, category.ID, models.StatusPendingApproval)

	resp := doRequest(t, app, fiber.MethodPut, "/api/products/"+product.ID+"/reject", adminToken, fiber.Map{
		"reason": "   ",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Rejection reason is required", body["message"])

	resp = doRequest(t, app, fiber.MethodPut, "/api/products/"+product.ID+"/reject", adminToken, fiber.Map{
		"reason": "Blurry photos",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	rejected, err := repos.Products.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)
	assert.Equal(t, "Blurry photos", rejected.RejectionReason)

	notifications, err := repos.Notifications.ListByUser(seller.ID, 0)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotifProductRejected, notifications[0].Type)
}

func TestMarkSoldOwnerOnly(t *testing.T) {
	app, repos := newTestApp(t)
	seller, sellerToken := seedUser(t, repos, "seller@example.com", models.RoleClient)
	_, otherToken := seedUser(t, repos, "other@example.com", models.RoleClient)
	category := seedCategory(t, repos, "Electronics")
	product := seedProduct(t, repos, seller.ID, category.ID, models.StatusActive)

	resp := doRequest(t, app, fiber.MethodPut, "/api/products/"+product.ID+"/sold", otherToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodPut, "/api/products/"+product.ID+"/sold", sellerToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	sold, err := repos.Products.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSold, sold.Status)
	assert.NotNil(t, sold.SoldAt)
}

func TestDeleteProductOwnerOrAdmin(t *testing.T) {
	app, repos := newTestApp(t)
	seller, _ := seedUser(t, repos, "seller@example.com", models.RoleClient)
	_, otherToken := seedUser(t, repos, "other@example.com", models.RoleClient)
	_, adminToken := seedUser(t, repos, "admin@example.com", models.RoleAdmin)
	category := seedCategory(t, repos, "Electronics")
	product := seedProduct(t, repos, seller.ID, category.ID, models.StatusActive)

	resp := doRequest(t, app, fiber.MethodDelete, "/api/products/"+product.ID, otherToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodDelete, "/api/products/"+product.ID, adminToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, err := repos.Products.FindByID(product.ID)
	assert.Error(t, err)
}
