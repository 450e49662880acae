package handlers_test

import (
	"testing"

	"github.com/ILoveTech2001/JALAI-2/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	app, repos := newTestApp(t)
	user, token := seedUser(t, repos, "profile@example.com", models.RoleClient)

	resp := doRequest(t, app, fiber.MethodPut, "/api/users/profile", token, fiber.Map{
		"firstName": "Updated",
		"phone":     "123456789",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	stored, err := repos.Users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated", stored.FirstName)
	assert.Equal(t, "123456789", stored.Phone)
	assert.Equal(t, "profile@example.com", stored.Email)
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	app, repos := newTestApp(t)
	seedUser(t, repos, "taken@example.com", models.RoleClient)
	_, token := seedUser(t, repos, "mine@example.com", models.RoleClient)

	resp := doRequest(t, app, fiber.MethodPut, "/api/users/profile", token, fiber.Map{
		"email": "taken@example.com",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Email already in use", body["message"])
}

func TestChangePassword(t *testing.T) {
	app, repos := newTestApp(t)
	user, userToken := seedUser(t, repos, "pw@example.com", models.RoleClient)

	resp := doRequest(t, app, fiber.MethodPut, "/api/users/change-password", userToken, fiber.Map{
		"currentPassword": "wrong-password",
		"newPassword":     "brand-new-pass",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodPut, "/api/users/change-password", userToken, fiber.Map{
		"currentPassword": "password123",
		"newPassword":     "brand-new-pass",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    user.Email,
		"password": "brand-new-pass",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPublicUserProductsOnlyActive(t *testing.T) {
	app, repos := newTestApp(t)
	seller, _ := seedUser(t, repos, "seller@example.com", models.RoleClient)
	category := seedCategory(t, repos, "Electronics")
	seedProduct(t, repos, seller.ID, category.ID, models.StatusPendingApproval)
	active := seedProduct(t, repos, seller.ID, category.ID, models.StatusActive)

	resp := doRequest(t, app, fiber.MethodGet, "/api/users/"+seller.ID+"/products", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	products, ok := dataField(t, body, "products").([]interface{})
	require.True(t, ok)
	require.Len(t, products, 1)
	first, _ := products[0].(map[string]interface{})
	assert.Equal(t, active.ID, first["id"])

	// Public payload exposes only the seller's display fields.
	profile, ok := dataField(t, body, "user").(map[string]interface{})
	require.True(t, ok)
	_, hasEmail := profile["email"]
	assert.False(t, hasEmail)
}

func TestMyProductsIncludesEveryStatus(t *testing.T) {
	app, repos := newTestApp(t)
	seller, token := seedUser(t, repos, "seller@example.com", models.RoleClient)
	category := seedCategory(t, repos, "Electronics")
	seedProduct(t, repos, seller.ID, category.ID, models.StatusPendingApproval)
	seedProduct(t, repos, seller.ID, category.ID, models.StatusActive)
	seedProduct(t, repos, seller.ID, category.ID, models.StatusRejected)

	resp := doRequest(t, app, fiber.MethodGet, "/api/users/my-products", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	products, ok := dataField(t, body, "products").([]interface{})
	require.True(t, ok)
	assert.Len(t, products, 3)
}
