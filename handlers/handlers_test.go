package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ILoveTech2001/JALAI-2/config"
	"github.com/ILoveTech2001/JALAI-2/internal/ws"
	"github.com/ILoveTech2001/JALAI-2/middleware"
	"github.com/ILoveTech2001/JALAI-2/models"
	"github.com/ILoveTech2001/JALAI-2/repository"
	"github.com/ILoveTech2001/JALAI-2/routes"
	"github.com/ILoveTech2001/JALAI-2/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const testSecret = "handler-test-secret"

// newTestApp builds the full route surface against the in-memory backend.
func newTestApp(t *testing.T) (*fiber.App, *repository.Repositories) {
	t.Helper()

	cfg := &config.Config{
		Env:              "test",
		StorageBackend:   config.StorageMemory,
		JWTSecret:        testSecret,
		JWTAccessExpiry:  time.Hour,
		JWTRefreshExpiry: 24 * time.Hour,
	}
	repos := repository.NewMemoryRepositories()

	hub := ws.NewHub()
	go hub.Run()

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(cfg.Env)})
	routes.NewRouter(cfg, repos, nil, hub).SetupRoutes(app)
	middleware.SetupNotFoundHandler(app)
	return app, repos
}

func seedUser(t *testing.T, repos *repository.Repositories, email string, role models.Role) (*models.User, string) {
	t.Helper()

	hashed, err := utils.HashPassword("password123")
	require.NoError(t, err)
	user := &models.User{
		Email:     email,
		Password:  hashed,
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
		IsActive:  true,
	}
	require.NoError(t, repos.Users.Create(user))

	token, err := utils.GenerateAccessToken(user.ID, string(user.Role), testSecret, time.Hour)
	require.NoError(t, err)
	return user, token
}

func seedCategory(t *testing.T, repos *repository.Repositories, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, IsActive: true}
	require.NoError(t, repos.Categories.Create(category))
	return category
}

func seedProduct(t *testing.T, repos *repository.Repositories, sellerID, categoryID string, status models.ProductStatus) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:       "Test Product",
		Price:      100,
		SellerID:   sellerID,
		CategoryID: categoryID,
		Status:     status,
	}
	require.NoError(t, repos.Products.Create(product))
	return product
}

func seedOrphanage(t *testing.T, repos *repository.Repositories, name string, verified bool) *models.Orphanage {
	t.Helper()
	orphanage := &models.Orphanage{
		Name:         name,
		ContactEmail: "contact@example.com",
		Location:     "Douala",
		Verified:     verified,
	}
	require.NoError(t, repos.Orphanages.Create(orphanage))
	return orphanage
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// dataField digs into the envelope's data object
func dataField(t *testing.T, body map[string]interface{}, key string) interface{} {
	t.Helper()
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %v", body)
	return data[key]
}

// errorFields collects the field names reported in a validation failure
func errorFields(body map[string]interface{}) []string {
	var fields []string
	if errs, ok := body["errors"].([]interface{}); ok {
		for _, e := range errs {
			if detail, ok := e.(map[string]interface{}); ok {
				if field, ok := detail["field"].(string); ok {
					fields = append(fields, field)
				}
			}
		}
	}
	return fields
}
