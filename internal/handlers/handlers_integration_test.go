package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"medbridge/internal/handlers"
	"medbridge/internal/middleware"
	"medbridge/internal/models"
	"medbridge/internal/repositories"
	"medbridge/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// testEnv bundles the app and the pieces individual tests poke at.
type testEnv struct {
	app          *fiber.App
	authService  *services.AuthService
	productRepo  *repositories.MockProductRepository
	supplierRepo *repositories.MockSupplierRepository
	contactRepo  *repositories.MockContactRepository
}

// setupApp wires a Fiber app against in-memory repositories, mirroring
// the wiring in main.
func setupApp() *testEnv {
	userRepo := repositories.NewMockUserRepository()
	productRepo := repositories.NewMockProductRepository()
	supplierRepo := repositories.NewMockSupplierRepository()
	contactRepo := repositories.NewMockContactRepository()

	authService := services.NewAuthService(userRepo, "test_jwt_secret")
	productService := services.NewProductService(productRepo)
	supplierService := services.NewSupplierService(supplierRepo)
	contactService := services.NewContactService(contactRepo, nil) // nil broker client

	app := fiber.New()
	api := app.Group("/api")

	handlers.NewProductHandler(productService).RegisterRoutes(api)
	handlers.NewSupplierHandler(supplierService).RegisterRoutes(api)
	handlers.NewAuthHandler(authService).RegisterRoutes(api)
	handlers.NewContactHandler(contactService).RegisterRoutes(api,
		middleware.AuthRequired(authService),
		middleware.AdminRequired(),
	)

	return &testEnv{
		app:          app,
		authService:  authService,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		contactRepo:  contactRepo,
	}
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// doJSON sends a JSON request and decodes the response body into a map.
func doJSON(t *testing.T, app *fiber.App, method, target string, body any, headers map[string]string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		assert.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func decodeList[T any](t *testing.T, app *fiber.App, target string) (*http.Response, []T) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	var list []T
	if resp.StatusCode == http.StatusOK {
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	}
	return resp, list
}

func TestAuthRegisterAndLogin(t *testing.T) {
	env := setupApp()

	register := map[string]string{
		"firstName": "A",
		"lastName":  "B",
		"email":     "a@b.com",
		"password":  "secret",
	}

	resp, body := doJSON(t, env.app, http.MethodPost, "/api/auth/register", register, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	token, _ := body["token"].(string)
	assert.NotEmpty(t, token)

	// The token embeds the new user's id and the default role.
	claims, err := env.authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, models.RoleUser, claims.Role)

	// Repeating the same registration fails.
	resp, body = doJSON(t, env.app, http.MethodPost, "/api/auth/register", register, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User already exists", body["message"])

	// So does a registration differing only in email case.
	register["email"] = "A@B.com"
	resp, body = doJSON(t, env.app, http.MethodPost, "/api/auth/register", register, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already exists", body["message"])

	// Login with the right credentials issues a fresh token.
	resp, body = doJSON(t, env.app, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "a@b.com", "password": "secret",
	}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])

	// Wrong password and unknown email produce the identical response.
	resp, body = doJSON(t, env.app, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "a@b.com", "password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", body["message"])

	resp, body = doJSON(t, env.app, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "nobody@b.com", "password": "secret",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestAuthRegisterMissingFields(t *testing.T) {
	env := setupApp()

	resp, body := doJSON(t, env.app, http.MethodPost, "/api/auth/register", map[string]string{
		"firstName": "A",
		"email":     "a@b.com",
		"password":  "secret",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "All fields are required", body["message"])
}

func seedCatalog(t *testing.T, env *testEnv) (models.Supplier, []models.Product) {
	t.Helper()
	ctx := context.Background()

	supplier := models.Supplier{
		Name:        "MediSupply Co",
		Type:        "Distributor",
		Description: "Wholesale medical supplies",
		Categories:  []string{"Diagnostics", "Wound Care"},
		Contact:     &models.SupplierContact{Email: "sales@medisupply.test"},
	}
	assert.NoError(t, env.supplierRepo.Create(ctx, &supplier))

	products := []models.Product{
		{
			Name:        "Digital Thermometer",
			Category:    "Diagnostics",
			Description: "Fast-read digital thermometer",
			Price:       12.50,
			SupplierID:  supplier.ID,
			InStock:     true,
			Rating:      4.5,
		},
		{
			Name:        "Sterile Gauze Roll",
			Category:    "Wound Care",
			Description: "Absorbent sterile gauze",
			Price:       3.25,
			SupplierID:  supplier.ID,
			InStock:     true,
		},
		{
			Name:        "Thermal Blanket",
			Category:    "Emergency",
			Description: "Foil emergency blanket",
			Price:       5.00,
			SupplierID:  supplier.ID,
			InStock:     false,
		},
	}
	for i := range products {
		assert.NoError(t, env.productRepo.Create(ctx, &products[i]))
	}
	return supplier, products
}

func TestProductEndpoints(t *testing.T) {
	env := setupApp()
	_, products := seedCatalog(t, env)

	// Unfiltered list returns everything.
	resp, list := decodeList[models.Product](t, env.app, "/api/products")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list, 3)

	// Category filter is an exact match.
	resp, list = decodeList[models.Product](t, env.app, "/api/products?category=Diagnostics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list, 1)
	assert.Equal(t, "Digital Thermometer", list[0].Name)

	// Search is a case-insensitive substring OR over name, description
	// and category; a product matching in two fields appears once.
	resp, list = decodeList[models.Product](t, env.app, "/api/products/search?q=THERM")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list, 2)

	resp, list = decodeList[models.Product](t, env.app, "/api/products/search?q=wound")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list, 1)
	assert.Equal(t, "Sterile Gauze Roll", list[0].Name)

	// Missing query is rejected.
	resp, body := doJSON(t, env.app, http.MethodGet, "/api/products/search", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Search query is required", body["message"])

	// Get by id returns the stored document's fields.
	want := products[0]
	resp, body = doJSON(t, env.app, http.MethodGet, "/api/products/"+want.ID.Hex(), nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, want.ID.Hex(), body["id"])
	assert.Equal(t, want.Name, body["name"])
	assert.Equal(t, want.Category, body["category"])
	assert.Equal(t, want.Price, body["price"])
	assert.Equal(t, want.SupplierID.Hex(), body["supplierId"])
	assert.Equal(t, true, body["inStock"])

	// Unknown and malformed ids are both 404.
	resp, body = doJSON(t, env.app, http.MethodGet, "/api/products/"+primitive.NewObjectID().Hex(), nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Product not found", body["message"])

	resp, body = doJSON(t, env.app, http.MethodGet, "/api/products/not-a-hex-id", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Product not found", body["message"])
}

func TestSupplierEndpoints(t *testing.T) {
	env := setupApp()
	supplier, _ := seedCatalog(t, env)

	resp, list := decodeList[models.Supplier](t, env.app, "/api/suppliers")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list, 1)
	assert.Equal(t, supplier.Name, list[0].Name)
	assert.Equal(t, supplier.Categories, list[0].Categories)

	resp, body := doJSON(t, env.app, http.MethodGet, "/api/suppliers/"+supplier.ID.Hex(), nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, supplier.Name, body["name"])
	assert.Equal(t, supplier.Type, body["type"])

	resp, body = doJSON(t, env.app, http.MethodGet, "/api/suppliers/"+primitive.NewObjectID().Hex(), nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Supplier not found", body["message"])
}

func TestContactSubmission(t *testing.T) {
	env := setupApp()

	submission := map[string]string{
		"name":    "Dana",
		"email":   "dana@example.com",
		"subject": "Bulk order",
		"message": "Do you offer volume pricing?",
	}

	resp, body := doJSON(t, env.app, http.MethodPost, "/api/contact", submission, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Your message has been sent", body["message"])

	contacts, err := env.contactRepo.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, contacts, 1)
	assert.False(t, contacts[0].IsRead)

	// A blank field is rejected and nothing is persisted.
	resp, body = doJSON(t, env.app, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Dana",
		"email":   "dana@example.com",
		"subject": "",
		"message": "Hello",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "All fields are required", body["message"])

	contacts, err = env.contactRepo.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, contacts, 1)
}

func TestContactInboxRequiresAdmin(t *testing.T) {
	env := setupApp()

	// Seed one submission.
	resp, _ := doJSON(t, env.app, http.MethodPost, "/api/contact", map[string]string{
		"name": "Dana", "email": "dana@example.com", "subject": "Hi", "message": "Hello",
	}, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// No token.
	resp, body := doJSON(t, env.app, http.MethodGet, "/api/contact", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "No token, authorization denied", body["message"])

	// Garbage token.
	resp, body = doJSON(t, env.app, http.MethodGet, "/api/contact", nil, map[string]string{
		"x-auth-token": "garbage",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Token is not valid", body["message"])

	// A regular user's token clears the gate but not the admin check.
	userToken, err := env.authService.IssueToken(primitive.NewObjectID().Hex(), models.RoleUser)
	assert.NoError(t, err)
	resp, body = doJSON(t, env.app, http.MethodGet, "/api/contact", nil, map[string]string{
		"x-auth-token": userToken,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Access denied. Admin privileges required.", body["message"])

	// An admin token reads the inbox and marks a submission read.
	adminToken, err := env.authService.IssueToken(primitive.NewObjectID().Hex(), models.RoleAdmin)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	req.Header.Set("x-auth-token", adminToken)
	rawResp, err := env.app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rawResp.StatusCode)

	var inbox []models.Contact
	assert.NoError(t, json.NewDecoder(rawResp.Body).Decode(&inbox))
	assert.Len(t, inbox, 1)
	assert.False(t, inbox[0].IsRead)

	resp, body = doJSON(t, env.app, http.MethodPatch, "/api/contact/"+inbox[0].ID.Hex()+"/read", nil, map[string]string{
		"x-auth-token": adminToken,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	contact, ok := body["contact"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, true, contact["isRead"])

	// Marking an unknown submission is 404.
	resp, body = doJSON(t, env.app, http.MethodPatch, "/api/contact/"+primitive.NewObjectID().Hex()+"/read", nil, map[string]string{
		"x-auth-token": adminToken,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Message not found", body["message"])
}
