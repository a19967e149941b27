package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/servilimp/servilimp-app/models"
	"github.com/servilimp/servilimp-app/router"
	"github.com/servilimp/servilimp-app/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	os.Exit(m.Run())
}

// setupTestDB opens an in-memory SQLite database pinned to a single
// connection so every query sees the same schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Objective{},
		&models.Sector{},
		&models.Supply{},
		&models.CleaningRecord{},
		&models.Observation{},
		&models.SupplyUsage{},
		&models.Message{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// seedUser creates a user with a bcrypt-hashed password and returns it.
func seedUser(t *testing.T, db *gorm.DB, username, password, name, role string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{
		Username: username,
		Password: string(hashed),
		Name:     name,
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}
	return user
}

// tokenFor issues a session token for a seeded user, bypassing the login
// endpoint so individual tests stay focused.
func tokenFor(t *testing.T, user models.User) string {
	t.Helper()

	token, err := utils.GenerateSessionToken(user.ID, user.Role, user.Name)
	if err != nil {
		t.Fatalf("failed to generate session token: %v", err)
	}
	return token
}

func setupRouterForTest(db *gorm.DB) *gin.Engine {
	return router.SetupRouter(db)
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, r *gin.Engine, method, url, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response %q: %v", w.Body.String(), err)
	}
	return resp
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	resp := parseResponse(t, w)
	data, ok := resp["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no data object: %q", w.Body.String())
	}
	return data
}

func listOf(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()

	resp := parseResponse(t, w)
	list, ok := resp["data"].([]interface{})
	if !ok {
		t.Fatalf("response has no data list: %q", w.Body.String())
	}
	return list
}
