package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/servilimp/servilimp-app/models"
	"github.com/servilimp/servilimp-app/utils"
)

func TestLoginAndMe(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "maria", "secret123", "Maria Gomez", models.RoleSupervisor)
	r := setupRouterForTest(db)

	w := doJSON(t, r, http.MethodPost, "/api/login", "", map[string]string{
		"username": "maria",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data := dataOf(t, w)
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "maria", user["username"])
	assert.Equal(t, models.RoleSupervisor, user["role"])

	// Session cookie established
	var sessionCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == utils.SessionCookieName {
			sessionCookie = cookie
		}
	}
	assert.NotNil(t, sessionCookie)
	assert.True(t, sessionCookie.HttpOnly)
	assert.NotEmpty(t, sessionCookie.Value)

	// The cookie authenticates subsequent requests
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(sessionCookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	me := dataOf(t, w)
	assert.Equal(t, "maria", me["username"])
	assert.Equal(t, models.RoleSupervisor, me["role"])
}

func TestLoginFailureIsIndistinguishable(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "maria", "secret123", "Maria Gomez", models.RoleOperator)
	r := setupRouterForTest(db)

	wWrongPassword := doJSON(t, r, http.MethodPost, "/api/login", "", map[string]string{
		"username": "maria",
		"password": "wrong",
	})
	wUnknownUser := doJSON(t, r, http.MethodPost, "/api/login", "", map[string]string{
		"username": "nobody",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusUnauthorized, wWrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, wUnknownUser.Code)

	// Same message for both: wrong password and unknown username must not
	// be distinguishable from outside.
	assert.Equal(t, parseResponse(t, wWrongPassword)["message"], parseResponse(t, wUnknownUser)["message"])

	// No session established on failure
	assert.Empty(t, wWrongPassword.Result().Cookies())
	assert.Empty(t, wUnknownUser.Result().Cookies())
}

func TestLoginMissingFields(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	w := doJSON(t, r, http.MethodPost, "/api/login", "", map[string]string{"username": "maria"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutRevokesSession(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "maria", "secret123", "Maria Gomez", models.RoleOperator)
	r := setupRouterForTest(db)

	body, _ := json.Marshal(map[string]string{"username": "maria", "password": "secret123"})
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var sessionCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == utils.SessionCookieName {
			sessionCookie = cookie
		}
	}
	assert.NotNil(t, sessionCookie)

	req = httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(sessionCookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// The revoked token fails closed on the next request
	req = httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(sessionCookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuardedRouteWithoutSession(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouterForTest(db)

	w := doJSON(t, r, http.MethodGet, "/api/clients", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
