package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/servilimp/servilimp-app/models"
)

func TestClientCRUD(t *testing.T) {
	db := setupTestDB(t)
	supervisor := seedUser(t, db, "sup1", "pw", "Supervisor", models.RoleSupervisor)
	operator := seedUser(t, db, "op1", "pw", "Operator", models.RoleOperator)
	r := setupRouterForTest(db)

	// Name is the one required field
	w := doJSON(t, r, http.MethodPost, "/api/clients", tokenFor(t, supervisor), map[string]string{
		"contact": "Juan",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/clients", tokenFor(t, supervisor), map[string]string{
		"name":  "Acme",
		"email": "contacto@acme.example",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	clientID := dataOf(t, w)["id"].(float64)
	assert.NotZero(t, clientID)

	// Operators cannot write clients, only read them
	w = doJSON(t, r, http.MethodPost, "/api/clients", tokenFor(t, operator), map[string]string{"name": "Otra"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/clients", tokenFor(t, operator), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, listOf(t, w), 1)

	// Partial update leaves other fields alone
	w = doJSON(t, r, http.MethodPut, "/api/clients/1", tokenFor(t, supervisor), map[string]string{
		"phone": "555-0101",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Client
	assert.NoError(t, db.First(&stored, 1).Error)
	assert.Equal(t, "Acme", stored.Name)
	assert.Equal(t, "555-0101", stored.Phone)

	// Delete reports success even for an id that never existed
	w = doJSON(t, r, http.MethodDelete, "/api/clients/999", tokenFor(t, supervisor), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/clients/1", tokenFor(t, supervisor), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Client{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestClientsOrderedByName(t *testing.T) {
	db := setupTestDB(t)
	operator := seedUser(t, db, "op1", "pw", "Operator", models.RoleOperator)
	for _, name := range []string{"Zeta", "Acme", "Medio"} {
		assert.NoError(t, db.Create(&models.Client{Name: name}).Error)
	}
	r := setupRouterForTest(db)

	w := doJSON(t, r, http.MethodGet, "/api/clients", tokenFor(t, operator), nil)
	rows := listOf(t, w)
	assert.Len(t, rows, 3)
	assert.Equal(t, "Acme", rows[0].(map[string]interface{})["name"])
	assert.Equal(t, "Medio", rows[1].(map[string]interface{})["name"])
	assert.Equal(t, "Zeta", rows[2].(map[string]interface{})["name"])
}
