package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/servilimp/servilimp-app/models"
)

func TestSectorCreateRequiresObjectiveAndName(t *testing.T) {
	db := setupTestDB(t)
	supervisor := seedUser(t, db, "sup1", "pw", "Supervisor", models.RoleSupervisor)
	objective := models.Objective{Name: "Site1"}
	assert.NoError(t, db.Create(&objective).Error)
	r := setupRouterForTest(db)
	token := tokenFor(t, supervisor)

	w := doJSON(t, r, http.MethodPost, "/api/sectors", token, map[string]interface{}{
		"name": "Lobby",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/sectors", token, map[string]interface{}{
		"objective_id": objective.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/sectors", token, map[string]interface{}{
		"objective_id": objective.ID,
		"name":         "Lobby",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestListSectorsByObjective(t *testing.T) {
	db := setupTestDB(t)
	operator := seedUser(t, db, "op1", "pw", "Operator", models.RoleOperator)

	siteOne := models.Objective{Name: "Site1"}
	siteTwo := models.Objective{Name: "Site2"}
	assert.NoError(t, db.Create(&siteOne).Error)
	assert.NoError(t, db.Create(&siteTwo).Error)
	for _, s := range []models.Sector{
		{ObjectiveID: siteOne.ID, Name: "Lobby"},
		{ObjectiveID: siteOne.ID, Name: "Cocina"},
		{ObjectiveID: siteTwo.ID, Name: "Azotea"},
	} {
		sector := s
		assert.NoError(t, db.Create(&sector).Error)
	}

	r := setupRouterForTest(db)
	token := tokenFor(t, operator)

	// Nested listing
	url := fmt.Sprintf("/api/objectives/%d/sectors", siteOne.ID)
	w := doJSON(t, r, http.MethodGet, url, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	rows := listOf(t, w)
	assert.Len(t, rows, 2)
	// Ordered by name
	assert.Equal(t, "Cocina", rows[0].(map[string]interface{})["name"])
	assert.Equal(t, "Lobby", rows[1].(map[string]interface{})["name"])

	// Flat listing with filter
	url = fmt.Sprintf("/api/sectors?objective_id=%d", siteTwo.ID)
	w = doJSON(t, r, http.MethodGet, url, token, nil)
	rows = listOf(t, w)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Azotea", rows[0].(map[string]interface{})["name"])
}

func TestObjectiveListJoinsClientName(t *testing.T) {
	db := setupTestDB(t)
	operator := seedUser(t, db, "op1", "pw", "Operator", models.RoleOperator)

	client := models.Client{Name: "Acme"}
	assert.NoError(t, db.Create(&client).Error)
	assert.NoError(t, db.Create(&models.Objective{Name: "Site1", ClientID: &client.ID}).Error)
	assert.NoError(t, db.Create(&models.Objective{Name: "Independiente"}).Error)

	r := setupRouterForTest(db)
	w := doJSON(t, r, http.MethodGet, "/api/objectives", tokenFor(t, operator), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	byName := map[string]map[string]interface{}{}
	for _, item := range listOf(t, w) {
		row := item.(map[string]interface{})
		byName[row["name"].(string)] = row
	}

	assert.Equal(t, "Acme", byName["Site1"]["client_name"])
	assert.Equal(t, "", byName["Independiente"]["client_name"])
	assert.Nil(t, byName["Independiente"]["client_id"])
}
