package routes

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moonsalon-backend/models"
)

func TestCreateUserWithSpecialties(t *testing.T) {
	env := setupTest(t)
	categoryID, _ := env.seedCatalog(t, 20.00, 30)

	w := env.do(t, http.MethodPost, "/api/users", env.token(t, env.owner), map[string]interface{}{
		"username":    "newbie",
		"email":       "newbie@moonsalon.test",
		"password":    "changeme1",
		"role":        "employee",
		"full_name":   "Nina New",
		"phone":       "+15550001111",
		"specialties": []uint{categoryID},
	})
	require.Equal(t, http.StatusOK, w.Code)
	userID := decode(t, w)["userId"].(float64)
	assert.NotZero(t, userID)

	var user models.User
	require.NoError(t, env.db.Preload("Specialties").First(&user, uint(userID)).Error)
	assert.Equal(t, models.RoleEmployee, user.Role)
	require.Len(t, user.Specialties, 1)
	assert.Equal(t, "Haircuts", user.Specialties[0].Name)

	// password was hashed, and the new user can log in
	assert.NotEqual(t, "changeme1", user.Password)
	w = env.do(t, http.MethodPost, "/auth/login", "", map[string]string{"username": "newbie", "password": "changeme1"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateUserValidation(t *testing.T) {
	env := setupTest(t)
	token := env.token(t, env.owner)

	w := env.do(t, http.MethodPost, "/api/users", token, map[string]interface{}{
		"username": "x", "email": "not-an-email", "password": "changeme1", "role": "employee", "full_name": "X",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/users", token, map[string]interface{}{
		"username": "x", "email": "x@moonsalon.test", "password": "changeme1", "role": "superadmin", "full_name": "X",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Unknown role", decode(t, w)["error"])
}

func TestCreateUserOwnerOnly(t *testing.T) {
	env := setupTest(t)

	w := env.do(t, http.MethodPost, "/api/users", env.token(t, env.manager), map[string]interface{}{
		"username": "x", "email": "x@moonsalon.test", "password": "changeme1", "role": "employee", "full_name": "X",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListUsers(t *testing.T) {
	env := setupTest(t)
	categoryID, _ := env.seedCatalog(t, 20.00, 30)
	require.NoError(t, env.db.Model(&env.employee).Association("Specialties").Append(&models.ServiceCategory{ID: categoryID}))

	// owner and manager may list; the owner row itself is not included
	for _, user := range []models.User{env.owner, env.manager} {
		w := env.do(t, http.MethodGet, "/api/users", env.token(t, user), nil)
		require.Equal(t, http.StatusOK, w.Code)
		rows := decodeList(t, w)
		require.Len(t, rows, 2, "role %s", user.Role)
		for _, row := range rows {
			assert.NotEqual(t, "owner", row["role"])
			assert.NotContains(t, row, "password")
		}
	}

	w := env.do(t, http.MethodGet, "/api/users", env.token(t, env.employee), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteUser(t *testing.T) {
	env := setupTest(t)

	w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/users/%d", env.employee.ID), env.token(t, env.owner), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Where("id = ?", env.employee.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteOwnerNeverRemovesRow(t *testing.T) {
	env := setupTest(t)

	w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/users/%d", env.owner.ID), env.token(t, env.owner), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Where("id = ?", env.owner.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count, "owner row must survive")
}

func TestDeleteUserOwnerOnly(t *testing.T) {
	env := setupTest(t)

	w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/users/%d", env.employee.ID), env.token(t, env.manager), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
