package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"moonsalon-backend/config"
	"moonsalon-backend/models"
	"moonsalon-backend/utils"
)

const testPassword = "password123"

var (
	hashOnce     sync.Once
	passwordHash string
)

// testHash hashes the shared test password once per run; bcrypt is too slow
// to rehash in every test.
func testHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := utils.HashPassword(testPassword)
		if err != nil {
			panic(err)
		}
		passwordHash = h
	})
	return passwordHash
}

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config

	owner    models.User
	manager  models.User
	employee models.User
}

// setupTest builds the real router on top of a fresh in-memory store and
// seeds one user per role.
func setupTest(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", "#", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, config.Migrate(db))

	cfg := &config.Config{
		DBHost:    "localhost",
		DBUser:    "test",
		DBName:    "moon_salon_test",
		JWTSecret: "test-secret",
		AppEnv:    "test",
	}

	env := &testEnv{
		router: SetupRouter(db, cfg),
		db:     db,
		cfg:    cfg,
	}

	hash := testHash(t)
	env.owner = models.User{Username: "owner1", Email: "owner@moonsalon.test", Password: hash, Role: models.RoleOwner, FullName: "Olive Owner"}
	env.manager = models.User{Username: "manager1", Email: "manager@moonsalon.test", Password: hash, Role: models.RoleManager, FullName: "Mara Manager"}
	env.employee = models.User{Username: "employee1", Email: "employee@moonsalon.test", Password: hash, Role: models.RoleEmployee, FullName: "Eli Employee"}
	require.NoError(t, db.Create(&env.owner).Error)
	require.NoError(t, db.Create(&env.manager).Error)
	require.NoError(t, db.Create(&env.employee).Error)

	return env
}

func (env *testEnv) token(t *testing.T, user models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(&user, env.cfg.JWTSecret)
	require.NoError(t, err)
	return token
}

// do performs a JSON request against the test router.
func (env *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// seedCatalog creates one category and one service and returns their IDs.
func (env *testEnv) seedCatalog(t *testing.T, price float64, duration int) (uint, uint) {
	t.Helper()
	category := models.ServiceCategory{Name: "Haircuts", Description: "All haircut services"}
	require.NoError(t, env.db.Create(&category).Error)

	service := models.Service{
		Name:            "Kids Cut",
		CategoryID:      category.ID,
		Price:           price,
		DurationMinutes: duration,
		Description:     "Standard kids haircut",
	}
	require.NoError(t, env.db.Create(&service).Error)
	return category.ID, service.ID
}
