package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"deckquest/internal/domain"
	"deckquest/internal/middleware"
	"deckquest/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "handler-test-secret"

// testEnv wires the real router against an in-memory database. The redis
// client points at a closed port: cache reads fail and fall through to the
// database, which is the designed degradation.
type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Character{},
		&domain.Card{},
		&domain.Equipment{},
		&domain.Enemy{},
		&domain.Battle{},
	))

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})

	users := repo.NewUsers(db)
	characters := repo.NewCharacters(db)
	battles := repo.NewBattles(db)
	enemies := repo.NewEnemies(db)

	r := gin.New()
	r.POST("/api/auth/register", RegisterHandler(users))
	r.POST("/api/auth/login", LoginHandler(users, testSecret, false))
	r.POST("/api/auth/email/login", LoginHandler(users, testSecret, false))
	r.POST("/api/auth/logout", LogoutHandler())
	r.GET("/api/enemy/get", GetEnemyHandler(enemies))

	authed := r.Group("/api")
	authed.Use(middleware.AuthMiddleware(testSecret))
	authed.POST("/auth/wallet", WalletConnectHandler(users))
	authed.POST("/auth/wallet/disconnect", WalletDisconnectHandler(users))
	authed.GET("/character/get", GetCharactersHandler(characters, rdb))
	authed.POST("/card/remove", RemoveCardHandler(characters, rdb))
	authed.POST("/character/block", BlockCharacterHandler(users))
	authed.POST("/battle/save", SaveBattleHandler(battles, users))
	authed.GET("/battle/get", GetBattleHandler(battles))
	authed.POST("/contract", ContractHandler(nil, 0)) // Action validation only; no bridge calls in tests

	enemyAdmin := r.Group("/api/enemy")
	enemyAdmin.Use(middleware.AuthMiddleware(testSecret), middleware.AdminOnlyMiddleware(db))
	enemyAdmin.POST("/create", CreateEnemyHandler(enemies))
	enemyAdmin.POST("/seed", SeedEnemyHandler(enemies))

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(testSecret), middleware.AdminOnlyMiddleware(db))
	adminGroup.GET("/users", ListUsersHandler(users, rdb))
	adminGroup.POST("/character/unblock", UnblockHandler(users, rdb))

	return &testEnv{router: r, db: db}
}

// do performs one request against the test router
func (e *testEnv) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates an account through the API and returns the
// session cookie plus the user's id
func (e *testEnv) registerAndLogin(t *testing.T, email, password string) (*http.Cookie, uint) {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/auth/register", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = e.do(t, http.MethodPost, "/api/auth/login", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var cookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			cookie = ck
		}
	}
	require.NotNil(t, cookie, "login must set the session cookie")

	var resp struct {
		User struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return cookie, resp.User.ID
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}
