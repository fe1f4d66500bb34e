package api

import (
	"net/http"
	"testing"

	"deckquest/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidation(t *testing.T) {
	env := setupEnv(t)

	t.Run("missing fields", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/register", gin.H{"email": "a@b.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad email", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/register", gin.H{"email": "not-an-email", "password": "password1"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("short password", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/register", gin.H{"email": "a@b.com", "password": "short"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/register", gin.H{"email": "a@b.com", "password": "password1"})
		require.Equal(t, http.StatusCreated, w.Code)
		w = env.do(t, http.MethodPost, "/api/auth/register", gin.H{"email": "a@b.com", "password": "password1"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestLoginFlow(t *testing.T) {
	env := setupEnv(t)
	w := env.do(t, http.MethodPost, "/api/auth/register", gin.H{"email": "a@b.com", "password": "pw123456"})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("correct credentials set the session cookie", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/login", gin.H{"email": "a@b.com", "password": "pw123456"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			User struct {
				ID    uint   `json:"id"`
				Email string `json:"email"`
			} `json:"user"`
		}
		decodeBody(t, w, &resp)
		assert.Equal(t, "a@b.com", resp.User.Email)
		assert.NotZero(t, resp.User.ID)

		var cookie *http.Cookie
		for _, ck := range w.Result().Cookies() {
			if ck.Name == middleware.SessionCookie {
				cookie = ck
			}
		}
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, "/", cookie.Path)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		assert.Equal(t, 7*24*3600, cookie.MaxAge)
	})

	t.Run("duplicate login route behaves identically", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/email/login", gin.H{"email": "a@b.com", "password": "pw123456"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/login", gin.H{"email": "a@b.com", "password": "wrongpass"})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		var resp map[string]string
		decodeBody(t, w, &resp)
		assert.Equal(t, "Invalid credentials", resp["error"])
	})

	t.Run("unknown email is also 401", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/login", gin.H{"email": "nobody@b.com", "password": "pw123456"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields are 400", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/login", gin.H{"email": "a@b.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginSessionVerifiesToSameUser(t *testing.T) {
	env := setupEnv(t)
	cookie, userID := env.registerAndLogin(t, "a@b.com", "pw123456")

	// A protected route resolves the cookie back to the same user: the
	// character list is empty but scoped to that id without error
	w := env.do(t, http.MethodGet, "/api/character/get", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotZero(t, userID)
}

func TestLogoutClearsCookie(t *testing.T) {
	env := setupEnv(t)
	w := env.do(t, http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cleared *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			cleared = ck
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

func TestWalletConnectFlow(t *testing.T) {
	env := setupEnv(t)
	cookieA, _ := env.registerAndLogin(t, "a@b.com", "pw123456")
	cookieB, _ := env.registerAndLogin(t, "b@b.com", "pw123456")

	t.Run("unauthenticated is 401", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/wallet", gin.H{"address": "0xabc", "type": "metamask"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields are 400", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/wallet", gin.H{"address": "0xabc"}, cookieA)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("first bind succeeds, second user conflicts", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/wallet", gin.H{"address": "0xabc", "type": "metamask"}, cookieA)
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodPost, "/api/auth/wallet", gin.H{"address": "0xabc", "type": "metamask"}, cookieB)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("disconnect clears the wallet", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/wallet/disconnect", nil, cookieA)
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Success bool `json:"success"`
			User    struct {
				WalletAddress *string `json:"wallet_address"`
			} `json:"user"`
		}
		decodeBody(t, w, &resp)
		assert.True(t, resp.Success)
		assert.Nil(t, resp.User.WalletAddress)
	})
}
