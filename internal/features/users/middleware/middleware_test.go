package users_middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	users_testing "devcollab/internal/features/users/testing"
	test_utils "devcollab/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func Test_SessionMiddleware_WithoutToken_ResolvesAnonymousSession(t *testing.T) {
	router := createMiddlewareTestRouter()

	resp := test_utils.MakeGetRequest(t, router, "/optional", "", http.StatusOK)
	assert.Contains(t, string(resp.Body), `"authenticated":false`)
}

func Test_SessionMiddleware_WithInvalidToken_StaysAnonymous(t *testing.T) {
	router := createMiddlewareTestRouter()

	resp := test_utils.MakeGetRequest(t, router, "/optional", "Bearer not-a-jwt", http.StatusOK)
	assert.Contains(t, string(resp.Body), `"authenticated":false`)
}

func Test_SessionMiddleware_WithValidToken_ResolvesUser(t *testing.T) {
	env := users_testing.NewTestUserEnv()
	router := createMiddlewareTestRouterWithEnv(env)
	user, token := env.CreateTestUser()

	resp := test_utils.MakeGetRequest(t, router, "/optional", token, http.StatusOK)
	assert.Contains(t, string(resp.Body), `"authenticated":true`)
	assert.Contains(t, string(resp.Body), user.ID.String())
}

func Test_RequireSession_WithoutToken_ReturnsUnauthorized(t *testing.T) {
	router := createMiddlewareTestRouter()

	resp := test_utils.MakeGetRequest(t, router, "/required", "", http.StatusUnauthorized)
	assert.Contains(t, string(resp.Body), "User not authenticated")
}

func Test_GetSessionFromContext_WhenNothingSet_ReturnsAnonymous(t *testing.T) {
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	session := GetSessionFromContext(ctx)

	assert.NotNil(t, session)
	assert.False(t, session.IsAuthenticated())
}

func createMiddlewareTestRouter() *gin.Engine {
	return createMiddlewareTestRouterWithEnv(users_testing.NewTestUserEnv())
}

func createMiddlewareTestRouterWithEnv(env *users_testing.TestUserEnv) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionMiddleware(env.Service))

	handler := func(ctx *gin.Context) {
		session := GetSessionFromContext(ctx)
		ctx.JSON(http.StatusOK, gin.H{
			"authenticated": session.IsAuthenticated(),
			"userId":        session.UserID().String(),
		})
	}

	router.GET("/optional", handler)
	router.GET("/required", RequireSession(), handler)

	return router
}
