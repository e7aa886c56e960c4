package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCatalogToken(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		header string
		want   string
	}{
		{name: "cookie", cookie: "abc", want: "abc"},
		{name: "cookie wins over header", cookie: "abc", header: "Bearer xyz", want: "abc"},
		{name: "header fallback", header: "Bearer xyz", want: "xyz"},
		{name: "missing token passes through", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CatalogToken("jwt_token"))

			var got string
			router.GET("/", func(c *gin.Context) {
				got = GetCatalogTokenFromContext(c)
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "jwt_token", Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusNoContent, w.Code)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSession(t *testing.T) {
	cfg := SessionCookie{Name: "storefront_session", MaxAge: 1800}

	newRouter := func(got *string) *gin.Engine {
		router := gin.New()
		router.Use(Session(cfg))
		router.GET("/", func(c *gin.Context) {
			*got = GetSessionIDFromContext(c)
			c.Status(http.StatusNoContent)
		})
		return router
	}

	t.Run("issues a new id", func(t *testing.T) {
		var got string
		w := httptest.NewRecorder()
		newRouter(&got).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, uuid.Validate(got))
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, got, cookies[0].Value)
		require.True(t, cookies[0].HttpOnly)
	})

	t.Run("keeps an existing id", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: cfg.Name, Value: id})

		var got string
		newRouter(&got).ServeHTTP(httptest.NewRecorder(), req)
		require.Equal(t, id, got)
	})

	t.Run("replaces a malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: cfg.Name, Value: "../../etc"})

		var got string
		newRouter(&got).ServeHTTP(httptest.NewRecorder(), req)
		require.NotEqual(t, "../../etc", got)
		require.NoError(t, uuid.Validate(got))
	})
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestLogger(zap.NewNop()))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, uuid.Validate(w.Header().Get(requestIDHeader)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "req-1")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, "req-1", w.Header().Get(requestIDHeader))
}
