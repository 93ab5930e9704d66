package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func corsRouter(allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(CORS(allowedOrigins))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		allowedOrigins []string
		origin         string
		wantAllowed    bool
	}{
		{
			name:           "wildcard allows any origin",
			allowedOrigins: []string{"*"},
			origin:         "https://app.example.com",
			wantAllowed:    true,
		},
		{
			name:           "listed origin allowed",
			allowedOrigins: []string{"https://app.example.com"},
			origin:         "https://app.example.com",
			wantAllowed:    true,
		},
		{
			name:           "unlisted origin gets no headers",
			allowedOrigins: []string{"https://app.example.com"},
			origin:         "https://evil.example.com",
			wantAllowed:    false,
		},
		{
			name:           "empty list gets no headers",
			allowedOrigins: nil,
			origin:         "https://app.example.com",
			wantAllowed:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			router := corsRouter(tt.allowedOrigins)

			// When
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("Origin", tt.origin)
			router.ServeHTTP(w, req)

			// Then
			got := w.Header().Get("Access-Control-Allow-Origin")
			if tt.wantAllowed {
				if got != tt.origin {
					t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.origin)
				}
			} else {
				if got != "" {
					t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
				}
			}
			// The request itself still goes through either way
			if w.Code != http.StatusOK {
				t.Errorf("status = %v, want %v", w.Code, http.StatusOK)
			}
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	// Given
	router := corsRouter([]string{"*"})

	// When
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://app.example.com")
	router.ServeHTTP(w, req)

	// Then
	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %v, want %v", w.Code, http.StatusNoContent)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Error("preflight carries no Access-Control-Allow-Methods header")
	}
}
