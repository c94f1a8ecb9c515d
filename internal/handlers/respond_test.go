package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"hrms-lite/internal/models"
)

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: fmt.Errorf("employee E001: %w", models.ErrNotFound), want: http.StatusNotFound},
		{name: "conflict", err: fmt.Errorf("employee E001: %w", models.ErrConflict), want: http.StatusConflict},
		{name: "validation", err: fmt.Errorf("%w: bad email", models.ErrValidation), want: http.StatusBadRequest},
		{name: "store unavailable", err: fmt.Errorf("%w: find employee: timeout", models.ErrStoreUnavailable), want: http.StatusServiceUnavailable},
		{name: "unclassified", err: fmt.Errorf("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			writeError(c, tt.err)
			if w.Code != tt.want {
				t.Errorf("writeError(%v) status = %d, want %d", tt.err, w.Code, tt.want)
			}
		})
	}
}
