package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "ticket-marketplace/pkg/errors"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"plain", pkgErrors.NewHTTPError(http.StatusConflict, "conflict"), http.StatusConflict},
		{"wrapped", fmt.Errorf("outer: %w", pkgErrors.ErrNotFound), http.StatusNotFound},
		{"formatted", pkgErrors.NewHTTPErrorf(http.StatusBadRequest, "field %s", "x"), http.StatusBadRequest},
		{"other", fmt.Errorf("boom"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pkgErrors.StatusCode(tt.err); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
