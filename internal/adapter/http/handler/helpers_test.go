package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/iho/gobudget/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrAccountNotFound, http.StatusNotFound},
		{domain.ErrTransferNotFound, http.StatusNotFound},
		{domain.ErrGroupNotFound, http.StatusNotFound},
		{domain.ErrAccountAlreadyExists, http.StatusConflict},
		{domain.ErrAccountHasTransfers, http.StatusConflict},
		{domain.ErrVersionConflict, http.StatusConflict},
		{domain.ErrSameAccount, http.StatusBadRequest},
		{domain.ErrCurrencyMismatch, http.StatusBadRequest},
		{domain.ErrInvalidCurrency, http.StatusBadRequest},
		{domain.ErrInvalidExchangeRate, http.StatusBadRequest},
		{domain.ErrInvalidName, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", domain.ErrInvalidDescription), http.StatusBadRequest},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := mapDomainError(tt.err); got != tt.want {
			t.Errorf("mapDomainError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
