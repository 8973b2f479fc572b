package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gobudget/internal/adapter/http/dto"
	"github.com/iho/gobudget/internal/adapter/http/middleware"
	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (domain.Account, error)
	GetAccount(ctx context.Context, input usecase.GetAccountInput) (domain.Account, error)
	ListAccounts(ctx context.Context, input usecase.ListAccountsInput) ([]domain.Account, error)
	RenameAccount(ctx context.Context, input usecase.RenameAccountInput) (domain.Account, error)
	Deposit(ctx context.Context, input usecase.BalanceChangeInput) (domain.Account, error)
	Withdraw(ctx context.Context, input usecase.BalanceChangeInput) (domain.Account, error)
	DeleteAccount(ctx context.Context, input usecase.DeleteAccountInput) (domain.Account, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accountUC AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// Create creates a new account.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	userID := middleware.UserIDFromContext(r.Context())

	account, err := h.accountUC.CreateAccount(r.Context(), req.ToUseCaseInput(userID))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create account", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account))
}

// Get retrieves an account by ID.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	account, err := h.accountUC.GetAccount(r.Context(), usecase.GetAccountInput{
		UserID:         middleware.UserIDFromContext(r.Context()),
		AccountID:      id,
		IncludeDeleted: parseBoolQuery(r, "include_deleted"),
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get account", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// List lists accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountUC.ListAccounts(r.Context(), usecase.ListAccountsInput{
		UserID:         middleware.UserIDFromContext(r.Context()),
		IncludeDeleted: parseBoolQuery(r, "include_deleted"),
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list accounts", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.AccountsFromDomain(accounts),
		Total:    int64(len(accounts)),
	})
}

// Rename changes an account's name.
func (h *AccountHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.RenameAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	userID := middleware.UserIDFromContext(r.Context())

	account, err := h.accountUC.RenameAccount(r.Context(), req.ToUseCaseInput(userID, id))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to rename account", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// Deposit adds money to an account.
func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.changeBalance(w, r, h.accountUC.Deposit, "failed to deposit")
}

// Withdraw removes money from an account.
func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.changeBalance(w, r, h.accountUC.Withdraw, "failed to withdraw")
}

func (h *AccountHandler) changeBalance(
	w http.ResponseWriter,
	r *http.Request,
	change func(context.Context, usecase.BalanceChangeInput) (domain.Account, error),
	failMsg string,
) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.BalanceChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	userID := middleware.UserIDFromContext(r.Context())

	account, err := change(r.Context(), req.ToUseCaseInput(userID, id))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, failMsg, err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// Delete tombstones an account.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	account, err := h.accountUC.DeleteAccount(r.Context(), usecase.DeleteAccountInput{
		UserID:    middleware.UserIDFromContext(r.Context()),
		AccountID: id,
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete account", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}
