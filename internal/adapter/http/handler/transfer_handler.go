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

// TransferService defines the behavior needed by TransferHandler.
type TransferService interface {
	CreateTransfer(ctx context.Context, input usecase.CreateTransferInput) (domain.Transfer, error)
	GetTransfer(ctx context.Context, userID, transferID string) (domain.Transfer, error)
	ListTransfers(ctx context.Context, input usecase.ListTransfersInput) ([]domain.Transfer, error)
}

// Retrier re-runs an operation when it fails on a transient error.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// TransferHandler handles transfer-related HTTP requests.
type TransferHandler struct {
	transferUC TransferService
	retrier    Retrier
}

// NewTransferHandler creates a new TransferHandler. The retrier is optional.
func NewTransferHandler(transferUC TransferService, retrier Retrier) *TransferHandler {
	return &TransferHandler{transferUC: transferUC, retrier: retrier}
}

// Create creates a new transfer. Transient database failures such as
// deadlocks are retried; version conflicts are returned to the caller.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	input := req.ToUseCaseInput(userID)

	var transfer domain.Transfer
	create := func() error {
		var err error
		transfer, err = h.transferUC.CreateTransfer(r.Context(), input)
		return err
	}

	var err error
	if h.retrier != nil {
		err = h.retrier.Retry(r.Context(), create)
	} else {
		err = create()
	}

	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create transfer", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.TransferFromDomain(transfer))
}

// Get retrieves a transfer by ID.
func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transfer ID", "")
		return
	}

	userID := middleware.UserIDFromContext(r.Context())

	transfer, err := h.transferUC.GetTransfer(r.Context(), userID, id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get transfer", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.TransferFromDomain(transfer))
}

// List lists transfers.
func (h *TransferHandler) List(w http.ResponseWriter, r *http.Request) {
	transfers, err := h.transferUC.ListTransfers(r.Context(), usecase.ListTransfersInput{
		UserID: middleware.UserIDFromContext(r.Context()),
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list transfers", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ListTransfersResponse{
		Transfers: dto.TransfersFromDomain(transfers),
		Total:     int64(len(transfers)),
	})
}
