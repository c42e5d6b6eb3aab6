package expenses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tigglepay/backend/internal/domain"
	"github.com/tigglepay/backend/internal/dto"
	expenseservice "github.com/tigglepay/backend/internal/service/expenseservice"
	"github.com/tigglepay/backend/pkg/auth"
	"github.com/tigglepay/backend/pkg/split"
	"github.com/tigglepay/backend/pkg/utils"
)

type Service interface {
	CreateExpense(ctx context.Context, creatorID int, total int64, participantIDs []int, policy split.RemainderPolicy, roundUp bool) (*domain.DutchExpense, []domain.ExpenseShare, error)
	PayShare(ctx context.Context, expenseID, payerID int, roundUp bool) (*domain.ExpenseShare, error)
	GetExpense(ctx context.Context, expenseID, userID int) (*domain.DutchExpense, []domain.ExpenseShare, error)
}

type ExpenseHandler struct {
	expenseService Service
}

func New(expenseService Service) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
	}
}

// CreateExpense godoc
//
//	@Summary		Create a dutch-pay expense
//	@Description	Split a group expense evenly between the creator and the listed participants.
//	@Tags			Expenses
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateExpenseRequestDTO	true	"Expense request payload"
//	@Success		200		{object}	dto.ExpenseResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid split parameters"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/expenses [post]
func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateExpenseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	policy := split.CreatorAbsorbs
	if req.RemainderPolicy == "DISTRIBUTE" {
		policy = split.DistributeInOrder
	}

	expense, shares, err := h.expenseService.CreateExpense(r.Context(), userID, req.TotalAmount, req.ParticipantIDs, policy, req.RoundUp)
	if err != nil {
		switch {
		case errors.Is(err, split.ErrNonPositiveTotal),
			errors.Is(err, split.ErrNoParticipants),
			errors.Is(err, expenseservice.ErrDuplicateCreator),
			errors.Is(err, expenseservice.ErrParticipantNotFound):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toExpenseDTO(expense, shares))
}

// PayShare godoc
//
//	@Summary		Pay own share of an expense
//	@Description	Settle the authenticated user's share, optionally rounding up to the next 100 into the piggy bank.
//	@Tags			Expenses
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Expense ID"
//	@Param			request	body		dto.PayShareRequestDTO	true	"Payment options"
//	@Success		200		{object}	dto.PayShareResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Expense or share not found"
//	@Failure		502		{object}	utils.Response	"Bank transfer failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/expenses/{id}/pay [post]
func (h *ExpenseHandler) PayShare(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	expenseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid expense id")
		return
	}

	var req dto.PayShareRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	share, err := h.expenseService.PayShare(r.Context(), expenseID, userID, req.RoundUp)
	if err != nil {
		switch {
		case errors.Is(err, expenseservice.ErrExpenseNotFound),
			errors.Is(err, expenseservice.ErrShareNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, expenseservice.ErrTransferFailed):
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PayShareResponseDTO{
		Status:       share.Status,
		PaidAmount:   share.PaidAmount,
		TiggleAmount: share.TiggleAmount,
	})
}

// GetExpense godoc
//
//	@Summary		Get an expense with its shares
//	@Description	Retrieve the expense and per-participant share states; members only.
//	@Tags			Expenses
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Expense ID"
//	@Success		200	{object}	dto.ExpenseResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Expense not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	expenseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid expense id")
		return
	}

	expense, shares, err := h.expenseService.GetExpense(r.Context(), expenseID, userID)
	if err != nil {
		switch {
		case errors.Is(err, expenseservice.ErrExpenseNotFound),
			errors.Is(err, expenseservice.ErrShareNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toExpenseDTO(expense, shares))
}

func toExpenseDTO(expense *domain.DutchExpense, shares []domain.ExpenseShare) dto.ExpenseResponseDTO {
	resp := dto.ExpenseResponseDTO{
		ID:          expense.ID,
		CreatorID:   expense.CreatorID,
		TotalAmount: expense.TotalAmount,
		Status:      expense.Status,
	}
	for _, share := range shares {
		resp.Shares = append(resp.Shares, dto.ExpenseShareDTO{
			UserID:       share.UserID,
			Amount:       share.Amount,
			Status:       share.Status,
			TiggleAmount: share.TiggleAmount,
			PaidAmount:   share.PaidAmount,
		})
	}
	return resp
}
