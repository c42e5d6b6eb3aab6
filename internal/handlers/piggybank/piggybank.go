package piggybank

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tigglepay/backend/internal/domain"
	"github.com/tigglepay/backend/internal/dto"
	piggybankservice "github.com/tigglepay/backend/internal/service/piggybankservice"
	"github.com/tigglepay/backend/pkg/auth"
	"github.com/tigglepay/backend/pkg/utils"
)

type Service interface {
	Get(ctx context.Context, userID int) (*domain.PiggyBank, error)
	UpdateSettings(ctx context.Context, userID int, settings piggybankservice.Settings) (*domain.PiggyBank, error)
}

type PiggyBankHandler struct {
	piggyBankService Service
}

func New(piggyBankService Service) *PiggyBankHandler {
	return &PiggyBankHandler{
		piggyBankService: piggyBankService,
	}
}

// GetPiggyBank godoc
//
//	@Summary		Get the user's piggy bank
//	@Description	Retrieve the piggy bank ledger state and saving/donation settings.
//	@Tags			PiggyBank
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PiggyBankResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Piggy bank not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/piggybank [get]
func (h *PiggyBankHandler) GetPiggyBank(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	pb, err := h.piggyBankService.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, piggybankservice.ErrPiggyBankNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(pb))
}

// UpdateSettings godoc
//
//	@Summary		Update piggy bank settings
//	@Description	Change target amount, auto-saving / auto-donation toggles or the donation theme.
//	@Tags			PiggyBank
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdatePiggyBankRequestDTO	true	"Settings payload"
//	@Success		200		{object}	dto.PiggyBankResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid settings"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/piggybank [patch]
func (h *PiggyBankHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.UpdatePiggyBankRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings := piggybankservice.Settings{
		TargetAmount: req.TargetAmount,
		AutoSaving:   req.AutoSaving,
		AutoDonation: req.AutoDonation,
	}
	if req.Theme != nil {
		theme := domain.Theme(*req.Theme)
		settings.Theme = &theme
	}

	pb, err := h.piggyBankService.UpdateSettings(r.Context(), userID, settings)
	if err != nil {
		switch {
		case errors.Is(err, piggybankservice.ErrPiggyBankNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, piggybankservice.ErrInvalidTheme),
			errors.Is(err, piggybankservice.ErrInvalidTarget):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(pb))
}

func toDTO(pb *domain.PiggyBank) dto.PiggyBankResponseDTO {
	return dto.PiggyBankResponseDTO{
		AccountNumber:       pb.AccountNumber,
		CurrentAmount:       pb.CurrentAmount,
		TargetAmount:        pb.TargetAmount,
		AutoSaving:          pb.AutoSaving,
		AutoDonation:        pb.AutoDonation,
		Theme:               string(pb.Theme),
		SavingCount:         pb.SavingCount,
		DonationCount:       pb.DonationCount,
		DonationTotalAmount: pb.DonationTotalAmount,
	}
}
