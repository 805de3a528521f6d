package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/iByteABit256/MRN-Generator/internal/domain"
	"github.com/iByteABit256/MRN-Generator/internal/interfaces/rest"
	"github.com/iByteABit256/MRN-Generator/internal/service"
)

type GenerateRequest struct {
	CountryCode       string `json:"country_code" validate:"required,alpha,len=2" example:"DK"`
	Count             int    `json:"count" validate:"omitempty,gt=0" example:"20"`
	DeclarationOffice string `json:"declaration_office" validate:"omitempty,numeric,len=6" example:"004700"`
	ProcedureCategory string `json:"procedure_category" validate:"omitempty,alphanum,len=2" example:"B1"`
	CombinedCategory  string `json:"combined_category" validate:"omitempty,alpha,len=1" example:"A"`
}

type GenerateResponse struct {
	BatchID string   `json:"batch_id"`
	Count   int      `json:"count"`
	Mrns    []string `json:"mrns"`
}

// HandleGenerate produces a batch of MRNs in generation order. The
// validator tags catch shape errors early; the domain layer re-checks the
// exact character classes before any randomness is consumed.
func (h *MrnHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	var req GenerateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		rest.WriteError(w, &domain.DomainError{
			Code:    domain.ErrCodeInvalidField,
			Message: "request body is not valid JSON",
			Err:     err,
		})
		return
	}

	if err := h.validate.Struct(req); err != nil {
		rest.WriteError(w, &domain.DomainError{
			Code:    domain.ErrCodeInvalidField,
			Message: err.Error(),
		})
		return
	}

	cmd := service.GenerateCommand{
		CountryCode:       req.CountryCode,
		DeclarationOffice: req.DeclarationOffice,
		ProcedureCategory: req.ProcedureCategory,
		CombinedCategory:  req.CombinedCategory,
		Count:             req.Count,
	}

	mrns, err := h.generator.GenerateBatch(r.Context(), cmd)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, GenerateResponse{
		BatchID: uuid.New().String(),
		Count:   len(mrns),
		Mrns:    mrns,
	})
}
