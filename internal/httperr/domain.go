package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/barbertime/agenda-api/internal/domain/appointment"
)

// From mapeia os quatro tipos de erro do domínio para HTTP:
// validação 400, conflito 409, transição inválida 422, não encontrado
// 404. Qualquer outra coisa é 500.
func From(c *gin.Context, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		Write(c, http.StatusBadRequest, ve.Code, ve.Message)
		return
	}

	var ce *domain.ConflictError
	if errors.As(err, &ce) {
		Write(c, http.StatusConflict, "time_conflict", "Conflito de horário.")
		return
	}

	var te *domain.InvalidTransitionError
	if errors.As(err, &te) {
		Write(
			c,
			http.StatusUnprocessableEntity,
			"invalid_transition",
			fmt.Sprintf("Transição de status não permitida: %s → %s.", te.From, te.To),
		)
		return
	}

	var ne *domain.NotFoundError
	if errors.As(err, &ne) {
		Write(
			c,
			http.StatusNotFound,
			ne.Entity+"_not_found",
			"Registro não encontrado.",
		)
		return
	}

	Write(c, http.StatusInternalServerError, "internal_error", "Erro interno.")
}
