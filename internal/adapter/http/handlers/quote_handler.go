package handlers

import (
	"net/http"

	request "gadget_garage/internal/adapter/http/dto/request"
	response "gadget_garage/internal/adapter/http/dto/response"
	"gadget_garage/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	quoteMissingFieldsMessage = "Please fill in all required fields"
	quoteSubmitFailedMessage  = "Failed to submit your quote request. Please try again or message us directly."
)

// QuoteHandler serves the free-quote request screen.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Options godoc
// @Summary      Quote form options
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  response.QuoteOptionsResponse
// @Router       /quotes/options [get]
func (h *QuoteHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromQuoteOptions(h.usecase.Options()))
}

// Submit godoc
// @Summary      Submit a quote request
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        X-Client-ID  header  string                true  "Client install id"
// @Param        request      body    request.QuoteRequest  true  "Quote form"
// @Success      201  {object}  response.QuoteSubmissionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) Submit(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	submission, err := h.usecase.Submit(c.Request.Context(), clientKey(c), payload.ToForm())
	if err != nil {
		writeError(c, mapSubmissionError(err, quoteMissingFieldsMessage, quoteSubmitFailedMessage))
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteSubmission(submission))
}
