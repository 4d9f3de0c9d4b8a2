package handlers

import (
	"net/http"

	request "gadget_garage/internal/adapter/http/dto/request"
	response "gadget_garage/internal/adapter/http/dto/response"
	"gadget_garage/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	appointmentMissingFieldsMessage = "Please select a date, time, and service type."
	appointmentBookFailedMessage    = "Failed to book your appointment. Please try again or message us directly."
)

type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc}
}

// Options godoc
// @Summary      Bookable dates, time slots and services
// @Tags         appointments
// @Produce      json
// @Success      200  {object}  response.AppointmentOptionsResponse
// @Router       /appointments/options [get]
func (h *AppointmentHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromAppointmentOptions(h.usecase.Options()))
}

// Book godoc
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        X-Client-ID  header  string                      true  "Client install id"
// @Param        request      body    request.AppointmentRequest  true  "Selected slot"
// @Success      201  {object}  response.AppointmentBookingResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /appointments [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	booking, err := h.usecase.Book(c.Request.Context(), clientKey(c), payload.ToForm())
	if err != nil {
		writeError(c, mapSubmissionError(err, appointmentMissingFieldsMessage, appointmentBookFailedMessage))
		return
	}

	c.JSON(http.StatusCreated, response.FromAppointmentBooking(booking))
}
