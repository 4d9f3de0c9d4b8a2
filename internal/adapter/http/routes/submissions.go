package routes

import (
	"gadget_garage/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes       = "/quotes"
	PathAppointments = "/appointments"
	PathChats        = "/chats"
	PathPayments     = "/payments"
)

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("/options", h.Options)
		quotes.POST("", h.Submit)
	}
}

func addAppointmentRoutes(rg *gin.RouterGroup, h *handlers.AppointmentHandler) {
	appointments := rg.Group(PathAppointments)
	{
		appointments.GET("/options", h.Options)
		appointments.POST("", h.Book)
	}
}

// Opening a session can evict the least recently active one, so it is rate limited per IP.
func addChatRoutes(rg *gin.RouterGroup, h *handlers.ChatHandler, startLimit gin.HandlerFunc) {
	chats := rg.Group(PathChats)
	{
		chats.POST("", startLimit, h.Start)
		chats.POST("/:id/messages", h.Send)
		chats.GET("/:id/messages", h.List)
	}
}

// Payments are confirmed locally; nothing reaches a processor.
func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("/methods", h.Methods)
		payments.POST("/confirm", h.Confirm)
	}
}
