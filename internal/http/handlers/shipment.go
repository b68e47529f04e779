package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swiftparcel/swiftparcel-backend/internal/domain/shipment"
	"github.com/swiftparcel/swiftparcel-backend/internal/http/response"
	"github.com/swiftparcel/swiftparcel-backend/internal/services"
)

type ShipmentHandler struct {
	shipmentService services.ShipmentService
}

func NewShipmentHandler(shipmentService services.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{shipmentService: shipmentService}
}

type addressRequest struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	PostalCode string `json:"postal_code"`
	State      string `json:"state"`
	Country    string `json:"country"`
}

func (a addressRequest) toDomain() shipment.Address {
	return shipment.Address{
		Line1:      a.Line1,
		Line2:      a.Line2,
		PostalCode: a.PostalCode,
		State:      a.State,
		Country:    a.Country,
	}
}

func (h *ShipmentHandler) Create(c *gin.Context) {
	var req struct {
		SenderName     string         `json:"sender_name"`
		ReceiverName   string         `json:"receiver_name"`
		ReceiverMobile string         `json:"receiver_mobile"`
		Origin         string         `json:"origin"`
		Destination    string         `json:"destination"`
		Pickup         addressRequest `json:"pickup"`
		Delivery       addressRequest `json:"delivery"`
		WeightKg       float64        `json:"weight_kg"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	shp, err := h.shipmentService.Create(c.Request.Context(), services.CreateShipmentParams{
		SenderName:     req.SenderName,
		ReceiverName:   req.ReceiverName,
		ReceiverMobile: req.ReceiverMobile,
		Origin:         req.Origin,
		Destination:    req.Destination,
		Pickup:         req.Pickup.toDomain(),
		Delivery:       req.Delivery.toDomain(),
		WeightKg:       req.WeightKg,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"shipment": shp})
}

func (h *ShipmentHandler) ListMine(c *gin.Context) {
	shipments, err := h.shipmentService.ListMine(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"shipments": shipments})
}

func (h *ShipmentHandler) Search(c *gin.Context) {
	shipments, err := h.shipmentService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"shipments": shipments})
}

func (h *ShipmentHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	shp, err := h.shipmentService.UpdateStatus(c.Request.Context(), c.Param("code"), shipment.Status(req.Status))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"shipment": shp})
}
