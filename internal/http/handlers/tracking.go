package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swiftparcel/swiftparcel-backend/internal/http/response"
	pkgerrors "github.com/swiftparcel/swiftparcel-backend/internal/pkg/errors"
	"github.com/swiftparcel/swiftparcel-backend/internal/services"
)

// TrackingHandler serves the public lookup. It exposes only the shipment's
// public face: no owner identity, no receiver contact details.
type TrackingHandler struct {
	shipmentService services.ShipmentService
}

func NewTrackingHandler(shipmentService services.ShipmentService) *TrackingHandler {
	return &TrackingHandler{shipmentService: shipmentService}
}

func (h *TrackingHandler) Track(c *gin.Context) {
	shp, err := h.shipmentService.Track(c.Request.Context(), c.Param("code"))
	if err != nil {
		// a miss is a valid "no result" outcome, distinguishable from failure
		if errors.Is(err, pkgerrors.ErrNotFound) {
			response.RespondErrorMessage(c, http.StatusNotFound, "no_shipment_found", "no shipment found for this tracking code")
			return
		}
		response.FromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"tracking_code": shp.TrackingCode,
		"status":        shp.Status,
		"origin":        shp.Origin,
		"destination":   shp.Destination,
		"created_at":    shp.CreatedAt,
	})
}
