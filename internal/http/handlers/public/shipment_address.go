package public

import (
	"github.com/uniquemj/ecommerce-api/internal/http/handlers/shared"
	"github.com/uniquemj/ecommerce-api/internal/http/response"
	"github.com/uniquemj/ecommerce-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListShipmentAddresses returns all of the customer's addresses.
func (h *Handler) ListShipmentAddresses(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	addresses, err := h.ShipmentAddressService.List(uid)
	if err != nil {
		respondWithMappedError(c, err, shipmentAddressErrorRules, response.CodeInternal, "Address list failed.")
		return
	}
	response.Success(c, "Shipment addresses fetched successfully.", addresses)
}

// CreateShipmentAddress adds a delivery address.
func (h *Handler) CreateShipmentAddress(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	var req service.ShipmentAddressInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.", err.Error())
		return
	}
	address, err := h.ShipmentAddressService.Create(uid, req)
	if err != nil {
		respondWithMappedError(c, err, shipmentAddressErrorRules, response.CodeInternal, "Address create failed.")
		return
	}
	response.Created(c, "Shipment address created.", address)
}

// UpdateShipmentAddress edits an address.
func (h *Handler) UpdateShipmentAddress(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.ShipmentAddressInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload.", err.Error())
		return
	}
	address, err := h.ShipmentAddressService.Update(id, uid, req)
	if err != nil {
		respondWithMappedError(c, err, shipmentAddressErrorRules, response.CodeInternal, "Address update failed.")
		return
	}
	response.Success(c, "Shipment address updated.", address)
}

// ActivateShipmentAddress makes one address the active delivery target.
func (h *Handler) ActivateShipmentAddress(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	address, err := h.ShipmentAddressService.SetActive(id, uid)
	if err != nil {
		respondWithMappedError(c, err, shipmentAddressErrorRules, response.CodeInternal, "Address update failed.")
		return
	}
	response.Success(c, "Shipment address activated.", address)
}

// DeleteShipmentAddress removes an address.
func (h *Handler) DeleteShipmentAddress(c *gin.Context) {
	uid, ok := shared.GetUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ShipmentAddressService.Delete(id, uid); err != nil {
		respondWithMappedError(c, err, shipmentAddressErrorRules, response.CodeInternal, "Address delete failed.")
		return
	}
	response.Success(c, "Shipment address deleted.", nil)
}
