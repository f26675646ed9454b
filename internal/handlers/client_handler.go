package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/pest-control-api/internal/domain/client"
	"github.com/BruksfildServices01/pest-control-api/internal/dto"
	"github.com/BruksfildServices01/pest-control-api/internal/httperr"
	"github.com/BruksfildServices01/pest-control-api/internal/httpresp"
	ucclient "github.com/BruksfildServices01/pest-control-api/internal/usecase/client"
)

type ClientHandler struct {
	list   *ucclient.ListClients
	create *ucclient.CreateClient
	get    *ucclient.GetClient
	update *ucclient.UpdateClient
	remove *ucclient.DeleteClient
}

func NewClientHandler(
	list *ucclient.ListClients,
	create *ucclient.CreateClient,
	get *ucclient.GetClient,
	update *ucclient.UpdateClient,
	remove *ucclient.DeleteClient,
) *ClientHandler {
	return &ClientHandler{
		list:   list,
		create: create,
		get:    get,
		update: update,
		remove: remove,
	}
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.list.Execute(c.Request.Context(), c.Query("q"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// CREATE CLIENT
// ======================================================
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.create.Execute(c.Request.Context(), domain.Fields{
		Name:         req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		Neighborhood: req.Neighborhood,
		Email:        req.Email,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// GET CLIENT
// ======================================================
func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// UPDATE CLIENT
// ======================================================
func (h *ClientHandler) Update(c *gin.Context) {
	var req dto.UpdateClientRequest
	if !bindPatch(c, &req) {
		return
	}

	client, err := h.update.Execute(c.Request.Context(), c.Param("id"), domain.Patch{
		Name:         req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		Neighborhood: req.Neighborhood,
		Email:        req.Email,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// DELETE CLIENT
// ======================================================
func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Deleted(c)
}
