package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/pest-control-api/internal/domain/service"
	"github.com/BruksfildServices01/pest-control-api/internal/dto"
	"github.com/BruksfildServices01/pest-control-api/internal/httperr"
	"github.com/BruksfildServices01/pest-control-api/internal/httpresp"
	ucservice "github.com/BruksfildServices01/pest-control-api/internal/usecase/service"
)

type ServiceHandler struct {
	list   *ucservice.ListServices
	create *ucservice.CreateService
	get    *ucservice.GetService
	update *ucservice.UpdateService
	remove *ucservice.DeleteService
	agenda *ucservice.Agenda
}

func NewServiceHandler(
	list *ucservice.ListServices,
	create *ucservice.CreateService,
	get *ucservice.GetService,
	update *ucservice.UpdateService,
	remove *ucservice.DeleteService,
	agenda *ucservice.Agenda,
) *ServiceHandler {
	return &ServiceHandler{
		list:   list,
		create: create,
		get:    get,
		update: update,
		remove: remove,
		agenda: agenda,
	}
}

// serviceFilter reads ?status=&from=&to=&client_id=.
func serviceFilter(c *gin.Context) (domain.Filter, error) {
	return domain.ParseFilter(
		c.Query("status"),
		c.Query("from"),
		c.Query("to"),
		c.Query("client_id"),
	)
}

// ======================================================
// LIST SERVICES
// ======================================================
func (h *ServiceHandler) List(c *gin.Context) {
	f, err := serviceFilter(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	services, err := h.list.Execute(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, services)
}

// ======================================================
// CREATE SERVICE
// ======================================================
func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.create.Execute(c.Request.Context(), domain.Input{
		ClientID:    req.ClientID,
		Date:        req.Date,
		ServiceType: req.ServiceType,
		Value:       req.Value,
		Status:      req.Status,
		Notes:       req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, svc)
}

// ======================================================
// GET SERVICE
// ======================================================
func (h *ServiceHandler) Get(c *gin.Context) {
	svc, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, svc)
}

// ======================================================
// UPDATE SERVICE
// ======================================================
func (h *ServiceHandler) Update(c *gin.Context) {
	var req dto.UpdateServiceRequest
	if !bindPatch(c, &req) {
		return
	}

	svc, err := h.update.Execute(c.Request.Context(), c.Param("id"), domain.Patch{
		ClientID:    req.ClientID,
		Date:        req.Date,
		ServiceType: req.ServiceType,
		Value:       req.Value,
		Status:      req.Status,
		Notes:       req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, svc)
}

// ======================================================
// DELETE SERVICE
// ======================================================
func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Deleted(c)
}

// ======================================================
// AGENDA
// ======================================================
func (h *ServiceHandler) Agenda(c *gin.Context) {
	days, err := queryInt(c, "days", ucservice.DefaultAgendaDays)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	agenda, err := h.agenda.Execute(c.Request.Context(), days)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, agenda)
}
