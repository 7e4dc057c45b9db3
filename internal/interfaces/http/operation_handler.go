package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/operations"
)

// OperationHandler maneja las peticiones HTTP para el libro de operaciones.
type OperationHandler struct {
	applyUC   *operations.ApplyOperationUseCase
	listUC    *operations.ListOperationsUseCase
	correctUC *operations.CorrectOperationUseCase
}

// NewOperationHandler construye el handler inyectando los casos de uso.
func NewOperationHandler(applyUC *operations.ApplyOperationUseCase, listUC *operations.ListOperationsUseCase, correctUC *operations.CorrectOperationUseCase) *OperationHandler {
	return &OperationHandler{applyUC: applyUC, listUC: listUC, correctUC: correctUC}
}

// Apply godoc
// @Summary      Registrar una operación sobre un activo
// @Description  receipt, transfer, disposal o adjustment. Muta el activo y deja la fila del libro en una sola transacción.
// @Tags         operations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ApplyOperationRequest  true  "Operación"
// @Success      201   {object}  dto.OperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/operations [post]
func (h *OperationHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Type == "" || in.AssetID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type y asset_id son requeridos"})
	}
	out, err := h.applyUC.Apply(c.UserContext(), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar operaciones de la empresa (más recientes primero)
// @Tags         operations
// @Produce      json
// @Security     BearerAuth
// @Param        type       query  string  false  "Tipo"  Enums(receipt, transfer, disposal, adjustment)
// @Param        asset_id   query  string  false  "Activo"
// @Param        date_from  query  string  false  "Desde (RFC3339)"
// @Param        date_to    query  string  false  "Hasta (RFC3339)"
// @Param        limit      query  int     false  "Límite"   default(20)
// @Param        offset     query  int     false  "Offset"   default(0)
// @Success      200        {object}  dto.OperationListResponse
// @Router       /api/operations [get]
func (h *OperationHandler) List(c *fiber.Ctx) error {
	filter := dto.OperationFilterRequest{
		Type:    c.Query("type"),
		AssetID: c.Query("asset_id"),
	}
	if from := c.Query("date_from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date_from inválido, formato RFC3339"})
		}
		filter.DateFrom = &t
	}
	if to := c.Query("date_to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date_to inválido, formato RFC3339"})
		}
		filter.DateTo = &t
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.listUC.List(c.UserContext(), GetCompanyID(c), filter, page)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener operación por ID
// @Tags         operations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la operación"
// @Success      200  {object}  dto.OperationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operations/{id} [get]
func (h *OperationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.listUC.GetByID(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Anular una operación del libro (corrección, solo admin)
// @Description  Marca la fila como inactiva sin borrarla ni revertir su efecto sobre el activo.
// @Tags         operations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la operación"
// @Success      200  {object}  dto.OperationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operations/{id} [delete]
func (h *OperationHandler) Deactivate(c *fiber.Ctx) error {
	out, err := h.correctUC.Deactivate(c.UserContext(), GetCompanyID(c), GetUserID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
