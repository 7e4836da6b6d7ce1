package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nmthanh/backoffice-api/internal/application/dto"
	"github.com/nmthanh/backoffice-api/internal/application/usecase"
)

// ItemHandler serves one item collection. It is registered twice, once under
// /warehouse/ingredients and once under /warehouse/products; title feeds the
// export heading ("Danh sách nguyên liệu" / "Danh sách sản phẩm").
type ItemHandler struct {
	uc     *usecase.ItemUseCase
	export *usecase.ExportUseCase
	title  string
}

func NewItemHandler(uc *usecase.ItemUseCase, export *usecase.ExportUseCase, title string) *ItemHandler {
	return &ItemHandler{uc: uc, export: export, title: title}
}

// List godoc
// @Summary      List items
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Name keyword"
// @Param        page      query  int     false  "Page (1-based)"  default(1)
// @Param        pageSize  query  int     false  "Page size"       default(10)
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/warehouse/ingredients [get]
// @Router       /api/warehouse/products [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", 10),
	}
	out, err := h.uc.List(c.Context(), c.Query("search"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get one item
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Item id"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse/ingredients/{id} [get]
// @Router       /api/warehouse/products/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Không tìm thấy bản ghi"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Create an item
// @Tags         warehouse
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveItemRequest  true  "Item data"
// @Success      201  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/warehouse/ingredients [post]
// @Router       /api/warehouse/products [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name is required"})
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Update an item
// @Tags         warehouse
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "Item id"
// @Param        body  body  dto.SaveItemRequest  true  "Item data"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse/ingredients/{id} [put]
// @Router       /api/warehouse/products/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name is required"})
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Không tìm thấy bản ghi"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete an item
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Param        id       path   string  true  "Item id"
// @Param        confirm  query  bool    true  "Deletes are two-step; must be true"
// @Success      200  {object}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse/ingredients/{id} [delete]
// @Router       /api/warehouse/products/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if !c.QueryBool("confirm") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CONFIRM_REQUIRED", Message: "confirm=true is required"})
	}
	out, err := h.uc.Delete(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Không tìm thấy bản ghi"})
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      Import a batch of incoming stock
// @Tags         warehouse
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportItemsRequest  true  "Incoming lines"
// @Success      201  {array}  dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/warehouse/ingredients/import [post]
// @Router       /api/warehouse/products/import [post]
func (h *ItemHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportItemsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "items must not be empty"})
	}
	out, err := h.uc.Import(c.Context(), GetActor(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Adjust godoc
// @Summary      Adjust stock quantity
// @Tags         warehouse
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Item id"
// @Param        body  body  dto.AdjustItemRequest  true  "Signed delta and note"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse/ingredients/{id}/adjust [post]
// @Router       /api/warehouse/products/{id}/adjust [post]
func (h *ItemHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Adjust(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Không tìm thấy bản ghi"})
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Export the listing to a file
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Param        format  query  string  false  "excel or pdf"  default(excel)
// @Param        search  query  string  false  "Name keyword"
// @Success      200  {object}  dto.ExportResult
// @Router       /api/warehouse/ingredients/export [post]
// @Router       /api/warehouse/products/export [post]
func (h *ItemHandler) Export(c *fiber.Ctx) error {
	items := h.uc.Items(c.Context(), c.Query("search"))
	result := h.export.ExportItems(c.Context(), GetActor(c), h.title, items, c.Query("format", dto.ExportFormatExcel))
	return c.JSON(result)
}
