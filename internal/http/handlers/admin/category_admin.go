package admin

import (
	"errors"

	"github.com/seaside-kitchen/storefront/internal/http/response"
	"github.com/seaside-kitchen/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

type saveCategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	ImageURL  string `json:"image_url"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

func (r *saveCategoryRequest) toInput() service.SaveCategoryInput {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return service.SaveCategoryInput{
		Name:      r.Name,
		ImageURL:  r.ImageURL,
		SortOrder: r.SortOrder,
		IsActive:  isActive,
	}
}

func respondCategoryError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		respondError(c, response.CodeNotFound, "category not found", nil)
	case errors.Is(err, service.ErrCategoryNameRequired):
		respondError(c, response.CodeBadRequest, "category name is required", nil)
	case errors.Is(err, service.ErrCategoryNameTaken):
		respondError(c, response.CodeConflict, "category name already in use", nil)
	case errors.Is(err, service.ErrCategoryInUse):
		respondError(c, response.CodeConflict, "category still has menu items", nil)
	default:
		respondError(c, response.CodeInternal, fallbackMsg, err)
	}
}

// ListCategories returns all categories, active or not.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List(false)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load categories", err)
		return
	}
	response.Success(c, gin.H{"categories": categories})
}

// GetCategory returns one category.
func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	category, err := h.CategoryService.Get(id)
	if err != nil {
		respondCategoryError(c, err, "failed to load category")
		return
	}
	response.Success(c, category)
}

// CreateCategory adds a category.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req saveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	category, err := h.CategoryService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		respondCategoryError(c, err, "failed to create category")
		return
	}
	response.SuccessWithMsg(c, "category created", category)
}

// UpdateCategory edits a category.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req saveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	category, err := h.CategoryService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		respondCategoryError(c, err, "failed to update category")
		return
	}
	response.SuccessWithMsg(c, "category updated", category)
}

// DeleteCategory removes an empty category.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(c.Request.Context(), id); err != nil {
		respondCategoryError(c, err, "failed to delete category")
		return
	}
	response.SuccessWithMsg(c, "category deleted", nil)
}
