package admin

import (
	"strconv"

	"github.com/seaside-kitchen/storefront/internal/http/response"
	"github.com/seaside-kitchen/storefront/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListCustomers returns customer accounts for the staff view. The keyword
// matches against name and email.
func (h *Handler) ListCustomers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	customers, total, err := h.CustomerAuthService.ListCustomers(repository.CustomerListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  c.Query("keyword"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list customers", err)
		return
	}
	response.SuccessWithPage(c, customers, total, page, pageSize)
}
