package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avezina/inkwell/domain"
	"github.com/avezina/inkwell/internal/rest/request"
	"github.com/avezina/inkwell/internal/rest/response"
)

// CategoryHandler represent the httphandler for categories
type CategoryHandler struct {
	Service domain.CategoryUsecase
}

func NewCategoryHandler(svc domain.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{
		Service: svc,
	}
}

// Fetch lists every category with its current like count
func (h *CategoryHandler) Fetch(c *gin.Context) {
	categories, err := h.Service.Fetch(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Category, len(categories))
	for i := range categories {
		res[i] = response.NewCategoryFromDomain(&categories[i])
	}
	c.JSON(http.StatusOK, res)
}

// Store will store the category by given request body
func (h *CategoryHandler) Store(c *gin.Context) {
	var req request.Category
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	category := req.ToDomain()
	if err := h.Service.Store(c.Request.Context(), &category); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewCategoryFromDomain(&category))
}

// Update will update the category identified by the given param
func (h *CategoryHandler) Update(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.Category
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	category := req.ToDomain()
	category.ID = int64(idP)
	if err := h.Service.Update(c.Request.Context(), &category); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCategoryFromDomain(&category))
}

// Delete refuses to remove a category that still owns posts
func (h *CategoryHandler) Delete(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), int64(idP)); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
