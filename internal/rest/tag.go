package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avezina/inkwell/domain"
	"github.com/avezina/inkwell/internal/rest/request"
	"github.com/avezina/inkwell/internal/rest/response"
)

// TagHandler represent the httphandler for tags
type TagHandler struct {
	Service domain.TagUsecase
}

func NewTagHandler(svc domain.TagUsecase) *TagHandler {
	return &TagHandler{
		Service: svc,
	}
}

func (h *TagHandler) Fetch(c *gin.Context) {
	tags, err := h.Service.Fetch(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Tag, len(tags))
	for i := range tags {
		res[i] = response.NewTagFromDomain(&tags[i])
	}
	c.JSON(http.StatusOK, res)
}

func (h *TagHandler) Store(c *gin.Context) {
	var req request.Tag
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	tag := req.ToDomain()
	if err := h.Service.Store(c.Request.Context(), &tag); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewTagFromDomain(&tag))
}

func (h *TagHandler) Delete(c *gin.Context) {
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
