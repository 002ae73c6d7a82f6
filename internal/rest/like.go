package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/avezina/inkwell/domain"
	"github.com/avezina/inkwell/internal/rest/request"
)

// LikeHandler represent the httphandler for visitor likes
type LikeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *LikeHandler {
	return &LikeHandler{
		Service: svc,
	}
}

// FetchLiked returns the target IDs one visitor liked within one type
func (h *LikeHandler) FetchLiked(c *gin.Context) {
	visitorID := c.Query("visitor")
	if _, err := uuid.Parse(visitorID); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	target := domain.LikeTarget(c.Query("type"))
	if !target.Valid() {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	ids, err := h.Service.LikedTargets(c.Request.Context(), visitorID, target)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	c.JSON(http.StatusOK, gin.H{"ids": ids})
}

// Like records one visitor like, ignoring repeats
func (h *LikeHandler) Like(c *gin.Context) {
	var req request.Like
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	changed, err := h.Service.AddLikeRecord(c.Request.Context(), req.ToDomain())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"changed": changed})
}

// Unlike removes one visitor like, ignoring repeats
func (h *LikeHandler) Unlike(c *gin.Context) {
	var req request.Like
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	changed, err := h.Service.RemoveLikeRecord(c.Request.Context(), req.ToDomain())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"changed": changed})
}
