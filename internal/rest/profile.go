package rest

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avezina/inkwell/domain"
	"github.com/avezina/inkwell/internal/rest/request"
	"github.com/avezina/inkwell/internal/rest/response"
)

// cvMaxSize caps the uploaded CV at 8 MiB
const cvMaxSize = 8 << 20

// ProfileHandler serves the about page and the admin bookkeeping records
type ProfileHandler struct {
	Service domain.ProfileUsecase
}

func NewProfileHandler(svc domain.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{
		Service: svc,
	}
}

// About aggregates the public about-page document
func (h *ProfileHandler) About(c *gin.Context) {
	ctx := c.Request.Context()

	about, err := h.Service.About(ctx)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	skills, err := h.Service.Skills(ctx)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	events, err := h.Service.LifeEvents(ctx)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	connections, err := h.Service.Connections(ctx)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	skillRes := make([]response.Skill, len(skills))
	for i := range skills {
		skillRes[i] = response.NewSkillFromDomain(&skills[i])
	}
	eventRes := make([]response.LifeEvent, len(events))
	for i := range events {
		eventRes[i] = response.NewLifeEventFromDomain(&events[i])
	}
	connRes := make([]response.Connection, len(connections))
	for i := range connections {
		connRes[i] = response.NewConnectionFromDomain(&connections[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"about":       response.NewAboutMeFromDomain(&about),
		"skills":      skillRes,
		"life_events": eventRes,
		"connections": connRes,
	})
}

// UpdateAbout upserts the singleton about document
func (h *ProfileHandler) UpdateAbout(c *gin.Context) {
	var req request.AboutMe
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	about := req.ToDomain()
	if err := h.Service.UpdateAbout(c.Request.Context(), &about); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewAboutMeFromDomain(&about))
}

// UploadCV stores the CV file sent as multipart field "cv"
func (h *ProfileHandler) UploadCV(c *gin.Context) {
	fileHeader, err := c.FormFile("cv")
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	if fileHeader.Size > cvMaxSize {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
		return
	}

	stored, err := h.Service.StoreCV(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"file_name": stored})
}

// DownloadCV streams the stored CV file
func (h *ProfileHandler) DownloadCV(c *gin.Context) {
	path, err := h.Service.CVPath(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.FileAttachment(path, "cv.pdf")
}

// FetchSkills lists the CV skills, admin view
func (h *ProfileHandler) FetchSkills(c *gin.Context) {
	skills, err := h.Service.Skills(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Skill, len(skills))
	for i := range skills {
		res[i] = response.NewSkillFromDomain(&skills[i])
	}
	c.JSON(http.StatusOK, res)
}

func (h *ProfileHandler) StoreSkill(c *gin.Context) {
	var req request.Skill
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	skill := req.ToDomain()
	if err := h.Service.SaveSkill(c.Request.Context(), &skill); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.NewSkillFromDomain(&skill))
}

func (h *ProfileHandler) UpdateSkill(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.Skill
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	skill := req.ToDomain()
	skill.ID = int64(idP)
	if err := h.Service.SaveSkill(c.Request.Context(), &skill); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewSkillFromDomain(&skill))
}

func (h *ProfileHandler) DeleteSkill(c *gin.Context) {
	h.deleteByID(c, h.Service.DeleteSkill)
}

func (h *ProfileHandler) FetchLifeEvents(c *gin.Context) {
	events, err := h.Service.LifeEvents(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.LifeEvent, len(events))
	for i := range events {
		res[i] = response.NewLifeEventFromDomain(&events[i])
	}
	c.JSON(http.StatusOK, res)
}

func (h *ProfileHandler) StoreLifeEvent(c *gin.Context) {
	var req request.LifeEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	event := req.ToDomain()
	if err := h.Service.SaveLifeEvent(c.Request.Context(), &event); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.NewLifeEventFromDomain(&event))
}

func (h *ProfileHandler) UpdateLifeEvent(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.LifeEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	event := req.ToDomain()
	event.ID = int64(idP)
	if err := h.Service.SaveLifeEvent(c.Request.Context(), &event); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewLifeEventFromDomain(&event))
}

func (h *ProfileHandler) DeleteLifeEvent(c *gin.Context) {
	h.deleteByID(c, h.Service.DeleteLifeEvent)
}

func (h *ProfileHandler) FetchConnections(c *gin.Context) {
	connections, err := h.Service.Connections(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Connection, len(connections))
	for i := range connections {
		res[i] = response.NewConnectionFromDomain(&connections[i])
	}
	c.JSON(http.StatusOK, res)
}

func (h *ProfileHandler) StoreConnection(c *gin.Context) {
	var req request.Connection
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	conn := req.ToDomain()
	if err := h.Service.SaveConnection(c.Request.Context(), &conn); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.NewConnectionFromDomain(&conn))
}

func (h *ProfileHandler) UpdateConnection(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.Connection
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	conn := req.ToDomain()
	conn.ID = int64(idP)
	if err := h.Service.SaveConnection(c.Request.Context(), &conn); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewConnectionFromDomain(&conn))
}

func (h *ProfileHandler) DeleteConnection(c *gin.Context) {
	h.deleteByID(c, h.Service.DeleteConnection)
}

func (h *ProfileHandler) FetchExpenses(c *gin.Context) {
	expenses, err := h.Service.Expenses(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Expense, len(expenses))
	for i := range expenses {
		res[i] = response.NewExpenseFromDomain(&expenses[i])
	}
	c.JSON(http.StatusOK, res)
}

func (h *ProfileHandler) StoreExpense(c *gin.Context) {
	var req request.Expense
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	expense := req.ToDomain()
	if err := h.Service.SaveExpense(c.Request.Context(), &expense); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.NewExpenseFromDomain(&expense))
}

func (h *ProfileHandler) UpdateExpense(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.Expense
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	expense := req.ToDomain()
	expense.ID = int64(idP)
	if err := h.Service.SaveExpense(c.Request.Context(), &expense); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewExpenseFromDomain(&expense))
}

func (h *ProfileHandler) DeleteExpense(c *gin.Context) {
	h.deleteByID(c, h.Service.DeleteExpense)
}

func (h *ProfileHandler) deleteByID(c *gin.Context, del func(ctx context.Context, id int64) error) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := del(c.Request.Context(), int64(idP)); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
