package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/avezina/inkwell/domain"
)

type stubLikeUsecase struct {
	changed bool
	err     error
	liked   []int64

	lastLike   domain.VisitorLike
	addCalls   int
	removeCalls int
}

func (s *stubLikeUsecase) AddLikeRecord(_ context.Context, like domain.VisitorLike) (bool, error) {
	s.addCalls++
	s.lastLike = like
	return s.changed, s.err
}

func (s *stubLikeUsecase) RemoveLikeRecord(_ context.Context, like domain.VisitorLike) (bool, error) {
	s.removeCalls++
	s.lastLike = like
	return s.changed, s.err
}

func (s *stubLikeUsecase) LikedTargets(context.Context, string, domain.LikeTarget) ([]int64, error) {
	return s.liked, s.err
}

func likeRouter(svc domain.LikeUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewLikeHandler(svc)
	r := gin.New()
	r.GET("/likes", h.FetchLiked)
	r.POST("/likes", h.Like)
	r.DELETE("/likes", h.Unlike)
	return r
}

const validVisitor = "2b1f9c5e-8f07-4f0a-9b63-0a4f9a1d8e11"

func TestLikeEndpoint(t *testing.T) {
	stub := &stubLikeUsecase{changed: true}
	r := likeRouter(stub)

	body := `{"visitor_id":"` + validVisitor + `","target_id":7,"target_type":"post"}`
	req := httptest.NewRequest(http.MethodPost, "/likes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, stub.addCalls)
	assert.Equal(t, domain.LikeTargetPost, stub.lastLike.Target)
	assert.EqualValues(t, 7, stub.lastLike.TargetID)
	assert.JSONEq(t, `{"changed":true}`, w.Body.String())
}

func TestUnlikeEndpoint(t *testing.T) {
	stub := &stubLikeUsecase{changed: false}
	r := likeRouter(stub)

	body := `{"visitor_id":"` + validVisitor + `","target_id":2,"target_type":"category"}`
	req := httptest.NewRequest(http.MethodDelete, "/likes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, stub.removeCalls)
	assert.JSONEq(t, `{"changed":false}`, w.Body.String())
}

func TestLikeEndpointRejectsBadPayload(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not a uuid", `{"visitor_id":"abc","target_id":7,"target_type":"post"}`},
		{"unknown target type", `{"visitor_id":"` + validVisitor + `","target_id":7,"target_type":"tag"}`},
		{"missing target id", `{"visitor_id":"` + validVisitor + `","target_type":"post"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubLikeUsecase{}
			r := likeRouter(stub)

			req := httptest.NewRequest(http.MethodPost, "/likes", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Zero(t, stub.addCalls)
		})
	}
}

func TestFetchLikedEndpoint(t *testing.T) {
	stub := &stubLikeUsecase{liked: []int64{1, 5}}
	r := likeRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/likes?visitor="+validVisitor+"&type=post", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ids":[1,5]}`, w.Body.String())
}

func TestFetchLikedEndpointEmptySetIsArray(t *testing.T) {
	stub := &stubLikeUsecase{}
	r := likeRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/likes?visitor="+validVisitor+"&type=category", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ids":[]}`, w.Body.String())
}

func TestFetchLikedEndpointValidatesParams(t *testing.T) {
	r := likeRouter(&stubLikeUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/likes?visitor=abc&type=post", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/likes?visitor="+validVisitor+"&type=author", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatusCodeMapping(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, getStatusCode(domain.ErrNotFound))
	assert.Equal(t, http.StatusConflict, getStatusCode(domain.ErrConflict))
	assert.Equal(t, http.StatusBadRequest, getStatusCode(domain.ErrBadParamInput))
	assert.Equal(t, http.StatusUnauthorized, getStatusCode(domain.ErrUnauthorized))
	assert.Equal(t, http.StatusForbidden, getStatusCode(domain.ErrForbidden))
	assert.Equal(t, http.StatusInternalServerError, getStatusCode(domain.ErrInternalServerError))
}
