package handler

import (
	"net/http"

	"CarbonFootprintTracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

type UserRecordsRequest struct {
	Username string `json:"username" example:"gildong"`
}

// GetUserRecords godoc
// @Summary      사용자 설문 기록 조회
// @Description  사용자의 설문 기록을 최신순으로, 식별 정보와 Sex 를 제거한 형태로 반환합니다.
// @Description  본문이 없거나 잘못된 경우 빈 사용자명으로 처리되어 404 를 반환합니다.
// @Tags         Records
// @Accept       json
// @Produce      json
// @Param        request body handler.UserRecordsRequest true "조회할 사용자명"
// @Success      200 {object} handler.RecordsResponse
// @Failure      404 {object} handler.EnvelopeResponse "No records found for this user"
// @Failure      500 {object} handler.EnvelopeResponse "Server error"
// @Router       /user [post]
func (h *Handler) GetUserRecords(c *gin.Context) {
	var req UserRecordsRequest
	// a missing or malformed body reads as an empty username
	_ = c.ShouldBindJSON(&req)
	h.writeRecords(c, req.Username)
}

// GetMyRecords godoc
// @Summary      내 설문 기록 조회
// @Description  토큰 사용자의 설문 기록을 /user 와 같은 형식으로 반환합니다.
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.RecordsResponse
// @Failure      401 {object} handler.EnvelopeResponse "인증 실패"
// @Failure      404 {object} handler.EnvelopeResponse "No records found for this user"
// @Failure      500 {object} handler.EnvelopeResponse "Server error"
// @Router       /api/records [get]
func (h *Handler) GetMyRecords(c *gin.Context) {
	h.writeRecords(c, c.GetString(middleware.ContextUsername))
}

func (h *Handler) writeRecords(c *gin.Context, username string) {
	recs, err := h.records.FetchRecords(c.Request.Context(), username)
	if err != nil {
		failRecords(c, err)
		return
	}
	c.JSON(http.StatusOK, RecordsResponse{Success: true, Data: recs})
}
