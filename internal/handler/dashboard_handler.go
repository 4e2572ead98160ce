package handler

import (
	"net/http"
	"strconv"

	"CarbonFootprintTracker/internal/dashboard"
	"CarbonFootprintTracker/internal/middleware"
	"CarbonFootprintTracker/internal/records"

	"github.com/gin-gonic/gin"
)

type DashboardResponse struct {
	Success          bool                     `json:"success" example:"true"`
	Columns          []string                 `json:"columns"`
	Rows             [][]string               `json:"rows"`
	Page             int                      `json:"page" example:"1"`
	TotalPages       int                      `json:"total_pages" example:"3"`
	PrevPage         int                      `json:"prev_page" example:"1"`
	NextPage         int                      `json:"next_page" example:"2"`
	Points           int                      `json:"points" example:"250"`
	TotalFootprint   float64                  `json:"total_footprint" example:"5321.5"`
	AverageFootprint float64                  `json:"average_footprint" example:"212.86"`
	Monthly          []dashboard.MonthlyTotal `json:"monthly"`
	Attribute        string                   `json:"attribute" example:"Diet"`
	AttributeCounts  []dashboard.ValueCount   `json:"attribute_counts"`
}

type ReductionResponse struct {
	Success bool `json:"success" example:"true"`
	dashboard.Reduction
}

// Dashboard godoc
// @Summary      대시보드 데이터
// @Description  설문 기록 테이블의 한 페이지와 포인트, 합계, 월별 추이, 속성 분포를 반환합니다.
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Param        page      query  int     false "페이지 번호 (1부터)"  default(1)
// @Param        attribute query  string  false "분포를 계산할 속성 (기본: 첫 번째 컬럼)"
// @Success      200 {object} handler.DashboardResponse
// @Failure      400 {object} handler.EnvelopeResponse "잘못된 페이지 번호"
// @Failure      401 {object} handler.EnvelopeResponse "인증 실패"
// @Failure      404 {object} handler.EnvelopeResponse "No records found for this user"
// @Failure      500 {object} handler.EnvelopeResponse "Server error"
// @Router       /api/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	pageNumber, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || pageNumber < 1 {
		fail(c, http.StatusBadRequest, "Invalid page")
		return
	}

	recs, err := h.records.FetchRecords(c.Request.Context(), c.GetString(middleware.ContextUsername))
	if err != nil {
		failRecords(c, err)
		return
	}

	columns := dashboard.DeriveColumns(recs)
	page, err := dashboard.Paginate(recs, h.pageSize, pageNumber)
	if err != nil {
		fail(c, http.StatusInternalServerError, records.MsgServerError)
		return
	}

	attribute := c.Query("attribute")
	if attribute == "" && len(columns) > 0 {
		attribute = columns[0]
	}
	summary := dashboard.Summarize(recs)

	c.JSON(http.StatusOK, DashboardResponse{
		Success:          true,
		Columns:          columns,
		Rows:             dashboard.Rows(page.Items, columns),
		Page:             page.Number,
		TotalPages:       page.TotalPages,
		PrevPage:         dashboard.PrevPage(page.Number, page.TotalPages),
		NextPage:         dashboard.NextPage(page.Number, page.TotalPages),
		Points:           summary.Points,
		TotalFootprint:   summary.TotalFootprint,
		AverageFootprint: summary.AverageFootprint,
		Monthly:          summary.Monthly,
		Attribute:        attribute,
		AttributeCounts:  dashboard.AttributeCounts(recs, attribute),
	})
}

// Reduction godoc
// @Summary      감축 요인 분석
// @Description  제출 순서대로 예측 탄소 발자국이 줄어든 양과, 그 감소에 기여한 상위 5개 설문 속성의 비율을 반환합니다.
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.ReductionResponse
// @Failure      401 {object} handler.EnvelopeResponse "인증 실패"
// @Failure      404 {object} handler.EnvelopeResponse "No records found for this user"
// @Failure      500 {object} handler.EnvelopeResponse "Server error"
// @Router       /api/reduction [get]
func (h *Handler) Reduction(c *gin.Context) {
	recs, err := h.records.FetchRecords(c.Request.Context(), c.GetString(middleware.ContextUsername))
	if err != nil {
		failRecords(c, err)
		return
	}
	c.JSON(http.StatusOK, ReductionResponse{Success: true, Reduction: dashboard.AnalyzeReduction(recs)})
}
