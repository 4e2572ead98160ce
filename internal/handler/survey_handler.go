package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"CarbonFootprintTracker/internal/logging"
	"CarbonFootprintTracker/internal/middleware"
	"CarbonFootprintTracker/internal/models"
	"CarbonFootprintTracker/internal/predict"
	"CarbonFootprintTracker/internal/survey"

	"github.com/gin-gonic/gin"
)

type SurveyRequest struct {
	UserData *models.Fields `json:"user_data" swaggertype:"object"`
}

type SurveyResponse struct {
	Success            bool                     `json:"success" example:"true"`
	PredictedFootprint float64                  `json:"predicted_footprint" example:"2210.5"`
	Recommendations    []predict.Recommendation `json:"recommendations"`
	Record             models.Record            `json:"record" swaggertype:"object"`
}

type SurveyErrorResponse struct {
	Success  bool             `json:"success" example:"false"`
	Message  string           `json:"message" example:"Invalid survey answers"`
	Problems []survey.Problem `json:"problems"`
}

type SurveyFieldsResponse struct {
	Success bool           `json:"success" example:"true"`
	Fields  []survey.Field `json:"fields"`
}

// SurveyFields godoc
// @Summary      설문 항목 목록
// @Description  설문 폼의 질문, 종류(numeric/categorical), 선택지를 순서대로 반환합니다.
// @Tags         Survey
// @Produce      json
// @Success      200 {object} handler.SurveyFieldsResponse
// @Router       /survey/fields [get]
func (h *Handler) SurveyFields(c *gin.Context) {
	c.JSON(http.StatusOK, SurveyFieldsResponse{Success: true, Fields: survey.Fields()})
}

// SubmitSurvey godoc
// @Summary      설문 제출 및 탄소 발자국 예측
// @Description  설문 응답을 검증하고 예측 서비스에 전달한 뒤, 결과를 기록으로 저장하고 실시간 스트림에 알립니다.
// @Tags         API (Protected)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.SurveyRequest true "설문 응답 (user_data)"
// @Success      200 {object} handler.SurveyResponse
// @Failure      400 {object} handler.SurveyErrorResponse "잘못된 설문 응답"
// @Failure      401 {object} handler.EnvelopeResponse "인증 실패"
// @Failure      502 {object} handler.EnvelopeResponse "예측 서비스 오류"
// @Failure      503 {object} handler.EnvelopeResponse "예측 서비스 사용 불가"
// @Failure      500 {object} handler.EnvelopeResponse "Server error"
// @Router       /api/survey [post]
func (h *Handler) SubmitSurvey(c *gin.Context) {
	ctx := c.Request.Context()
	username := c.GetString(middleware.ContextUsername)

	var req SurveyRequest
	rawData, err := c.GetRawData()
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := json.Unmarshal(rawData, &req); err != nil || req.UserData == nil {
		fail(c, http.StatusBadRequest, "user_data object is required")
		return
	}

	answers := survey.Normalize(req.UserData)
	if err := survey.Validate(answers); err != nil {
		var ve *survey.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, SurveyErrorResponse{Success: false, Message: "Invalid survey answers", Problems: ve.Problems})
			return
		}
		fail(c, http.StatusBadRequest, "Invalid survey answers")
		return
	}

	prediction, err := h.predictor.Predict(ctx, username, answers)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("username", username).Msg("SubmitSurvey(): prediction failed")
		if errors.Is(err, predict.ErrUnavailable) {
			fail(c, http.StatusServiceUnavailable, "Prediction service unavailable")
			return
		}
		fail(c, http.StatusBadGateway, "Prediction failed")
		return
	}

	record, err := h.records.Submit(ctx, username, answers, prediction.PredictedFootprint)
	if err != nil {
		failRecords(c, err)
		return
	}

	c.JSON(http.StatusOK, SurveyResponse{
		Success:            true,
		PredictedFootprint: prediction.PredictedFootprint,
		Recommendations:    prediction.Recommendations,
		Record:             record,
	})
}
