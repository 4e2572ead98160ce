/**
* Name:         handler.go
* Description:  Gin HTTP 핸들러 공용 타입과 의존성
 */
package handler

import (
	"context"
	"errors"
	"net/http"

	"CarbonFootprintTracker/internal/auth"
	"CarbonFootprintTracker/internal/events"
	"CarbonFootprintTracker/internal/models"
	"CarbonFootprintTracker/internal/predict"
	"CarbonFootprintTracker/internal/records"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 10

type RecordService interface {
	FetchRecords(ctx context.Context, username string) ([]models.Record, error)
	Submit(ctx context.Context, username string, userData *models.Fields, footprint float64) (models.Record, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, email, username, passwordHash string) error
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}

type TokenIssuer interface {
	GenerateToken(username string) (string, error)
	ValidateToken(token string) (*auth.Claims, error)
}

type Predictor interface {
	Predict(ctx context.Context, username string, userData *models.Fields) (*predict.Prediction, error)
}

type RecordStream interface {
	Subscribe(username string) (<-chan events.RecordEvent, func())
}

type Deps struct {
	Records   RecordService
	Users     UserStore
	Tokens    TokenIssuer
	Predictor Predictor
	Stream    RecordStream
	PageSize  int
}

type Handler struct {
	records   RecordService
	users     UserStore
	tokens    TokenIssuer
	predictor Predictor
	stream    RecordStream
	pageSize  int
}

func New(d Deps) *Handler {
	if d.PageSize <= 0 {
		d.PageSize = defaultPageSize
	}
	return &Handler{
		records:   d.Records,
		users:     d.Users,
		tokens:    d.Tokens,
		predictor: d.Predictor,
		stream:    d.Stream,
		pageSize:  d.PageSize,
	}
}

// 공통 응답 envelope
type EnvelopeResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message,omitempty" example:"No records found for this user"`
}

type RecordsResponse struct {
	Success bool            `json:"success" example:"true"`
	Data    []models.Record `json:"data"`
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, EnvelopeResponse{Success: false, Message: message})
}

// failRecords maps a records error to its status. Causes are never rendered.
func failRecords(c *gin.Context, err error) {
	var rerr *records.Error
	if !errors.As(err, &rerr) {
		fail(c, http.StatusInternalServerError, records.MsgServerError)
		return
	}
	switch rerr.Kind {
	case records.KindNotFound:
		fail(c, http.StatusNotFound, rerr.Message)
	case records.KindInvalid:
		fail(c, http.StatusBadRequest, rerr.Message)
	default:
		fail(c, http.StatusInternalServerError, records.MsgServerError)
	}
}
