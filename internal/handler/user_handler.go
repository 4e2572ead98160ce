/**
* Name:         user_handler.go
* Description:  회원가입, 로그인, 프로필 조회
 */
package handler

import (
	"errors"
	"net/http"
	"strings"

	"CarbonFootprintTracker/internal/logging"
	"CarbonFootprintTracker/internal/middleware"
	"CarbonFootprintTracker/internal/records"
	"CarbonFootprintTracker/internal/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// /register 요청 바디
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"gildong@example.com"`
	Username string `json:"username" binding:"required" example:"gildong"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// /login 요청 바디
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"gildong@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type LoginResponse struct {
	Success  bool   `json:"success" example:"true"`
	Username string `json:"username" example:"gildong"`
	Token    string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type ProfileResponse struct {
	Success  bool   `json:"success" example:"true"`
	Username string `json:"username" example:"gildong"`
}

// Register godoc
// @Summary      회원가입 (Register)
// @Description  새로운 사용자 계정을 생성합니다.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body handler.RegisterRequest true "회원가입 요청 정보"
// @Success      200 {object} handler.EnvelopeResponse
// @Failure      400 {object} handler.EnvelopeResponse
// @Failure      409 {object} handler.EnvelopeResponse "이미 등록된 이메일"
// @Failure      500 {object} handler.EnvelopeResponse
// @Router       /register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Email, username and password are required")
		return
	}
	// " "으로 입력되는 케이스 방지
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		fail(c, http.StatusBadRequest, "Email, username and password are required")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logging.Ctx(c.Request.Context()).Error().Err(err).Msg("Register(): failed to hash password")
		fail(c, http.StatusInternalServerError, records.MsgServerError)
		return
	}

	if err := h.users.CreateUser(c.Request.Context(), req.Email, strings.TrimSpace(req.Username), string(hashedPassword)); err != nil {
		if errors.Is(err, storage.ErrEmailExists) {
			fail(c, http.StatusConflict, "Email already exists")
			return
		}
		logging.Ctx(c.Request.Context()).Error().Err(err).Msg("Register(): failed to create user")
		fail(c, http.StatusInternalServerError, records.MsgServerError)
		return
	}
	c.JSON(http.StatusOK, EnvelopeResponse{Success: true})
}

// Login godoc
// @Summary      로그인 (Login)
// @Description  이메일과 비밀번호로 로그인하고 JWT 토큰을 발급받습니다.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "로그인 요청 정보"
// @Success      200 {object} handler.LoginResponse
// @Failure      400 {object} handler.EnvelopeResponse "잘못된 요청"
// @Failure      401 {object} handler.EnvelopeResponse "인증 실패 (자격 증명 오류)"
// @Failure      500 {object} handler.EnvelopeResponse "서버 내부 오류"
// @Router       /login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.users.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			fail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		logging.Ctx(c.Request.Context()).Error().Err(err).Msg("Login(): GetUserByEmail failed")
		fail(c, http.StatusInternalServerError, records.MsgServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.tokens.GenerateToken(user.Username)
	if err != nil {
		logging.Ctx(c.Request.Context()).Error().Err(err).Msg("Login(): failed to generate token")
		fail(c, http.StatusInternalServerError, records.MsgServerError)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Success: true, Username: user.Username, Token: token})
}

// Profile godoc
// @Summary      프로필 조회 (Profile)
// @Description  인증된 사용자의 사용자명을 반환합니다. (JWT 필요)
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.ProfileResponse
// @Failure      401 {object} handler.EnvelopeResponse "인증 토큰 누락 또는 만료"
// @Router       /api/profile [get]
func (h *Handler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, ProfileResponse{Success: true, Username: c.GetString(middleware.ContextUsername)})
}
