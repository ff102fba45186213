package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/sessionkeeper/internal/api/http/response"
	"github.com/dtroode/sessionkeeper/internal/logger"
	"github.com/dtroode/sessionkeeper/internal/model"
)

// AccountService registers and logs in users.
type AccountService interface {
	Register(ctx context.Context, email, password string, role model.Role) (model.Subject, model.TokenPair, error)
	Login(ctx context.Context, email, password string) (model.Subject, model.TokenPair, error)
	ChangePassword(ctx context.Context, subjectID int64, newPassword string) error
	Me(ctx context.Context, subjectID int64) (model.Subject, error)
}

// SessionService rotates and ends sessions.
type SessionService interface {
	Rotate(ctx context.Context, presentedRefresh string) (model.TokenPair, model.Subject, error)
	End(ctx context.Context, refreshToken string) error
	RevokeAllForSubject(ctx context.Context, subjectID int64) error
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type changePasswordRequest struct {
	Password string `json:"password"`
}

// Auth serves the /auth routes.
type Auth struct {
	account        AccountService
	session        SessionService
	contextManager model.ContextManager
	cookies        *Cookies
	logger         *logger.Logger
}

func NewAuth(
	account AccountService,
	session SessionService,
	contextManager model.ContextManager,
	cookies *Cookies,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		account:        account,
		session:        session,
		contextManager: contextManager,
		cookies:        cookies,
		logger:         logger,
	}
}

func (h *Auth) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request body")
	}

	subject, pair, err := h.account.Register(c.Request().Context(), req.Email, req.Password, model.Role(req.Role))
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return h.writeSession(c, http.StatusCreated, subject, pair)
}

func (h *Auth) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request body")
	}

	subject, pair, err := h.account.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return h.writeSession(c, http.StatusOK, subject, pair)
}

// Refresh rotates the presented refresh token. Browsers send it as a
// cookie; other clients may post it in the body.
func (h *Auth) Refresh(c echo.Context) error {
	presented, err := h.presentedRefresh(c)
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request body")
	}
	if presented == "" {
		return response.Error(c, http.StatusUnauthorized, "refresh token required")
	}

	pair, subject, err := h.session.Rotate(c.Request().Context(), presented)
	if err != nil {
		if errors.Is(err, model.ErrRefreshRejected) {
			h.cookies.ClearRefresh(c)
		}
		return handleError(c, h.logger, err)
	}

	return h.writeSession(c, http.StatusOK, subject, pair)
}

// Logout always clears the cookies; revocation failures are only logged.
func (h *Auth) Logout(c echo.Context) error {
	presented, _ := h.presentedRefresh(c)
	if presented != "" {
		if err := h.session.End(c.Request().Context(), presented); err != nil {
			h.logger.Error("HTTP auth handler: failed to end session",
				"error", err.Error())
		}
	}

	h.cookies.Clear(c)
	return c.JSON(http.StatusOK, response.Message{Message: "logged out successfully"})
}

func (h *Auth) LogoutAll(c echo.Context) error {
	subject, ok := h.contextManager.GetSubjectFromContext(c.Request().Context())
	if !ok {
		return response.Error(c, http.StatusUnauthorized, model.ErrAuthenticationRequired.Error())
	}

	if err := h.session.RevokeAllForSubject(c.Request().Context(), subject.ID); err != nil {
		return handleError(c, h.logger, err)
	}

	h.cookies.Clear(c)
	return c.JSON(http.StatusOK, response.Message{Message: "all sessions ended"})
}

func (h *Auth) Me(c echo.Context) error {
	subject, ok := h.contextManager.GetSubjectFromContext(c.Request().Context())
	if !ok {
		return response.Error(c, http.StatusUnauthorized, model.ErrAuthenticationRequired.Error())
	}

	current, err := h.account.Me(c.Request().Context(), subject.ID)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, response.NewUser(current))
}

// ChangePassword ends every session of the caller, including this one.
func (h *Auth) ChangePassword(c echo.Context) error {
	subject, ok := h.contextManager.GetSubjectFromContext(c.Request().Context())
	if !ok {
		return response.Error(c, http.StatusUnauthorized, model.ErrAuthenticationRequired.Error())
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request body")
	}

	if err := h.account.ChangePassword(c.Request().Context(), subject.ID, req.Password); err != nil {
		return handleError(c, h.logger, err)
	}

	h.cookies.Clear(c)
	return c.JSON(http.StatusOK, response.Message{Message: "password changed"})
}

func (h *Auth) presentedRefresh(c echo.Context) (string, error) {
	if cookie, err := c.Cookie(RefreshTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return "", err
	}
	return req.RefreshToken, nil
}

func (h *Auth) writeSession(c echo.Context, status int, subject model.Subject, pair model.TokenPair) error {
	h.cookies.SetSession(c, pair, h.session.AccessTTL(), h.session.RefreshTTL())
	return c.JSON(status, response.Session{
		AccessToken: pair.AccessToken,
		User:        response.NewUser(subject),
	})
}
