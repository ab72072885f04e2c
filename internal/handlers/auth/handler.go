package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"todolist/infras/otel"
	"todolist/internal/domains/auth/model/dto"
	"todolist/internal/domains/auth/service"
	userDto "todolist/internal/domains/user/model/dto"
	userService "todolist/internal/domains/user/service"
	"todolist/shared/constant"
	"todolist/shared/failure"
	"todolist/shared/identity"
	"todolist/shared/validator"
	"todolist/transport/http/cookie"
	"todolist/transport/http/response"
)

const (
	messageLogoutSuccess = "logout successful"

	msgUsernameRequired = "username is required"
	msgInvalidEmail     = "email must be a valid email address"
)

type Handler struct {
	service     service.Auth
	userService userService.User
	cookie      cookie.Token
	otel        otel.Otel
}

func New(service service.Auth, userService userService.User, cookie cookie.Token, otel otel.Otel) Handler {
	return Handler{
		service:     service,
		userService: userService,
		cookie:      cookie,
		otel:        otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
		r.Get("/me", handler.CurrentUser)
		r.Post("/logout", handler.Logout)
		r.Get("/check-username", handler.CheckUsername)
		r.Get("/check-email", handler.CheckEmail)
	})
}

// Register handles user registration
// @Summary Register a new user
// @Description Register a new user. The username must be unique and the password must satisfy the password policy.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body userDto.RegisterRequest true "Register Request"
// @Success 201 {object} userDto.UserResponse
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := userDto.RegisterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	user, err := handler.userService.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User registered successfully")

	response.WithJSON(w, http.StatusCreated, user)
}

// Login handles user login
// @Summary Login a user
// @Description Verify the credentials, set the HTTP-only token cookie and return the token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login user")

		response.WithError(w, err)

		return
	}

	handler.cookie.Set(w, res.AccessToken, res.ExpiresIn)
	scope.AddEvent("User logged in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// CurrentUser returns the signed-in user
// @Summary Get the current user
// @Description Return the user behind the request token, or null for an anonymous caller.
// @Tags Auth
// @Produce json
// @Success 200 {object} userDto.UserResponse
// @Failure 500 {object} response.Error
// @Router /api/auth/me [get]
// @Security CookieAuth
func (handler *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CurrentUser")
	defer scope.End()

	var principal *identity.Principal
	if p, ok := identity.FromContext(ctx); ok {
		principal = &p
	}

	user, err := handler.service.CurrentUser(ctx, principal)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get current user")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, user)
}

// Logout revokes the request token
// @Summary Logout
// @Description Clear the token cookie and deny-list the token until it expires.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message
// @Failure 500 {object} response.Error
// @Router /api/auth/logout [post]
// @Security CookieAuth
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	handler.cookie.Clear(w)

	if principal, ok := identity.FromContext(ctx); ok {
		if err := handler.service.Logout(ctx, principal); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to logout user")

			response.WithError(w, err)

			return
		}
	}

	response.WithMessage(w, http.StatusOK, messageLogoutSuccess)
}

// CheckUsername reports whether a username is taken
// @Summary Check username availability
// @Tags Auth
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} userDto.ExistsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/check-username [get]
func (handler *Handler) CheckUsername(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckUsername")
	defer scope.End()

	username := r.URL.Query().Get(constant.RequestParamUsername)
	if err := validator.ValidateVar(username, "required,notblank"); err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString(msgUsernameRequired))

		return
	}

	exists, err := handler.userService.ExistsByUsername(ctx, username)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check username")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, userDto.ExistsResponse{Exists: exists})
}

// CheckEmail reports whether an email is taken
// @Summary Check email availability
// @Tags Auth
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} userDto.ExistsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/auth/check-email [get]
func (handler *Handler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckEmail")
	defer scope.End()

	email := r.URL.Query().Get(constant.RequestParamEmail)
	if err := validator.ValidateVar(email, "required,email"); err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString(msgInvalidEmail))

		return
	}

	exists, err := handler.userService.ExistsByEmail(ctx, email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check email")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, userDto.ExistsResponse{Exists: exists})
}
