package handler

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/library/internal/errs"
	"github.com/Astemirdum/library-desk/pkg/auth"
	md "github.com/Astemirdum/library-desk/pkg/middleware"
	"github.com/Astemirdum/library-desk/pkg/validate"
	_ "github.com/Astemirdum/library-desk/swagger"
)

type Handler struct {
	librarySvc LibraryService
	authCfg    auth.Config
	log        *zap.Logger
}

func New(librarySvc LibraryService, authCfg auth.Config, log *zap.Logger) *Handler {
	return &Handler{
		librarySvc: librarySvc,
		authCfg:    authCfg,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.JwtAuthentication(h.authCfg),
	)
	h.register(api)
	return e
}

func (h *Handler) register(api *echo.Group) {
	api.GET("/me", h.Me)

	api.GET("/items", h.ListItems)
	api.GET("/items/:id", h.GetItem)
	api.POST("/items", h.CreateItem)
	api.PUT("/items/:id", h.UpdateItem)

	api.POST("/transactions/issue", h.IssueItem)
	api.GET("/transactions/open", h.ListOpenTransactions)
	api.GET("/transactions/:id", h.GetTransaction)
	api.POST("/transactions/:id/return", h.ReturnItem)
	api.POST("/transactions/:id/fine", h.SettleFine)

	api.POST("/memberships", h.CreateMembership)
	api.GET("/memberships", h.ListMemberships)
	api.GET("/memberships/:number", h.GetMembership)
	api.PATCH("/memberships/:number", h.UpdateMembership)

	api.GET("/reports/transactions", h.TransactionReport)
	api.GET("/reports/dashboard", h.Dashboard)

	admin := api.Group("", h.RequireAdmin)
	admin.GET("/admin/users", h.ListUsers)
	admin.POST("/admin/users", h.CreateUser)
	admin.PUT("/admin/users/:id", h.UpdateUser)
	admin.GET("/reports/activity", h.ListActivity)
	admin.POST("/maintenance/reconcile", h.Reconcile)
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// RequireAdmin checks the stored role of the caller, never a client-supplied one.
func (h *Handler) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ident, err := identity(c)
		if err != nil {
			return err
		}
		ok, err := h.librarySvc.IsAdmin(c.Request().Context(), ident)
		if err != nil {
			return h.httpError(err)
		}
		if !ok {
			return echo.NewHTTPError(http.StatusForbidden, errs.ErrForbidden.Error())
		}
		return next(c)
	}
}

func identity(c echo.Context) (auth.Identity, error) {
	ident, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return ident, nil
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			v := new(errs.ValidationError)
			for _, fe := range verrs {
				v.Add(fe.Field(), fe.Tag())
			}
			return validationHTTPError(v)
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func paramID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	return id, nil
}

func validationHTTPError(v *errs.ValidationError) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, map[string]any{
		"message": "validation failed",
		"fields":  v.Fields,
	})
}

// httpError maps service errors onto status codes.
func (h *Handler) httpError(err error) error {
	var v *errs.ValidationError
	switch {
	case errors.As(err, &v):
		return validationHTTPError(v)
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrNotAvailable),
		errors.Is(err, errs.ErrInvalidState):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrFineUnpaid):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	h.log.Error("internal", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
