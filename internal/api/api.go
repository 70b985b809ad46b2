package api

import (
	"context"
	"io"
	"net/http"

	"github.com/andreferraz/homecare-backend/internal/database"
	"github.com/andreferraz/homecare-backend/internal/model"
	"github.com/andreferraz/homecare-backend/internal/notifications"
	"github.com/andreferraz/homecare-backend/internal/pkg/oauth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Api struct {
	handler    http.Handler
	logger     *zap.SugaredLogger
	randSource io.Reader

	jwts          jwtManager
	tokenParser   tokenParser
	refreshTokens refreshTokenRepository

	db         database.PGX
	users      userRepository
	orders     orderRepository
	caregivers caregiverRepository
	schedules  scheduleService
	sender     confirmationSender
}

type jwtManager interface {
	CreateToken(id int64) (string, error)
	GetIdFromToken(token string) (int64, error)
}

type tokenParser interface {
	GetInfoGoogle(ctx context.Context, authCode string) (*oauth.GoogleInfo, error)
}

type refreshTokenRepository interface {
	Add(ctx context.Context, session string, id int64) error
	Get(ctx context.Context, session string) (int64, error)
	Refresh(ctx context.Context, old, new string) error
	Delete(ctx context.Context, session string) error
}

type userRepository interface {
	CreateUser(ctx context.Context, q database.Queryable, user *model.UserCreate) (int64, error)
	GetUserByEmail(ctx context.Context, q database.Queryable, email string) (*model.User, error)
	GetUserByID(ctx context.Context, q database.Queryable, id int64) (*model.User, error)
}

type orderRepository interface {
	CreateOrder(ctx context.Context, q database.Queryable, order *model.OrderCreate) (int64, error)
	GetOrderByID(ctx context.Context, q database.Queryable, id int64) (*model.Order, error)
}

type caregiverRepository interface {
	CreateCaregiver(ctx context.Context, q database.Queryable, caregiver *model.CaregiverCreate) (int64, error)
	GetCaregiverByID(ctx context.Context, q database.Queryable, id int64) (*model.Caregiver, error)
	GetCaregiversByIDs(ctx context.Context, q database.Queryable, ids []int64) ([]*model.Caregiver, error)
}

type scheduleService interface {
	CreateSeries(ctx context.Context, info *model.SeriesCreate) (*model.Series, []*model.Event, error)
	UpdateSeries(ctx context.Context, series *model.Series) ([]*model.Event, error)
	DeleteSeries(ctx context.Context, id int64) error
	GetSeriesByID(ctx context.Context, id int64) (*model.Series, error)
	GetSeriesByOrder(ctx context.Context, orderID int64) ([]*model.Series, error)
	CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error)
	GetEvents(ctx context.Context, filter model.EventsFilter) ([]*model.Event, error)
	GetEventByID(ctx context.Context, id int64) (*model.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

type confirmationSender interface {
	Enqueue(job *notifications.OrderConfirmation)
}

func NewApi(
	logger *zap.SugaredLogger,
	randSource io.Reader,
	jwts jwtManager,
	tokenParser tokenParser,
	refreshTokens refreshTokenRepository,
	db database.PGX,
	users userRepository,
	orders orderRepository,
	caregivers caregiverRepository,
	schedules scheduleService,
	sender confirmationSender,
) (*Api, error) {
	a := &Api{
		logger:        logger,
		randSource:    randSource,
		jwts:          jwts,
		tokenParser:   tokenParser,
		refreshTokens: refreshTokens,
		db:            db,
		users:         users,
		orders:        orders,
		caregivers:    caregivers,
		schedules:     schedules,
		sender:        sender,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signin/google", a.signInGoogleHandler)
		r.Post("/refresh", a.refreshTokenHandler)
		r.Post("/logout", a.logoutUserHandler)
	})

	r.With(a.auth).Route("/", func(r chi.Router) {
		r.With(a.userCtx).Route("/user", func(r chi.Router) {
			r.Get("/", a.getUserHandler)
		})

		r.Route("/series", func(r chi.Router) {
			r.Post("/", a.createSeriesHandler)
			r.Route("/{seriesID}", func(r chi.Router) {
				r.Get("/", a.getSeriesHandler)
				r.Put("/", a.updateSeriesHandler)
				r.Delete("/", a.deleteSeriesHandler)
			})
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", a.getEventsHandler)
			r.Post("/", a.createEventHandler)
			r.Route("/{eventID}", func(r chi.Router) {
				r.Get("/", a.getEventHandler)
				r.Delete("/", a.deleteEventHandler)
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", a.createOrderHandler)
			r.Get("/{orderID}", a.getOrderHandler)
			r.Get("/{orderID}/series", a.getOrderSeriesHandler)
		})

		r.Route("/caregivers", func(r chi.Router) {
			r.Post("/", a.createCaregiverHandler)
			r.Get("/", a.getCaregiversHandler)
			r.Get("/{caregiverID}", a.getCaregiverHandler)
		})

		r.Post("/files", a.uploadFileHandler)
	})

	fileServer := http.FileServer(http.Dir("./files"))
	r.Get("/files/*", http.StripPrefix("/files", fileServer).ServeHTTP)

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
