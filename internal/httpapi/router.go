package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"otoman/internal/api"
	"otoman/internal/auth"
	"otoman/internal/inspection"
	"otoman/internal/user"
	"otoman/pkg/config"
)

type Dependencies struct {
	Cfg config.Config
	Log *zap.Logger
	DB  *pgxpool.Pool
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(api.CORSMiddleware(api.CORSOptions{
		AllowedOrigins: deps.Cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAgeSeconds:  600,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	usersRepo := user.NewRepository(deps.DB)
	authHandlers := auth.Handlers{
		Cfg:   deps.Cfg,
		Log:   deps.Log,
		Users: usersRepo,
	}
	inspectionHandlers := inspection.Handlers{
		Log:   deps.Log,
		Repo:  inspection.NewRepository(deps.DB),
		Price: deps.Cfg.InspectionPrice,
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandlers.Register)
			r.Post("/login", authHandlers.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.Middleware(deps.Cfg.JWT, usersRepo))
				r.Get("/me", authHandlers.Me)
				r.Post("/logout", authHandlers.Logout)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(deps.Cfg.JWT, usersRepo))
			r.Post("/inspections", inspectionHandlers.Create)
			r.Get("/inspections", inspectionHandlers.List)
			r.Get("/inspections/{id}", inspectionHandlers.Get)
		})
	})

	return r
}
