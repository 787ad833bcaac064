package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/vncsmyrnk/polling-app/docs"
)

type Handlers struct {
	Poll   *PollHandler
	Vote   *VoteHandler
	Result *ResultHandler
	Auth   *AuthHandler
	User   *UserHandler
	Health *HealthHandler
}

func NewHandler(h Handlers, auth *AuthMiddleware, corsOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", h.Health.Check)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Auth.SignUp)
		r.Post("/signin", h.Auth.SignIn)
		r.Post("/refresh", h.Auth.Refresh)
		r.Post("/signout", h.Auth.SignOut)
	})
	r.Post("/oauth/callback", h.Auth.GoogleCallback)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth)
			r.Get("/me", h.User.GetMe)
			r.Get("/me/polls", h.Poll.ListMyPolls)
			r.Post("/polls", h.Poll.CreatePoll)
			r.Post("/polls/{id}/votes", h.Vote.VoteOnPoll)
			r.Get("/polls/{id}/my-vote", h.Vote.GetMyVote)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.OptionalAuth)
			r.Get("/polls", h.Poll.ListPolls)
			r.Get("/polls/{id}", h.Poll.GetPoll)
			r.Get("/polls/{id}/options", h.Poll.GetPollOptions)
			r.Get("/polls/{id}/results", h.Result.GetPollResults)
			r.Get("/options/{id}/votes", h.Result.GetOptionVotes)
		})
	})

	return r
}
