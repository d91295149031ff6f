package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dailythoughts/config"
	"dailythoughts/journal"
	"dailythoughts/nav"
	"dailythoughts/quote"
	"dailythoughts/site"
	"dailythoughts/store"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", "err", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to open store", "err", err)
	}

	snap := st.Load()
	app := journal.NewApp(st, snap.Posts, snap.Users, snap.Session)
	machine := nav.NewMachine(app.LoggedIn())

	var generator quote.Generator
	if cfg.GeminiAPIKey != "" {
		gemini, err := quote.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Error("Failed to create Gemini client, quotes will use fallbacks", "err", err)
			generator = quote.Disabled{}
		} else {
			generator = gemini
		}
	} else {
		log.Warn("No Gemini API key configured, quotes will use fallbacks")
		generator = quote.Disabled{}
	}
	quotes := quote.NewCache(generator, st)

	s := site.New(app, machine, quotes)
	r := initRouter(s)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("Running", "addr", "http://localhost"+cfg.ListenAddr)
		if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
			log.Error("HTTP server stopped", "err", err)
		}
	}()

	// Block until a signal is received
	<-signals
	log.Info("Shutting down gracefully...")

	st.Close()
}

func initRouter(s *site.Site) *chi.Mux {
	r := chi.NewRouter()

	CORSMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	r.Use(CORSMiddleware.Handler)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(httprate.LimitByIP(100, time.Minute)) // general rate limiter for all routes (shared across all routes)
	r.Use(middleware.Recoverer)

	r.Get("/", s.Index)

	r.Post("/login", s.Login)
	r.Post("/signup", s.SignUp)
	r.Post("/logout", s.Logout)
	r.Get("/switch/signup", s.SwitchToSignUp)
	r.Get("/switch/login", s.SwitchToLogin)

	r.Get("/post/new", s.ComposePost)
	r.Post("/post/new", s.SavePost)
	r.Get("/post/cancel", s.CancelPost)
	r.Get("/post/{postID}/{slug}", s.ViewPost)
	r.Post("/back", s.Back)
	r.Post("/post/{postID}/reflect", s.Reflect)

	r.Get("/admin", s.Admin)

	r.Post("/post/{postID}/delete", s.RequestDeletePost)
	r.Post("/user/{username}/delete", s.RequestDeleteUser)
	r.Post("/confirm", s.ConfirmDelete)
	r.Post("/cancel", s.CancelDelete)

	fileServer := http.FileServer(http.Dir("./assets"))
	r.Handle("/assets/*", http.StripPrefix("/assets", fileServer))

	return r
}
