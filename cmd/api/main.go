package main

import (
	"fmt"
	"net/http"

	"github.com/presencelab/presence-gateway-go/internal/config"
	appHTTP "github.com/presencelab/presence-gateway-go/internal/handler/http"
	"github.com/presencelab/presence-gateway-go/internal/pkg/analyzer"
	"github.com/presencelab/presence-gateway-go/internal/pkg/sessionstore"
	"github.com/presencelab/presence-gateway-go/internal/service/projection"
	sessionService "github.com/presencelab/presence-gateway-go/internal/service/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	analyzerClient := analyzer.NewClient(cfg.Analyzer.BaseURL)
	store := sessionstore.NewStore(cfg.Session.TTL)
	projectionService := projection.NewProjectionService()
	sessionSvc := sessionService.NewSessionService(store, analyzerClient, projectionService)

	sessionHandler := appHTTP.NewSessionHandler(sessionSvc)
	exceptionHandler := appHTTP.NewExceptionHandler(sessionSvc)
	editHandler := appHTTP.NewEditHandler(sessionSvc)

	router := appHTTP.NewRouter(cfg, sessionHandler, exceptionHandler, editHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
