// Package main is the entry point for the pizzeria-service application.
//
// @title           Borda de Fogo Pizzeria API
// @version         1.0.0
// @description     Menu, cart, pizza configurator, checkout, delivery tracker and admin panel of the Borda de Fogo pizzeria.
//
//	Customer routes are scoped by the X-Session-ID header; orders are handed off over a WhatsApp deep link.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/pizzeria-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Admin token as "Bearer <token>".
//
// @tag.name        Menu
// @tag.description Pizzeria info and menu
//
// @tag.name        Cart
// @tag.description Session cart
//
// @tag.name        Configurator
// @tag.description Custom pizza options and pricing
//
// @tag.name        Checkout
// @tag.description Checkout steps and order submission
//
// @tag.name        Tracker
// @tag.description Simulated delivery tracker
//
// @tag.name        Admin
// @tag.description Admin panel
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/pizzeria-service/docs" // swagger docs

	"github.com/guttosm/pizzeria-service/config"
	"github.com/guttosm/pizzeria-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server)
	server.OnShutdown(application.Close)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
