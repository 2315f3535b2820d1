// Package server holds the HTTP server configuration and builds the Fiber
// application.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key checked by the auth
// middleware, and the request body limit.
//
// # Usage
//
//	app := server.NewApp(cfg.Server)
//	app.Use(rayid.New())
//	app.Listen(":" + cfg.Server.Port)
package server
