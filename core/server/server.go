package server

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

// NewApp creates the Fiber application with the editor's settings.
// JSON bodies are encoded and decoded with goccy/go-json, the same codec the
// definition files use.
func NewApp(cfg Config) *fiber.App {
	return fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.BodyLimit(),
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})
}
