// Package config provides environment variable loading with caching. Each
// configuration type is loaded once and cached for subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/consolekit/core/config"
//
//	type ConsoleConfig struct {
//		BaseURL   string `env:"CONSOLE_BASE_URL,required"`
//		APIPrefix string `env:"CONSOLE_API_PREFIX" envDefault:"/api"`
//		Role      string `env:"CONSOLE_ROLE" envDefault:"admin"`
//	}
//
//	func main() {
//		var cfg ConsoleConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 ConsoleConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 ConsoleConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently.
package config
