// Package testenv reads the environment variables the live-API tests use.
// Everything here is test scaffolding; the library itself takes explicit
// parameters.
package testenv

import "os"

type Config struct {
	APIKey      string
	BaseURL     string
	BankAccount string
	BankCode    string
}

func Load() *Config {
	return &Config{
		APIKey:      os.Getenv("PAYSTACK_API_KEY"),
		BaseURL:     getEnv("PAYSTACK_BASE_URL", "https://api.paystack.co"),
		BankAccount: getEnv("BANK_ACCOUNT", "0193274682"),
		BankCode:    getEnv("BANK_CODE", "044"),
	}
}

// HasLiveKey reports whether a real secret key is configured; live tests
// skip without one.
func (c *Config) HasLiveKey() bool {
	return c.APIKey != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
