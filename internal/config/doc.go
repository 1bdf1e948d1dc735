// Package config loads and validates application configuration from
// environment variables (with optional .env file support).
//
// All settings have development-friendly defaults except the credentials
// that cannot be guessed: the Supabase URL/service-key pair and the JWT
// secret are required, and Validate reports every missing value at once
// so startup failures are actionable.
package config
