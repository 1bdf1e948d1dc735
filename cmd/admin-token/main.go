package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/casaluna/hotel/api/pkg/jwt"
)

func main() {
	// Flags for customization
	userID := flag.Int64("user", 1, "User ID for the token")
	email := flag.String("email", "admin@casaluna.hotel", "Email for the token")
	role := flag.String("role", "admin", "Role for the token (admin, worker, external)")
	issuer := flag.String("issuer", "casaluna.hotel", "JWT issuer")
	expMins := flag.Int("exp", 60*24*7, "Token expiration in minutes (default: 7 days)")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	// Secret comes from the environment, same as the server
	_ = godotenv.Load()
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "Error: JWT_SECRET is not set")
		fmt.Fprintln(os.Stderr, "\nSet it in the environment or in a .env file next to this tool.")
		os.Exit(1)
	}

	jwtService := jwt.NewService(jwt.Config{
		Secret:     []byte(secret),
		Issuer:     *issuer,
		Expiration: time.Duration(*expMins) * time.Minute,
	})

	token, err := jwtService.GenerateToken(*userID, *email, *role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   *expMins * 60,
			"user_id":      *userID,
			"email":        *email,
			"role":         *role,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
	} else {
		expTime := time.Now().Add(time.Duration(*expMins) * time.Minute)
		fmt.Println("Token Generated")
		fmt.Println("===============")
		fmt.Printf("User ID:  %d\n", *userID)
		fmt.Printf("Email:    %s\n", *email)
		fmt.Printf("Role:     %s\n", *role)
		fmt.Printf("Expires:  %s\n", expTime.Format(time.RFC3339))
		fmt.Println()
		fmt.Println("Token:")
		fmt.Println(token)
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Printf("  curl -H 'Authorization: Bearer %s' http://localhost:8080/v1/bookings\n", token[:50]+"...")
	}
}
