// Package jwt provides JSON Web Token utilities for the hotel API.
//
// The jwt package handles token generation, validation, and claims
// extraction for authentication.
//
// # Token Generation
//
// Generate tokens for authenticated users:
//
//	service := jwt.NewService(jwt.Config{
//	    Secret:     []byte("secret-key"),
//	    Expiration: 24 * time.Hour,
//	    Issuer:     "casaluna-api",
//	})
//
//	token, err := service.GenerateToken(user.ID, user.Email, string(user.Role))
//
// # Token Validation
//
// Validate and extract claims:
//
//	claims, err := service.ValidateToken(tokenString)
//	if err != nil {
//	    // Invalid or expired token
//	}
//	userID := claims.UserID
//
// Tokens are signed with HMAC-SHA256. The signing secret comes from
// configuration and must be at least 32 bytes in production.
package jwt
