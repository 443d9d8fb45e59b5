// Command ops-token prints a signed bearer token for the ops API.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"gondola-rental/internal/config"
	"gondola-rental/internal/service/auth"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	email := flag.String("email", "", "email recorded in the token")
	role := flag.String("role", auth.RoleViewer, "admin or viewer")
	userID := flag.String("user", "", "user id (random when empty)")
	ttl := flag.Duration("ttl", cfg.JWTAccessExpiry, "token lifetime")
	flag.Parse()

	if *role != auth.RoleAdmin && *role != auth.RoleViewer {
		fmt.Fprintf(os.Stderr, "unknown role %q\n", *role)
		os.Exit(2)
	}

	id := uuid.New()
	if *userID != "" {
		parsed, err := uuid.Parse(*userID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid user id: %v\n", err)
			os.Exit(2)
		}
		id = parsed
	}

	token, err := auth.NewService(cfg.JWTSecret, *ttl).IssueToken(id, *email, *role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to issue token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
