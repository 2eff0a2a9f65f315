// Command token mints an access token for local development and for
// service-to-service callers such as the WhatsApp webhook receiver.
//
// Usage:
//
//	token --user=<uuid> [--business=<uuid>] [--role=owner|agent|viewer] [--ttl=1h]
//
// The signing secret and issuer come from the regular configuration.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

func main() {
	user := flag.String("user", "", "user ID (token subject)")
	business := flag.String("business", "", "business ID; empty for a user-only token")
	role := flag.String("role", string(domain.RoleOwner), "role: owner, agent or viewer")
	ttl := flag.Duration("ttl", 0, "token lifetime; defaults to auth.access_token_ttl")
	flag.Parse()

	if *user == "" {
		fmt.Fprintln(os.Stderr, "Usage: token --user=<uuid> [--business=<uuid>] [--role=owner] [--ttl=1h]")
		os.Exit(1)
	}

	id, err := identity(*user, *business, *role)
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	lifetime := cfg.Auth.AccessTokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, lifetime).GenerateAccessToken(id)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", time.Now().Add(lifetime).Format(time.RFC3339))
}

func identity(user, business, role string) (auth.Identity, error) {
	userID, err := uuid.Parse(user)
	if err != nil {
		return auth.Identity{}, fmt.Errorf("invalid --user: %w", err)
	}
	id := auth.Identity{UserID: userID}
	if business != "" {
		if id.BusinessID, err = uuid.Parse(business); err != nil {
			return auth.Identity{}, fmt.Errorf("invalid --business: %w", err)
		}
		if !domain.Role(role).IsValid() {
			return auth.Identity{}, fmt.Errorf("invalid --role %q", role)
		}
		id.Role = role
	}
	return id, nil
}
