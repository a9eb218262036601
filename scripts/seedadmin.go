package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds (or resets) the bootstrap admin account. Admin is never assignable
// through the API, so this is the only way in.
//
// Usage: go run ./scripts -username admin -email admin@example.com -password secret
func main() {
	username := flag.String("username", "admin", "admin username")
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: go run ./scripts -username admin -email admin@example.com -password secret")
		os.Exit(1)
	}

	_ = godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		fmt.Println("DATABASE_URL is not set")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx, `
		INSERT INTO users (username, email, password_hash, user_type)
		VALUES ($1, $2, $3, 'admin')
		ON CONFLICT (username) DO UPDATE
		SET email = EXCLUDED.email, password_hash = EXCLUDED.password_hash,
		    user_type = 'admin', updated_at = now()`,
		*username, *email, string(hash),
	)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	fmt.Printf("Admin user %q seeded\n", *username)
}
