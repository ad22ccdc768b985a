// Command api_key_gen mints an X-API-Key for an existing user.
//
//	go run ./cmd/api_key_gen -email admin@example.com
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"airport-booking/concourse/internal/config"
	"airport-booking/concourse/internal/db"
	"airport-booking/concourse/internal/db/repositories"

	"github.com/google/uuid"
)

func main() {
	email := flag.String("email", "", "email of the user who will own the key")
	flag.Parse()

	if *email == "" {
		log.Fatal("-email is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	orm, err := db.InitORM(cfg.Database)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.InitSQLX(cfg.Database, orm)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	key := strings.ReplaceAll(uuid.NewString(), "-", "")
	if err := repositories.NewApiKeysRepo(sqlDB).Insert(ctx, key, strings.ToLower(strings.TrimSpace(*email))); err != nil {
		log.Fatalf("insert api key: %v", err)
	}

	fmt.Println("New API Key:", key)
}
