package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/config"
	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/models"
	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/service"
	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/store"
)

func main() {
	addUserCmd := flag.NewFlagSet("add-user", flag.ExitOnError)
	username := addUserCmd.String("username", "", "Username for the new user")
	password := addUserCmd.String("password", "", "Password for the new user")
	role := addUserCmd.String("role", string(models.RoleAdmin), "Role for the new user (admin or customer)")

	if len(os.Args) < 2 {
		fmt.Println("expected 'add-user' subcommand")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add-user":
		addUserCmd.Parse(os.Args[2:])
		if *username == "" || *password == "" {
			fmt.Println("username and password are required")
			addUserCmd.PrintDefaults()
			os.Exit(1)
		}
		createUser(*username, *password, models.Role(*role))
	default:
		fmt.Println("expected 'add-user' subcommand")
		os.Exit(1)
	}
}

func createUser(username, password string, role models.Role) {
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := store.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	// Ensure tables exist if running cli before server
	if err := db.Initialize(ctx); err != nil {
		log.Fatalf("Failed to init schema: %v", err)
	}

	auth := service.NewAuth(db, cfg.BcryptCost)
	if _, err := auth.CreateUser(ctx, username, password, role); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("User '%s' created with role %s.\n", username, role)
}
