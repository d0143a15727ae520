// Command addadmin seeds an administrator account from the command line,
// for environments where the /api/create-admin bootstrap route is disabled.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Ahmedhamdy-88/accounting-system/app/config"
	"github.com/Ahmedhamdy-88/accounting-system/app/database"
)

func main() {
	cfg := config.Load()

	username := flag.String("username", cfg.AdminUsername, "admin username")
	password := flag.String("password", cfg.AdminPassword, "admin password")
	flag.Parse()

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, cfg.Driver()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	created, err := database.SeedAdmin(db, *username, *password)
	if err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}
	if !created {
		fmt.Printf("Admin user %q already exists\n", *username)
		return
	}
	fmt.Printf("Admin user %q created\n", *username)
}
