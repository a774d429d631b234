package main

import (
	"flag"
	"log"

	"github.com/Mutiur03/School-sub002/app/config"
	"github.com/Mutiur03/School-sub002/app/database"
	"github.com/Mutiur03/School-sub002/app/models"
)

// Bootstraps the first admin account so the dashboard can be logged into
// on a fresh database.
func main() {
	name := flag.String("name", "", "full name")
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "initial password")
	flag.Parse()

	if *name == "" || *email == "" || *password == "" {
		log.Fatal("usage: add_user -name NAME -email EMAIL -password PASSWORD")
	}

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	user := &models.User{
		Name:     *name,
		Email:    *email,
		Password: *password,
	}
	if err := database.CreateAdmin(db, user); err != nil {
		log.Fatal("Failed to create admin: ", err)
	}

	log.Printf("Admin created: %s (%s)", user.Name, user.Email)
}
