package main

import (
	"fmt"
	"os"

	_ "github.com/uceva/country-service/docs"
)

// @title Country Service API
// @version 1.0
// @description CRUD over countries: list, get by id, create, update and delete.

// @contact.name API Support Team

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "couldn't execute app,", err)
		os.Exit(1)
	}
}
