package main

import (
	"os"

	"github.com/moneywise/backend/internal/cli"
)

// This is set at build time with -ldflags "-X main.version=...".
var version = "0.0.0"

//	@title			moneywise
//	@version		0.0.0
//	@description	The backend for moneywise, an expense tracker with budgets, alerts and badges.

//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		os.Exit(1)
	}
}
