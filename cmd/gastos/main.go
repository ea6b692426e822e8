package main

import (
	"fmt"
	"os"

	"gastos/internal/cli"
	"gastos/internal/config"
	"gastos/internal/log"
)

func main() {
	cli.LoadEnvFile()

	cfg := config.Load()
	logger := cli.SetupLogger(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		logger.Error("configuration validation failed", log.FieldError, err.Error())
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, cancel := cli.RootContext()
	defer cancel()

	if err := run(ctx, cfg, logger, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error: "+describeError(err))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: gastos <command> [flags]

Auth:
  login       -email -password        obtain and store a credential
  register    -email -password -name  create an account
  whoami                              show the authenticated account
  logout                              discard the stored credential

Expenses:
  add         -amount -desc -category [-date YYYY-MM-DD]
  list        [-category] [-page] [-limit]
  edit        -id [-amount] [-desc] [-category] [-date]
  rm          -id
  summary                             windowed totals and breakdowns
  analytics                           server-side summary

Income:
  income add  -amount -source [-desc]
  income list
  income rm   -id
  income sources

Categories:
  categories list
  categories init
`)
}
