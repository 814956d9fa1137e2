// Command gmail-auth runs the one-time OAuth consent flow and stores the
// token the API server uses to forward contact messages.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/justsurfingit/hireable/internal/auth"
	"github.com/justsurfingit/hireable/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	oauthCfg, err := auth.LoadConfig(cfg.Gmail.CredentialsFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := auth.AuthorizeInteractive(context.Background(), oauthCfg, cfg.Gmail.TokenFile, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Saved token to %s\n", cfg.Gmail.TokenFile)
}
