package main

import (
	"errors"
	"fmt"
	"time"

	"wellbeing/utils"

	"github.com/spf13/cobra"
)

var (
	tokenEmail string
	tokenTTL   time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a development bearer token",
	Args:  cobra.NoArgs,
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "owner email to embed in the token")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime (default from config)")
}

func runToken(cmd *cobra.Command, args []string) error {
	if tokenEmail == "" {
		return errors.New("--email is required")
	}
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	ttl := tokenTTL
	if ttl == 0 {
		ttl = cfg.JWT.TTL
	}
	tok, err := utils.GenerateJWT(tokenEmail, cfg.JWT.Secret, ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}
