package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/RoGogDBD/parcelrate/internal/auth"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		secret   string
		issuer   string
		subject  string
		role     string
		merchant string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the dashboard API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = os.Getenv("AUTH_JWT_SECRET")
			}
			if secret == "" {
				return errors.New("secret is required (--secret or AUTH_JWT_SECRET)")
			}
			r := auth.Role(role)
			switch r {
			case auth.RoleStaff:
			case auth.RoleMerchant:
				if merchant == "" {
					return errors.New("merchant role requires --merchant")
				}
			default:
				return fmt.Errorf("unknown role %q", role)
			}

			token, err := auth.NewIssuer(secret, issuer, ttl).Issue(subject, r, merchant)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&secret, "secret", "", "HMAC secret, defaults to AUTH_JWT_SECRET")
	fl.StringVar(&issuer, "issuer", "parcelrate", "Token issuer")
	fl.StringVar(&subject, "subject", "operator", "Token subject")
	fl.StringVar(&role, "role", string(auth.RoleStaff), "Role: staff or merchant")
	fl.StringVar(&merchant, "merchant", "", "Merchant id for the merchant role")
	fl.DurationVar(&ttl, "ttl", 12*time.Hour, "Token lifetime")

	return cmd
}
