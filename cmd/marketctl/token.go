package main

import (
	"fmt"

	"carmarket/internal/domain/constants"
	"carmarket/internal/domain/service"
	"carmarket/internal/infra/auth"
	"carmarket/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	tokenName  string
	tokenEmail string
	tokenSync  bool
)

var tokenCmd = &cobra.Command{
	Use:   "token <user-id>",
	Short: "Mint an HS256 identity token for a development user",
	Long: `token signs a bearer token with the configured identity secret and,
unless --sync=false, mirrors the user into identity_users so their
profile can be written on the first request.

  marketctl token buyer-1 --name "Kari Nordmann" --email kari@example.no`,
	Args: cobra.ExactArgs(1),
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenName, "name", "", "display name")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "primary email")
	tokenCmd.Flags().BoolVar(&tokenSync, "sync", true, "upsert the user into the identity mirror")
}

func runToken(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	idCfg := e.cfg.Identity
	if idCfg == nil || (idCfg.Provider != "" && idCfg.Provider != constants.IdentityProviderJWT) {
		return errors.New("token requires identity.provider jwt")
	}

	issuer, err := auth.NewJWTVerifier(idCfg)
	if err != nil {
		return err
	}

	identity := &service.Identity{
		ID:           args[0],
		DisplayName:  tokenName,
		PrimaryEmail: tokenEmail,
	}

	if tokenSync {
		if err := postgres.NewIdentityMirror(e.db).Upsert(cmd.Context(), identity); err != nil {
			return err
		}
	}

	token, err := issuer.Issue(identity)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)

	return nil
}
