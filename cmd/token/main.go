// Command token mints an RS256 access token for local runs against a server
// configured with the matching public key.
package main

import (
	"fmt"
	"os"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"todos/infras/jwt"
	"todos/shared/logger"
)

func main() {
	flags := pflag.NewFlagSet("token", pflag.ExitOnError)
	keyFile := flags.StringP("key", "k", "", "PEM encoded RSA private key (required)")
	subject := flags.StringP("subject", "s", "", "token subject, the todo owner id (required)")
	issuer := flags.String("issuer", "", "issuer claim")
	ttl := flags.Duration("ttl", time.Hour, "token lifetime")

	_ = flags.Parse(os.Args[1:])

	logger.InitLogger()

	if *keyFile == "" || *subject == "" {
		flags.Usage()
		os.Exit(2)
	}

	material, err := os.ReadFile(*keyFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", *keyFile).Msg("Failed to read private key")
	}

	key, err := gojwt.ParseRSAPrivateKeyFromPEM(material)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse private key")
	}

	token, err := jwt.NewToken(key, *subject, *issuer, time.Now(), *ttl)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to sign token")
	}

	fmt.Println(token)
}
