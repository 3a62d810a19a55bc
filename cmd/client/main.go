package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-social-api/internal/adapter"
	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: go-social-client <command> [flags]

commands:
  register -username NAME -email EMAIL -password PASSWORD
  login    -email EMAIL -password PASSWORD
  me       [-token TOKEN]
  health
  version
`

var errUsage = errors.New("invalid usage")

func main() {
	log := logger.NewConsoleLogger("go-social-client", os.Stderr)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	client, err := adapter.NewHTTPClient(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating API client")
	}

	if err = run(context.Background(), client, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// run executes one client command and prints its JSON result to out.
func run(ctx context.Context, client adapter.APIClient, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	username := fs.String("username", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	token := fs.String("token", "", "bearer token")
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	switch args[0] {
	case "register":
		user, err := client.Register(ctx, models.RegisterRequest{Username: *username, Email: *email, Password: *password})
		if err != nil {
			return err
		}
		return printJSON(out, authResult{User: user, Token: client.Token()})
	case "login":
		user, err := client.Login(ctx, models.LoginRequest{Email: *email, Password: *password})
		if err != nil {
			return err
		}
		return printJSON(out, authResult{User: user, Token: client.Token()})
	case "me":
		if *token != "" {
			client.SetToken(*token)
		}
		user, err := client.Me(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, user)
	case "health":
		status, err := client.Health(ctx)
		if printErr := printJSON(out, status); printErr != nil {
			return printErr
		}
		return err
	case "version":
		v, err := client.Version(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "server: %s\n%s", v, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return err
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

type authResult struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
