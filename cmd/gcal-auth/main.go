// cmd/gcal-auth authorizes Google Calendar access for OAuth desktop-app
// credentials and stores the resulting token for the API server.
//
// Usage:
//
//	go run ./cmd/gcal-auth -credentials google-credentials.json -token token.json
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"

	"nurse-manager/pkg/gcalendar"
)

func main() {
	credsPath := flag.String("credentials", "google-credentials.json", "OAuth desktop-app credentials file")
	tokenPath := flag.String("token", "token.json", "where to write the OAuth token")
	flag.Parse()

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", *credsPath, err)
	}

	cfg, err := gcalendar.OAuthConfigFromJSON(data)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, *credsPath)
	}

	fmt.Println("Step 1: open this URL and sign in with the calendar's Google account:")
	fmt.Println()
	fmt.Println(cfg.AuthCodeURL("nuvanta", oauth2.AccessTypeOffline))
	fmt.Println()
	fmt.Print("Step 2: paste the authorization code and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := cfg.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	if err := gcalendar.SaveToken(*tokenPath, tok); err != nil {
		log.Fatalf("Failed to write %s: %v", *tokenPath, err)
	}

	fmt.Printf("\nToken saved to %s. Set google_calendar.token_path to it and restart the API.\n", *tokenPath)
}
