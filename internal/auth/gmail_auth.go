package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
)

// GmailScope lets the board send mail on behalf of the authorized account.
const GmailScope = gmail.GmailSendScope

// LoadConfig reads the OAuth client credentials file.
func LoadConfig(credentialsFile string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read client secret file: %w", err)
	}
	config, err := google.ConfigFromJSON(b, GmailScope)
	if err != nil {
		return nil, fmt.Errorf("parse client secret file: %w", err)
	}
	return config, nil
}

// GetGmailClient returns an HTTP client authorized with the token saved in
// tokenFile. It never prompts; run cmd/gmail-auth once to create the token.
func GetGmailClient(ctx context.Context, credentialsFile, tokenFile string) (*http.Client, error) {
	config, err := LoadConfig(credentialsFile)
	if err != nil {
		return nil, err
	}
	tok, err := tokenFromFile(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("read token file %s: %w", tokenFile, err)
	}
	return config.Client(ctx, tok), nil
}

// AuthorizeInteractive prints the consent URL to out, reads the code from in
// and saves the resulting token to tokenFile.
func AuthorizeInteractive(ctx context.Context, config *oauth2.Config, tokenFile string, in io.Reader, out io.Writer) error {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintf(out, "\n---------------------------------------------------------\n")
	fmt.Fprintf(out, "OPEN THIS LINK TO AUTHORIZE GMAIL ACCESS:\n%v\n", authURL)
	fmt.Fprintf(out, "---------------------------------------------------------\n")
	fmt.Fprintf(out, "Paste the code here: ")

	var authCode string
	if _, err := fmt.Fscan(in, &authCode); err != nil {
		return fmt.Errorf("read authorization code: %w", err)
	}

	tok, err := config.Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}
	return saveToken(tokenFile, tok)
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}

func saveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("cache oauth token: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}
