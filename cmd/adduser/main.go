// Command adduser registers a user account interactively. The password
// is read from the terminal without echo and never stored in plaintext.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/term"

	"github.com/dkhamitov/ipotracker/internal/common"
	"github.com/dkhamitov/ipotracker/internal/config"
	"github.com/dkhamitov/ipotracker/internal/logging"
	"github.com/dkhamitov/ipotracker/internal/repositories/repomanager"
	"github.com/dkhamitov/ipotracker/internal/services"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// getSimpleText prints a prompt to w and reads a single line of input.
// The trailing newline is trimmed; a partial line before EOF is kept.
func getSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// getPassword prompts for a password and reads it from the terminal
// without echo.
func getPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// optional converts an empty answer to a NULL column value.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func main() {
	ctx := context.Background()
	log := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.LoadConfig()

	db, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		log.Error(ctx, "error opening database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	reader := bufio.NewReader(os.Stdin)

	username, err := getSimpleText(reader, "Username", os.Stdout)
	if err != nil {
		log.Error(ctx, "error reading username", "error", err)
		os.Exit(1)
	}
	email, err := getSimpleText(reader, "Email", os.Stdout)
	if err != nil {
		log.Error(ctx, "error reading email", "error", err)
		os.Exit(1)
	}
	firstName, err := getSimpleText(reader, "First name (optional)", os.Stdout)
	if err != nil {
		log.Error(ctx, "error reading first name", "error", err)
		os.Exit(1)
	}
	lastName, err := getSimpleText(reader, "Last name (optional)", os.Stdout)
	if err != nil {
		log.Error(ctx, "error reading last name", "error", err)
		os.Exit(1)
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		log.Error(ctx, "error reading password", "error", err)
		os.Exit(1)
	}

	us := services.NewUserService(db, repomanager.NewPostgresRepositoryManager())

	id, err := us.Register(ctx, username, email, string(password), optional(firstName), optional(lastName))
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			log.Warn(ctx, "username or email already taken", "username", username)
			os.Exit(1)
		}
		log.Error(ctx, "error creating user", "error", err)
		os.Exit(1)
	}

	log.Info(ctx, "user created", "user_id", id, "username", username)
}
