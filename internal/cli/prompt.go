package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/labreserve/switch-console/internal/core/domain"
)

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value is required")
	}
	return nil
}

// readCredentials reads the password from in when fromStdin is set, and asks
// for anything missing otherwise.
func readCredentials(in io.Reader, username string, fromStdin bool) (domain.Credentials, error) {
	if fromStdin {
		if username == "" {
			return domain.Credentials{}, errors.New("--username is required with --password-stdin")
		}
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return domain.Credentials{}, fmt.Errorf("read password: %w", err)
		}
		password := strings.TrimRight(line, "\r\n")
		if password == "" {
			return domain.Credentials{}, errors.New("empty password on stdin")
		}
		return domain.Credentials{Username: username, Password: password}, nil
	}

	creds := domain.Credentials{Username: username}
	var fields []huh.Field
	if username == "" {
		fields = append(fields, huh.NewInput().
			Title("Username").
			Validate(required).
			Value(&creds.Username))
	}
	fields = append(fields, huh.NewInput().
		Title("Password").
		EchoMode(huh.EchoModePassword).
		Validate(required).
		Value(&creds.Password))

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return domain.Credentials{}, fmt.Errorf("prompt failed: %w", err)
	}
	return creds, nil
}
