// Package cli is the interactive console for enrolling and verifying credentials.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"credgate/internal/delivery"
	deliverycontext "credgate/internal/delivery/context"
	domainerrors "credgate/internal/domain/errors"
	"credgate/internal/errors"
	"credgate/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/term"
)

const (
	menuEnroll = "1"
	menuVerify = "2"
	menuExit   = "3"
)

// ConsoleParams holds dependencies for the console, injected by Fx.
type ConsoleParams struct {
	fx.In

	Credential usecase.CredentialUsecase
	Logger     *slog.Logger
	Shutdowner fx.Shutdowner
}

type console struct {
	credential usecase.CredentialUsecase
	logger     *slog.Logger
	shutdowner fx.Shutdowner

	in  *bufio.Reader
	out io.Writer

	// readPassword reads a password without echo; nil means read a plain line.
	readPassword func() (string, error)
}

// NewConsole builds a console on stdin/stdout. Passwords are read without
// echo when stdin is a terminal.
func NewConsole(params ConsoleParams) delivery.Delivery {
	c := newConsole(params.Credential, params.Logger, os.Stdin, os.Stdout)
	c.shutdowner = params.Shutdowner

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		c.readPassword = func() (string, error) {
			password, err := term.ReadPassword(fd)
			fmt.Fprintln(c.out)
			if err != nil {
				return "", errors.Wrap(err, "read password")
			}

			return string(password), nil
		}
	}

	return c
}

func newConsole(credential usecase.CredentialUsecase, logger *slog.Logger, in io.Reader, out io.Writer) *console {
	return &console{
		credential: credential,
		logger:     logger,
		in:         bufio.NewReader(in),
		out:        out,
	}
}

// Serve runs the menu loop until the user exits, input ends, or ctx is done,
// then asks the application to shut down.
func (c *console) Serve(ctx context.Context) error {
	sessionID := uuid.NewString()
	logger := c.logger.With(slog.String("session_id", sessionID))
	ctx = deliverycontext.WithSessionID(ctx, sessionID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	logger.Info("Console session started")

	err := c.loop(ctx)
	if errors.Is(err, io.EOF) {
		err = nil
	}

	logger.Info("Console session ended")

	if c.shutdowner != nil {
		if shutdownErr := c.shutdowner.Shutdown(); shutdownErr != nil {
			logger.Error("Failed to shut down", slog.Any("error", shutdownErr))
		}
	}

	return err
}

func (c *console) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		c.println("Password-based Authentication System")
		c.println("1. Enroll new user")
		c.println("2. Verify user")
		c.println("3. Exit")

		choice, err := c.prompt("Enter your choice (1/2/3): ")
		if err != nil {
			return err
		}

		switch choice {
		case menuEnroll:
			err = c.enroll(ctx)
		case menuVerify:
			err = c.verify(ctx)
		case menuExit:
			c.println("Exiting...")

			return nil
		default:
			c.println("Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (c *console) enroll(ctx context.Context) error {
	var username string
	for {
		var err error
		username, err = c.prompt("Enter username (letters, numbers, and underscore only): ")
		if err != nil {
			return err
		}

		if err := c.credential.CheckUsername(ctx, username); err == nil {
			break
		}
		c.println("Invalid username. Please choose a different username.")
	}

	for {
		password, err := c.promptPassword("Enter password (at least 12 characters, with uppercase, lowercase, digit, and special character): ")
		if err != nil {
			return err
		}

		_, err = c.credential.Enroll(ctx, &usecase.EnrollInput{Username: username, Password: password})
		if err == nil {
			c.println("User enrolled successfully.")

			return nil
		}

		switch domainerrors.KindOf(err) {
		case domainerrors.KindPassword:
			c.println("Invalid password. Please choose a stronger password.")
		case domainerrors.KindEnroll, domainerrors.KindUsername:
			c.println("Invalid username. Please choose a different username.")

			return nil
		default:
			deliverycontext.GetLoggerOrDefault(ctx, c.logger).Error("Enrollment failed", slog.Any("error", err))
			c.println("Error: could not enroll user. Please try again later.")

			return nil
		}
	}
}

func (c *console) verify(ctx context.Context) error {
	username, err := c.prompt("Enter username: ")
	if err != nil {
		return err
	}

	password, err := c.promptPassword("Enter password: ")
	if err != nil {
		return err
	}

	out, err := c.credential.Verify(ctx, &usecase.VerifyInput{Username: username, Password: password})
	if err != nil {
		if domainerrors.KindOf(err) != domainerrors.KindAuth {
			deliverycontext.GetLoggerOrDefault(ctx, c.logger).Error("Verification failed", slog.Any("error", err))
		}
		c.println("Error: Invalid username or password.")

		return nil
	}

	c.println(fmt.Sprintf("Welcome, %s!", out.Username))

	return nil
}

// prompt prints label and reads one line, without its line ending.
func (c *console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}

		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (c *console) promptPassword(label string) (string, error) {
	if c.readPassword == nil {
		return c.prompt(label)
	}

	fmt.Fprint(c.out, label)

	return c.readPassword()
}

func (c *console) println(line string) {
	fmt.Fprintln(c.out, line)
}
