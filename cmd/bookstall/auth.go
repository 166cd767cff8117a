/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ideal-institute/bookstall/cmd"
	"github.com/ideal-institute/bookstall/internal/app"
	"github.com/ideal-institute/bookstall/internal/colors"
	"github.com/ideal-institute/bookstall/internal/domain"
	"github.com/spf13/cobra"
)

type loginClient interface {
	Login(ctx context.Context, roll, password string) (domain.User, error)
}

type registerClient interface {
	Register(ctx context.Context, input app.RegisterInput) (domain.User, error)
}

type logoutClient interface {
	Logout() error
}

type whoamiClient interface {
	Whoami() (string, error)
}

// readSecret returns flagValue, or the next line of in when the flag is empty.
func readSecret(in io.Reader, out io.Writer, prompt, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// NewLoginCmd creates the login command with explicit dependencies.
func NewLoginCmd(client loginClient) *cobra.Command {
	if client == nil {
		panic("NewLoginCmd: client dependency cannot be nil")
	}

	var password string

	loginCmd := &cobra.Command{
		Use:   "login <roll-number>",
		Short: "Log in with your roll number",
		Long: `Log in with your 10-character roll number.

The password is read from --password or, when omitted, from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			pw, err := readSecret(c.InOrStdin(), c.ErrOrStderr(), "Password: ", password)
			if err != nil {
				return err
			}
			user, err := client.Login(c.Context(), strings.TrimSpace(args[0]), pw)
			if err != nil {
				return cmd.Describe(err)
			}
			colors.Success(fmt.Sprintf("Logged in as %s", user.RollNumber))
			return nil
		},
	}
	loginCmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	return loginCmd
}

// NewRegisterCmd creates the register command with explicit dependencies.
func NewRegisterCmd(client registerClient) *cobra.Command {
	if client == nil {
		panic("NewRegisterCmd: client dependency cannot be nil")
	}

	var (
		name     string
		password string
		confirm  string
	)

	registerCmd := &cobra.Command{
		Use:   "register <roll-number>",
		Short: "Create an account",
		Long: `Create an account and log in.

The password must be at least 6 characters. It is read from --password or,
when omitted, from standard input; --confirm defaults to the password.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			pw, err := readSecret(c.InOrStdin(), c.ErrOrStderr(), "Password: ", password)
			if err != nil {
				return err
			}
			if confirm == "" {
				confirm = pw
			}
			user, err := client.Register(c.Context(), app.RegisterInput{
				RollNumber:      strings.TrimSpace(args[0]),
				Name:            strings.TrimSpace(name),
				Password:        pw,
				ConfirmPassword: confirm,
			})
			if err != nil {
				return cmd.Describe(err)
			}
			colors.Success(fmt.Sprintf("Registered and logged in as %s", user.RollNumber))
			return nil
		},
	}
	registerCmd.Flags().StringVarP(&name, "name", "n", "", "Full name")
	registerCmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	registerCmd.Flags().StringVar(&confirm, "confirm", "", "Password confirmation")
	return registerCmd
}

// NewLogoutCmd creates the logout command with explicit dependencies.
func NewLogoutCmd(client logoutClient) *cobra.Command {
	if client == nil {
		panic("NewLogoutCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the session",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if err := client.Logout(); err != nil {
				return cmd.Describe(err)
			}
			colors.Success("Logged out")
			return nil
		},
	}
}

// NewWhoamiCmd creates the whoami command with explicit dependencies.
func NewWhoamiCmd(client whoamiClient) *cobra.Command {
	if client == nil {
		panic("NewWhoamiCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the roll number of the logged-in student",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			roll, err := client.Whoami()
			if err != nil {
				return cmd.Describe(err)
			}
			fmt.Fprintln(c.OutOrStdout(), roll)
			return nil
		},
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewLoginCmd(svc), NewRegisterCmd(svc), NewLogoutCmd(svc), NewWhoamiCmd(svc))
}
