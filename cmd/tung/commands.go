package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tungdeportes/tung-go/clients"
	"github.com/tungdeportes/tung-go/clients/tung_api_client"
	"github.com/tungdeportes/tung-go/internal/registration"
	"github.com/tungdeportes/tung-go/internal/retry"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newLoginCmd() *cobra.Command {
	var document, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with identity document and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.session.LogIn(cmd.Context(), document, password); err != nil {
				return fmt.Errorf("%s", registration.ClassifyError(err))
			}
			fmt.Println("Sesión iniciada")
			return nil
		},
	}

	cmd.Flags().StringVar(&document, "document", "", "identity document number")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("document")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Invalidate the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.session.LogOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Sesión cerrada")
			return nil
		},
	}
}

func newRegisterPlayerCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "register-player",
		Short: "Register a player account from a JSON form file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			input, err := readFormFile[playerFormInput](file)
			if err != nil {
				return err
			}
			form, err := input.toForm()
			if err != nil {
				return err
			}
			return printJSON(a.players.Register(cmd.Context(), form))
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to the player form JSON")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newRegisterHostCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "register-host",
		Short: "Register a field-host account from a JSON form file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			input, err := readFormFile[hostFormInput](file)
			if err != nil {
				return err
			}
			form, err := input.toForm()
			if err != nil {
				return err
			}
			return printJSON(a.hosts.Register(cmd.Context(), form))
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to the host form JSON")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newVerifyEmailCmd() *cobra.Command {
	var email, code string

	cmd := &cobra.Command{
		Use:   "verify-email",
		Short: "Confirm an emailed verification code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			resp, err := a.client.VerifyEmail(cmd.Context(), email, code)
			if err != nil {
				return fmt.Errorf("%s", registration.ClassifyError(err))
			}
			return printJSON(resp)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address to verify")
	cmd.Flags().StringVar(&code, "code", "", "verification code")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("code")
	return cmd
}

func newRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List role metadata from the backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			roles, err := fetchRoles(cmd.Context(), a.client)
			if err != nil {
				return fmt.Errorf("%s", registration.ClassifyError(err))
			}
			return printJSON(roles)
		},
	}
}

// fetchRoles retries transient transport failures. A definitive backend
// answer, even an error status, is never retried.
func fetchRoles(ctx context.Context, c *tung_api_client.TungApiClient) ([]tung_api_client.Role, error) {
	var roles []tung_api_client.Role
	var apiErr *clients.APIError
	err := retry.Do(ctx, 3, func() error {
		res, err := c.GetRoles(ctx)
		if errors.As(err, &apiErr) {
			return nil
		}
		if err != nil {
			return err
		}
		roles = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	if apiErr != nil {
		return nil, apiErr
	}
	return roles, nil
}
