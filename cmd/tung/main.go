// Command tung is a terminal front end for the TUNG registration SDK:
// log in, register players and field hosts, verify emails, inspect roles.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "tung",
		Short:         "Client for the TUNG sports platform backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newRegisterPlayerCmd(),
		newRegisterHostCmd(),
		newVerifyEmailCmd(),
		newRolesCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
