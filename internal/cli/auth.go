package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagFullName string
	flagEmail    string
	flagPassword string
	flagConfirm  string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		confirm := flagConfirm
		if confirm == "" {
			confirm = flagPassword
		}
		account, err := a.directory.Register(cmd.Context(), flagFullName, flagEmail, flagPassword, confirm)
		if err != nil {
			return err
		}
		fmt.Printf("Registered %s <%s>\n", account.FullName, account.Email)
		return nil
	},
}

var signInCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in and persist the session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		sess, err := a.sessions.SignIn(cmd.Context(), flagEmail, flagPassword)
		if err != nil {
			return err
		}
		fmt.Printf("Hi, %s\n", sess.FullName)
		return nil
	},
}

var signOutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Clear the active session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		a.sessions.SignOut(cmd.Context())
		fmt.Println("Signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		sess, ok := a.sessions.Current(cmd.Context())
		if !ok {
			fmt.Println("Not signed in")
			return nil
		}
		fmt.Printf("%s <%s>\n", sess.FullName, sess.Email)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&flagFullName, "name", "", "Full name")
	registerCmd.Flags().StringVar(&flagEmail, "email", "", "Email address")
	registerCmd.Flags().StringVar(&flagPassword, "password", "", "Password")
	registerCmd.Flags().StringVar(&flagConfirm, "confirm", "", "Password confirmation (defaults to --password)")

	signInCmd.Flags().StringVar(&flagEmail, "email", "", "Email address")
	signInCmd.Flags().StringVar(&flagPassword, "password", "", "Password")
}
