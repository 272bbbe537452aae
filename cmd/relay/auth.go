package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relaymarket/relay-go/internal/ports"
)

func newLoginCmd(cc *cmdContext) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as a shopper",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cc.core.Sessions.LoginShopper(cmd.Context(), email, password); err != nil {
				return err
			}
			snap := cc.core.Sessions.Snapshot()
			fmt.Printf("logged in as %s (%s)\n", snap.Principal.DisplayName, snap.Principal.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newStaffLoginCmd(cc *cmdContext) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "staff-login",
		Short: "Log in as a staff member",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cc.core.Sessions.LoginStaff(cmd.Context(), email, password); err != nil {
				return err
			}
			snap := cc.core.Sessions.Snapshot()
			fmt.Printf("logged in as %s (role %s)\n", snap.Principal.DisplayName, snap.StaffRole)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "staff email")
	cmd.Flags().StringVar(&password, "password", "", "staff password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newSignupCmd(cc *cmdContext) *cobra.Command {
	var email, password, name, phone string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a shopper account (log in separately afterward)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := cc.core.Sessions.Signup(cmd.Context(), ports.SignupInput{
				Email:       email,
				Password:    password,
				DisplayName: name,
				Phone:       phone,
			})
			if err != nil {
				return err
			}
			fmt.Println("account created; run `relay login` to sign in")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&phone, "phone", "", "mobile number")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newLogoutCmd(cc *cmdContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear local session state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cc.core.Sessions.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("logged out")
			return nil
		},
	}
}

func newWhoamiCmd(cc *cmdContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(*cobra.Command, []string) error {
			snap := cc.core.Sessions.Snapshot()
			if !snap.IsAuthenticated {
				fmt.Println("not logged in")
				return nil
			}
			if snap.IsStaff {
				fmt.Printf("staff: %s <%s> role=%s\n", snap.Principal.DisplayName, snap.Principal.Email, snap.StaffRole)
				return nil
			}
			fmt.Printf("shopper: %s <%s>\n", snap.Principal.DisplayName, snap.Principal.Email)
			return nil
		},
	}
}
