package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relaymarket/relay-go/internal/service"
)

func newSellCmd(cc *cmdContext) *cobra.Command {
	var (
		productID string
		variantID string
		price     string
	)

	cmd := &cobra.Command{
		Use:   "sell",
		Short: "List a variant for sale at an asking price",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if d := service.ShopperGate(cc.core.Sessions.Snapshot(), "/sell"); d.Verdict != service.VerdictAllow {
				return fmt.Errorf("not logged in; run `relay login` first")
			}

			wizard := cc.core.NewListingWizard()
			if err := wizard.Start(ctx, productID); err != nil {
				return err
			}

			if variantID == "" {
				for _, v := range wizard.Variants() {
					fmt.Printf("  %s  %s\n", v.ID, v.Label)
				}
				return fmt.Errorf("pass --variant to choose one of the options above")
			}
			if err := wizard.SelectVariant(variantID); err != nil {
				return err
			}

			bid, err := wizard.Commit(ctx, price)
			if err != nil {
				return err
			}
			fmt.Printf("listing created: %s\n", bid.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&productID, "product", "", "product id")
	cmd.Flags().StringVar(&variantID, "variant", "", "variant (option) id; omit to list options")
	cmd.Flags().StringVar(&price, "price", "", `asking price, e.g. "150,000"`)
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}
