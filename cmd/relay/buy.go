package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relaymarket/relay-go/internal/domain/checkout"
	"github.com/relaymarket/relay-go/internal/service"
)

func newBuyCmd(cc *cmdContext) *cobra.Command {
	var (
		productID string
		variantID string
		draft     checkout.ShippingDraft
	)

	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Buy a variant at its current ask price",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			dest := "/buy/" + productID
			if d := service.ShopperGate(cc.core.Sessions.Snapshot(), dest); d.Verdict != service.VerdictAllow {
				return fmt.Errorf("not logged in; run `relay login` first")
			}

			wizard := cc.core.NewPurchaseWizard()
			if err := wizard.Start(ctx, productID, variantID); err != nil {
				return err
			}

			if wizard.CurrentStep() == service.StepSelectVariant {
				if variantID == "" {
					for _, v := range wizard.Variants() {
						if v.Buyable() {
							fmt.Printf("  %s  %s  ask %s\n", v.ID, v.Label, checkout.FormatPrice(*v.LowestPrice))
						} else {
							fmt.Printf("  %s  %s  no open ask\n", v.ID, v.Label)
						}
					}
					return fmt.Errorf("pass --variant to choose one of the options above")
				}
				if err := wizard.SelectVariant(variantID); err != nil {
					return err
				}
			}

			if err := wizard.SubmitShipping(ctx, draft); err != nil {
				return err
			}

			order, err := wizard.Commit(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("order complete: %s\n", order.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&productID, "product", "", "product id")
	cmd.Flags().StringVar(&variantID, "variant", "", "variant (option) id; omit to list options")
	cmd.Flags().StringVar(&draft.ReceiverName, "receiver", "", "receiver name")
	cmd.Flags().StringVar(&draft.ReceiverPhone, "phone", "", "receiver mobile number")
	cmd.Flags().StringVar(&draft.ZipCode, "zip", "", "postal code")
	cmd.Flags().StringVar(&draft.Address, "address", "", "address")
	cmd.Flags().StringVar(&draft.AddressDetail, "address-detail", "", "address detail")
	_ = cmd.MarkFlagRequired("product")
	return cmd
}
