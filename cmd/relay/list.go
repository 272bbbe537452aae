package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relaymarket/relay-go/internal/domain/checkout"
	"github.com/relaymarket/relay-go/internal/service"
)

func newOrdersCmd(cc *cmdContext) *cobra.Command {
	var page, size int

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List my orders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if d := service.ShopperGate(cc.core.Sessions.Snapshot(), "/mypage/orders"); d.Verdict != service.VerdictAllow {
				return fmt.Errorf("not logged in; run `relay login` first")
			}
			result, err := cc.core.Orders.ListMine(cmd.Context(), page, size)
			if err != nil {
				return err
			}
			for _, order := range result.Content {
				fmt.Printf("  %s  %s\n", order.ID, order.Status)
			}
			fmt.Printf("%d order(s)\n", result.TotalElements)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&size, "size", 20, "page size")
	return cmd
}

func newBidsCmd(cc *cmdContext) *cobra.Command {
	var page, size int

	cmd := &cobra.Command{
		Use:   "bids",
		Short: "List my selling bids",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if d := service.ShopperGate(cc.core.Sessions.Snapshot(), "/mypage/sales"); d.Verdict != service.VerdictAllow {
				return fmt.Errorf("not logged in; run `relay login` first")
			}
			result, err := cc.core.Bids.ListMine(cmd.Context(), page, size)
			if err != nil {
				return err
			}
			for _, bid := range result.Content {
				fmt.Printf("  %s  %s  %s\n", bid.ID, bid.Status, checkout.FormatPrice(bid.Price))
			}
			fmt.Printf("%d bid(s)\n", result.TotalElements)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&size, "size", 20, "page size")
	return cmd
}
