// ABOUTME: Order commands for buyers
// ABOUTME: Lists orders, shows one order and checks out the cart

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shopdemo/storefront/internal/client"
	"github.com/shopdemo/storefront/internal/guard"
)

var couponCode string

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List your orders (buyer)",
	Args:  cobra.NoArgs,
	Run:   bind(guard.OrdersRoute, runOrdersList),
}

var ordersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one order",
	Args:  cobra.ExactArgs(1),
	Run:   bind(guard.OrdersRoute, runOrdersGet),
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Turn the cart into an order",
	Args:  cobra.NoArgs,
	Run:   bind(guard.OrdersRoute, runCheckout),
}

func init() {
	rootCmd.AddCommand(ordersCmd)
	ordersCmd.AddCommand(ordersGetCmd, checkoutCmd)
	checkoutCmd.Flags().StringVar(&couponCode, "coupon", "", "Coupon code to apply")
}

func runOrdersList(ctx context.Context, a *app, w io.Writer, _ []string) int {
	orders, err := a.client.ListOrders(ctx)
	if err != nil {
		return a.fail(w, err)
	}
	if err := a.client.FillOrderProducts(ctx, orders); err != nil {
		return a.fail(w, err)
	}
	if IsJSONOutput() {
		writeJSON(w, orders)
	} else {
		fmt.Fprintln(w, formatOrdersHuman(orders))
	}
	return exitOK
}

func runOrdersGet(ctx context.Context, a *app, w io.Writer, args []string) int {
	orderID, err := parseID(args[0])
	if err != nil {
		return a.fail(w, err)
	}
	order, err := a.client.GetOrder(ctx, orderID)
	if err != nil {
		return a.fail(w, err)
	}
	filled := []client.Order{*order}
	if err := a.client.FillOrderProducts(ctx, filled); err != nil {
		return a.fail(w, err)
	}
	order = &filled[0]
	if IsJSONOutput() {
		writeJSON(w, order)
	} else {
		fmt.Fprintln(w, formatOrderHuman(order))
	}
	return exitOK
}

func runCheckout(ctx context.Context, a *app, w io.Writer, _ []string) int {
	order, err := a.client.Checkout(ctx, couponCode)
	if err != nil {
		return a.fail(w, err)
	}
	if IsJSONOutput() {
		writeJSON(w, order)
		return exitOK
	}
	fmt.Fprintln(w, "Order placed.")
	fmt.Fprintln(w, formatOrderHuman(order))
	return exitOK
}
