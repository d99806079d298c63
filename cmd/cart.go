// ABOUTME: Cart commands for buyers
// ABOUTME: list, add, update and remove cart items

package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shopdemo/storefront/internal/guard"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage your cart (buyer)",
	Args:  cobra.NoArgs,
	Run:   bind(guard.CartRoute, runCartList),
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id> [quantity]",
	Short: "Add a product to the cart",
	Args:  cobra.RangeArgs(1, 2),
	Run:   bind(guard.CartRoute, runCartAdd),
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update <item-id> <quantity>",
	Short: "Change the quantity of a cart item",
	Args:  cobra.ExactArgs(2),
	Run:   bind(guard.CartRoute, runCartUpdate),
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <item-id>",
	Short: "Remove an item from the cart",
	Args:  cobra.ExactArgs(1),
	Run:   bind(guard.CartRoute, runCartRemove),
}

func init() {
	rootCmd.AddCommand(cartCmd)
	cartCmd.AddCommand(cartAddCmd, cartUpdateCmd, cartRemoveCmd)
}

func parseQuantity(arg string) (int, error) {
	q, err := strconv.Atoi(arg)
	if err != nil || q < 1 {
		return 0, fmt.Errorf("invalid quantity %q: must be at least 1", arg)
	}
	return q, nil
}

func runCartList(ctx context.Context, a *app, w io.Writer, _ []string) int {
	items, err := a.client.GetCart(ctx)
	if err != nil {
		return a.fail(w, err)
	}
	if IsJSONOutput() {
		writeJSON(w, items)
	} else {
		fmt.Fprintln(w, formatCartHuman(items))
	}
	return exitOK
}

func runCartAdd(ctx context.Context, a *app, w io.Writer, args []string) int {
	productID, err := parseID(args[0])
	if err != nil {
		return a.fail(w, err)
	}
	quantity := 1
	if len(args) == 2 {
		if quantity, err = parseQuantity(args[1]); err != nil {
			return a.fail(w, err)
		}
	}

	item, err := a.client.AddToCart(ctx, productID, quantity)
	if err != nil {
		return a.fail(w, err)
	}
	if IsJSONOutput() {
		writeJSON(w, item)
		return exitOK
	}
	fmt.Fprintf(w, "Added %d x product #%d to cart (item #%d).\n", item.Quantity, productID, item.ID)
	return exitOK
}

func runCartUpdate(ctx context.Context, a *app, w io.Writer, args []string) int {
	itemID, err := parseID(args[0])
	if err != nil {
		return a.fail(w, err)
	}
	quantity, err := parseQuantity(args[1])
	if err != nil {
		return a.fail(w, err)
	}

	item, err := a.client.UpdateCartItem(ctx, itemID, quantity)
	if err != nil {
		return a.fail(w, err)
	}
	if IsJSONOutput() {
		writeJSON(w, item)
		return exitOK
	}
	fmt.Fprintf(w, "Cart item #%d now has quantity %d.\n", item.ID, item.Quantity)
	return exitOK
}

func runCartRemove(ctx context.Context, a *app, w io.Writer, args []string) int {
	itemID, err := parseID(args[0])
	if err != nil {
		return a.fail(w, err)
	}
	if err := a.client.RemoveCartItem(ctx, itemID); err != nil {
		return a.fail(w, err)
	}
	fmt.Fprintf(w, "Removed cart item #%d.\n", itemID)
	return exitOK
}
