// ABOUTME: Product commands: browse the catalog and manage a seller's products
// ABOUTME: Browsing is public; mine/create/update/delete require a seller session

package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shopdemo/storefront/internal/client"
	"github.com/shopdemo/storefront/internal/guard"
)

var productInput client.ProductInput

var productsCmd = &cobra.Command{
	Use:     "products",
	Aliases: []string{"product"},
	Short:   "Browse and manage products",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalog",
	Args:  cobra.NoArgs,
	Run:   bind(guard.ProductsRoute, runProductsList),
}

var productsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	Run:   bind(guard.ProductsRoute, runProductsGet),
}

var productsMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your products (seller)",
	Args:  cobra.NoArgs,
	Run:   bind(guard.SellerProducts, runProductsMine),
}

var productsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product (seller)",
	Args:  cobra.NoArgs,
	Run:   bind(guard.SellerProductsNew, runProductsCreate),
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a product's fields (seller)",
	Args:  cobra.ExactArgs(1),
	Run:   bind(guard.SellerProductsEdit, runProductsUpdate),
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product (seller)",
	Args:  cobra.ExactArgs(1),
	Run:   bind(guard.SellerProductsEdit, runProductsDelete),
}

var productsUploadCmd = &cobra.Command{
	Use:   "upload-image <path>",
	Short: "Upload a product image and print its URL (seller)",
	Args:  cobra.ExactArgs(1),
	Run:   bind(guard.SellerProductsNew, runProductsUpload),
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.AddCommand(productsListCmd, productsGetCmd, productsMineCmd,
		productsCreateCmd, productsUpdateCmd, productsDeleteCmd, productsUploadCmd)

	for _, c := range []*cobra.Command{productsCreateCmd, productsUpdateCmd} {
		c.Flags().StringVar(&productInput.Name, "name", "", "Product name")
		c.Flags().StringVar(&productInput.Description, "description", "", "Product description")
		c.Flags().Float64Var(&productInput.Price, "price", 0, "Unit price")
		c.Flags().IntVar(&productInput.Stock, "stock", 0, "Units in stock")
		c.Flags().StringVar(&productInput.ImageURL, "image-url", "", "Image URL (see upload-image)")
	}
}

// parseID reads a positive numeric id argument
func parseID(arg string) (int64, error) {
	v, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive number", arg)
	}
	return v, nil
}

func runProductsList(ctx context.Context, a *app, w io.Writer, _ []string) int {
	products, err := a.client.ListProducts(ctx)
	if err != nil {
		return a.fail(w, err)
	}
	return printProducts(w, products)
}

func runProductsGet(ctx context.Context, a *app, w io.Writer, args []string) int {
	productID, err := parseID(args[0])
	if err != nil {
		return a.fail(w, err)
	}
	p, err := a.client.GetProduct(ctx, productID)
	if err != nil {
		return a.fail(w, err)
	}
	return printProduct(w, p)
}

func runProductsMine(ctx context.Context, a *app, w io.Writer, _ []string) int {
	products, err := a.client.MyProducts(ctx)
	if err != nil {
		return a.fail(w, err)
	}
	return printProducts(w, products)
}

func runProductsCreate(ctx context.Context, a *app, w io.Writer, _ []string) int {
	p, err := a.client.CreateProduct(ctx, &productInput)
	if err != nil {
		return a.fail(w, err)
	}
	return printProduct(w, p)
}

func runProductsUpdate(ctx context.Context, a *app, w io.Writer, args []string) int {
	productID, err := parseID(args[0])
	if err != nil {
		return a.fail(w, err)
	}
	p, err := a.client.UpdateProduct(ctx, productID, &productInput)
	if err != nil {
		return a.fail(w, err)
	}
	return printProduct(w, p)
}

func runProductsDelete(ctx context.Context, a *app, w io.Writer, args []string) int {
	productID, err := parseID(args[0])
	if err != nil {
		return a.fail(w, err)
	}
	if err := a.client.DeleteProduct(ctx, productID); err != nil {
		return a.fail(w, err)
	}
	fmt.Fprintf(w, "Deleted product #%d.\n", productID)
	return exitOK
}

func runProductsUpload(ctx context.Context, a *app, w io.Writer, args []string) int {
	upload, err := a.client.UploadImage(ctx, args[0])
	if err != nil {
		return a.fail(w, err)
	}
	if IsJSONOutput() {
		writeJSON(w, upload)
		return exitOK
	}
	fmt.Fprintln(w, upload.URL)
	return exitOK
}

func printProducts(w io.Writer, products []client.Product) int {
	if IsJSONOutput() {
		writeJSON(w, products)
	} else {
		fmt.Fprintln(w, formatProductsHuman(products))
	}
	return exitOK
}

func printProduct(w io.Writer, p *client.Product) int {
	if IsJSONOutput() {
		writeJSON(w, p)
	} else {
		fmt.Fprintln(w, formatProductHuman(p))
	}
	return exitOK
}
