package commands

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Prudhvirajchenneboyina/buyhatke-scraper/cmd/hatke-cli/utils"
	"github.com/Prudhvirajchenneboyina/buyhatke-scraper/lib/scrapers/buyhatke"
	"github.com/Prudhvirajchenneboyina/buyhatke-scraper/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search for a product, pick one, and compare merchant offers.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		stdin := bufio.NewReader(os.Stdin)

		var query string
		if len(args) > 0 {
			query = strings.TrimSpace(args[0])
		} else {
			query = promptLine(stdin, "Enter product name: ")
		}
		if query == "" {
			fmt.Println("No product entered.")
			return
		}

		client := createClient()

		hits, err := client.Search(cmd.Context(), query)
		if err != nil {
			serviceutil.Fatal("search failed", err)
		}
		if len(hits) == 0 {
			fmt.Println("No products found.")
			return
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"#", "Product"})
		for i, hit := range hits {
			t.AppendRow(table.Row{i + 1, hit.Title})
		}
		t.Render()

		input := promptLine(stdin, "\nEnter the number of the product you want to view: ")
		choice, err := strconv.Atoi(input)
		if err != nil || choice < 1 || choice > len(hits) {
			fmt.Println("Invalid choice.")
			return
		}

		selected := hits[choice-1]
		fmt.Printf("\nYou selected: %s\n\n", selected.Title)
		slog.Debug("fetching offers", "url", selected.RedirectUrl)

		offers, err := client.Offers(cmd.Context(), selected.RedirectUrl)
		if err != nil {
			serviceutil.Fatal("failed to fetch offers", err)
		}
		printOffers(offers)
	},
}

func promptLine(stdin *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func printOffers(offers []buyhatke.Offer) {
	if len(offers) == 0 {
		fmt.Println("No offers found.")
		return
	}

	t := utils.NewTable()
	t.AppendHeader(table.Row{"Merchant", "Price", "URL"})
	for _, offer := range offers {
		t.AppendRow(table.Row{offer.Merchant, offer.Price, offer.Url})
	}
	t.Render()

	cheapest, ok := buyhatke.Cheapest(offers)
	if ok {
		fmt.Printf("\nLowest price: %s at %s\n", cheapest.Merchant, cheapest.Price)
	}
}
