package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Harry9429/Distro-app/config"
	"github.com/Harry9429/Distro-app/internal/app/model"
	"github.com/Harry9429/Distro-app/internal/app/repository"
	"github.com/Harry9429/Distro-app/internal/db"
	"github.com/Harry9429/Distro-app/pkg/util"
	"github.com/xuri/excelize/v2"
)

// Imports a product catalog from an XLSX export. Expected columns:
// name, sku, category, your_price, market_price, image, stock.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	productRepo := repository.NewProductRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	products, err := readProductsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total products to import: %d\n", len(products))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	batchSize := 500
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := productRepo.BulkCreate(products, batchSize); err != nil {
		log.Fatal("Failed to bulk create products:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total products imported: %d\n", len(products))
}

func readProductsFromXLSX(filePath string) ([]model.Product, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var products []model.Product
	seenSKUs := make(map[string]bool)
	skippedCount := 0

	for i, row := range rows {
		if i == 0 {
			// header row
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 4 {
			skippedCount++
			continue
		}

		name := strings.TrimSpace(row[0])
		sku := strings.TrimSpace(row[1])
		category := strings.TrimSpace(row[2])
		yourPrice := strings.TrimSpace(row[3])

		if name == "" || sku == "" || yourPrice == "" {
			skippedCount++
			continue
		}
		if util.ParsePrice(yourPrice) <= 0 {
			skippedCount++
			continue
		}
		if seenSKUs[sku] {
			skippedCount++
			continue
		}
		seenSKUs[sku] = true

		product := model.Product{
			Name:      name,
			SKU:       sku,
			Category:  category,
			YourPrice: yourPrice,
		}
		if len(row) > 4 {
			product.MarketPrice = strings.TrimSpace(row[4])
		}
		if len(row) > 5 {
			product.Image = strings.TrimSpace(row[5])
		}
		if len(row) > 6 {
			if stock, err := strconv.Atoi(strings.TrimSpace(row[6])); err == nil && stock >= 0 {
				product.StockQuantity = stock
			}
		}

		products = append(products, product)
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total rows: %d\n", len(rows)-1)
	fmt.Printf("  Valid products: %d\n", len(products))
	fmt.Printf("  Skipped rows: %d\n", skippedCount)

	return products, nil
}
