package main

import (
	"log"
	"os"

	"shopplus/config"
	"shopplus/internal/cli"
	"shopplus/internal/service"
	"shopplus/internal/store"
	"shopplus/internal/util"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting shopplus")

	accountStore := store.NewAccountStore(cfg.Data.AccountsFile)
	productStore := store.NewProductStore(cfg.Data.ProductsFile)
	orderStore := store.NewOrderStore(cfg.Data.OrdersFile)
	shipmentStore := store.NewShipmentStore(cfg.Data.ShipmentsFile)

	accounts, err := service.NewAccountService(accountStore)
	if err != nil {
		log.Fatalf("Failed to load accounts: %v", err)
	}
	inventory, err := service.NewInventoryService(productStore)
	if err != nil {
		log.Fatalf("Failed to load products: %v", err)
	}
	orders, err := service.NewOrderBook(orderStore)
	if err != nil {
		log.Fatalf("Failed to load orders: %v", err)
	}
	processor := service.NewShipmentProcessor(inventory, orders, shipmentStore)

	menu := cli.NewMenu(accounts, inventory, orders, processor, os.Stdin, os.Stdout)
	menu.Run()

	logger.Info("Shopplus exited")
}
