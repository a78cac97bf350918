package main

import (
	"time"

	"market-indexes/src/data_source/cafef"
	"market-indexes/src/data_source/vietcombank"
	"market-indexes/src/data_source/vietstock"
	"market-indexes/src/interfaces"
	"market-indexes/src/logger"
	"market-indexes/src/models"
	"market-indexes/src/network"
	"market-indexes/src/service"
	"market-indexes/src/storage"
	"market-indexes/src/utils"
)

// -----------------------------------------------------------------------------

// setupCacheStore builds the configured cache store and connects it
func setupCacheStore(config *models.MConfig, appLogger *logger.Logger) (interfaces.ICacheStore, error) {
	storeLogger := appLogger.Named("CacheStore")
	store, err := storage.NewCacheStore(config, storeLogger)
	if err != nil {
		return nil, err
	}
	if err := store.Initialize(); err != nil {
		return nil, err
	}
	appLogger.Info("Cache store ready (%s)", config.Cache.Provider)
	return store, nil
}

// -----------------------------------------------------------------------------

// setupNetwork initializes the network manager
func setupNetwork(config *models.MConfig) interfaces.INetworkManager {
	return network.NewAsyncNetworkManager(config, logger.NewLogger("NetworkManager"))
}

// -----------------------------------------------------------------------------

// setupService wires the upstream sources, market hours and cache into the
// query service. The responder is returned so its notifier can be attached
// once the server exists.
func setupService(
	config *models.MConfig,
	store interfaces.ICacheStore,
	networkManager interfaces.INetworkManager,
	appLogger *logger.Logger,
) (*service.IndexesService, *service.Responder) {
	scheduler := utils.NewMarketScheduler(config.Market, appLogger.Named("MarketScheduler"))

	upstream := config.Upstream
	quotes := vietstock.NewStockQuoteSource(upstream.VietStock, networkManager, scheduler.Now, appLogger.Named("VietStock"))
	rates := vietcombank.NewExchangeRateSource(networkManager, upstream.Vietcombank, appLogger.Named("Vietcombank"))
	indexes := cafef.NewStockIndexSource(networkManager, upstream.CafeF, appLogger.Named("CafeF"))

	responder := service.NewResponder(store, nil, time.Now, appLogger.Named("Responder"))

	svc := &service.IndexesService{
		Responder:  responder,
		Quotes:     quotes,
		Rates:      rates,
		Indexes:    indexes,
		Market:     scheduler,
		QuoteTTL:   utils.NewMarketHoursTTL(scheduler, config.Cache.StockQuote),
		IndexesTTL: utils.NewMarketHoursTTL(scheduler, config.Cache.StockIndexes),
		RatesTTL:   utils.NewMarketHoursTTL(scheduler, config.Cache.ExchangeRates),
		Logger:     appLogger.Named("IndexesService"),
	}

	appLogger.Info("Market %s open: %v", config.Market.MIC, scheduler.IsOpen())
	return svc, responder
}
