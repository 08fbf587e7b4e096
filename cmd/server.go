package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/config"
	"storefront/internal/core"
	"storefront/internal/db"
	"storefront/internal/ethereum"
	"storefront/internal/http/handler"
	"storefront/internal/http/handler/middleware"
	"storefront/internal/http/payload"
	"storefront/internal/http/server"
	"storefront/internal/http/web"
	"storefront/internal/repository"
	"storefront/pkg/jwt"
	"storefront/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/cors"
)

var errChainMismatch error = errors.New("node chain id does not match configuration")

func Start() error {
	cfg, err := config.NewApp()
	if err != nil {
		fmt.Printf("failed to create config: %s\n", err)
		return err
	}

	logger := log.NewZapLogger("storefront", log.ParseLevel(cfg.LogLevel))
	defer logger.Sync()

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewStorefrontRepository(dbConn)
	if err := repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	client, err := ethclient.Dial(cfg.NodeURL)
	if err != nil {
		logger.Errorw("node connection failed", "error", err)
		return err
	}
	defer client.Close()

	market, err := ethereum.NewMarketplace(client, cfg.ContractAddress)
	if err != nil {
		logger.Errorw("failed to create marketplace client", "error", err)
		return err
	}

	chainID, err := market.ChainID(context.Background())
	if err != nil {
		logger.Errorw("failed to read chain id", "error", err)
		return err
	}
	if chainID.Int64() != cfg.ChainID {
		err = fmt.Errorf("%w: node %s, configured %d", errChainMismatch, chainID, cfg.ChainID)
		logger.Errorw("wrong network", "error", err)
		return err
	}

	logger.Infow("marketplace connected",
		"contract", market.Address().Hex(),
		"chain_id", chainID.Int64(),
		"network", cfg.NetworkName)

	// jwt service
	jwtService := jwt.NewJWTService([]byte(cfg.JWTSecret))

	storefront := core.NewStorefront(
		logger,
		repo,
		jwtService,
		market,
		core.Settings{
			ChainID:      cfg.ChainID,
			NetworkName:  cfg.NetworkName,
			ExplorerURL:  cfg.ExplorerURL,
			SessionTTL:   cfg.SessionTTL,
			ChallengeTTL: cfg.ChallengeTTL,
		})

	// receipt tracker
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tracker := core.NewReceiptTracker(logger, repo, market, cfg.ReceiptPollInterval)
	go tracker.Run(ctx)

	templates, err := web.NewTemplates()
	if err != nil {
		logger.Errorw("failed to parse templates", "error", err)
		return err
	}

	// handlers
	apiHlr := handler.NewStorefrontHandler(
		logger,
		payload.Decoder{},
		storefront,
		cfg.SecureCookie)
	pageHlr := handler.NewPageHandler(
		logger,
		storefront,
		templates)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	hdlr = cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", handler.AuthHeader, middleware.RequestIDHeader},
		AllowCredentials: true,
	}).Handler(hdlr)

	// register routes
	mux.HandleFunc(handler.Health, apiHlr.HandleHealth)

	mux.HandleFunc(handler.RequestChallenge, apiHlr.HandleRequestChallenge)
	mux.HandleFunc(handler.ConnectWallet, apiHlr.HandleConnectWallet)
	mux.HandleFunc(handler.DisconnectWallet, apiHlr.HandleDisconnectWallet)
	mux.HandleFunc(handler.GetWalletStatus, apiHlr.HandleWalletStatus)

	mux.HandleFunc(handler.GetItems, apiHlr.HandleGetItems)
	mux.HandleFunc(handler.GetItem, apiHlr.HandleGetItem)
	mux.HandleFunc(handler.BuyItem, apiHlr.HandleBuyItem)
	mux.HandleFunc(handler.GetSeller, apiHlr.HandleGetSeller)
	mux.HandleFunc(handler.GetSellerItems, apiHlr.HandleGetSellerItems)
	mux.HandleFunc(handler.GetPurchases, apiHlr.HandleGetPurchases)

	mux.HandleFunc(handler.GetDashboard, apiHlr.HandleSellerDashboard)
	mux.HandleFunc(handler.RegisterSeller, apiHlr.HandleRegisterSeller)
	mux.HandleFunc(handler.CreateItem, apiHlr.HandleCreateItem)
	mux.HandleFunc(handler.UpdateItem, apiHlr.HandleUpdateItem)
	mux.HandleFunc(handler.RemoveItem, apiHlr.HandleRemoveItem)
	mux.HandleFunc(handler.AssignItem, apiHlr.HandleAssignItem)

	mux.HandleFunc(handler.TrackTx, apiHlr.HandleTrackTransaction)
	mux.HandleFunc(handler.SubmitRawTx, apiHlr.HandleSubmitRawTransaction)
	mux.HandleFunc(handler.GetTransaction, apiHlr.HandleGetTransaction)
	mux.HandleFunc(handler.GetTransactions, apiHlr.HandleGetTransactions)

	// pages
	mux.HandleFunc(handler.StorefrontPage, pageHlr.HandleStorefront)
	mux.HandleFunc(handler.ItemPage, pageHlr.HandleItem)
	mux.HandleFunc(handler.SellerPage, pageHlr.HandleSeller)
	mux.HandleFunc(handler.PurchasesPage, pageHlr.HandlePurchases)
	mux.Handle(handler.StaticFiles, web.Static())

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
