package main

import (
	"fmt"
	"net"

	pb "market-indexes/src/grpc_control"
	"market-indexes/src/interfaces"
	"market-indexes/src/logger"
	"market-indexes/src/models"
	"market-indexes/src/server"
	"market-indexes/src/service"

	"google.golang.org/grpc"
)

// -----------------------------------------------------------------------------

// startServers starts the HTTP/WebSocket server and the gRPC query server.
// The HTTP server doubles as the responder's update notifier.
func startServers(
	config *models.MConfig,
	processor interfaces.IQueryProcessor,
	responder *service.Responder,
	appLogger *logger.Logger,
) (*server.FastAPIServer, *grpc.Server) {

	// 1. FastAPIServer, attached before any query can reach the responder
	srv := server.NewFastAPIServer(config, processor, appLogger.Named("FastAPIServer"))
	responder.Notifier = srv
	go func() {
		if err := srv.Start(); err != nil {
			appLogger.Critical("Server failed: %v", err)
		}
	}()

	// 2. gRPC Query Server
	grpcServer := grpc.NewServer()
	queryService := pb.NewQueryService(config, processor, appLogger.Named("QueryService"))
	pb.RegisterIndexesQueryServer(grpcServer, queryService)

	go func() {
		addr := fmt.Sprintf("%s:%d", config.GrpcHost, config.GrpcPort)
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			appLogger.Critical("failed to listen for gRPC: %v", err)
			return
		}

		appLogger.Info("Starting gRPC Query Server on %s", addr)
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Critical("failed to serve gRPC: %v", err)
		}
	}()

	return srv, grpcServer
}
