package main

import (
	"context"
	"fmt"
	"net"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"liyu1981.xyz/logify-service/pkg/auth"
	"liyu1981.xyz/logify-service/pkg/common"
	"liyu1981.xyz/logify-service/pkg/db"
	logifyGrpc "liyu1981.xyz/logify-service/pkg/grpc"
	logifyHttp "liyu1981.xyz/logify-service/pkg/http"
	"liyu1981.xyz/logify-service/pkg/logify"
	"liyu1981.xyz/logify-service/pkg/markdown"
	"liyu1981.xyz/logify-service/pkg/upload"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server, and the gRPC meter service when LOGIFY_GRPC_HOST_PORT is set",
		RunE:  runServe,
	}
}

func newLogifyCore(cfg *common.Config) *logify.Logify {
	dbInstance := db.GetInstance(db.UseDialector(cfg.DBType, cfg.DBPath))

	logifyCore := &logify.Logify{
		Db:     *dbInstance,
		Hasher: auth.NewBcryptPasswordHasher(cfg.BcryptCost),
	}
	return logifyCore.WithDefaultServices()
}

func newUploader(ctx context.Context, cfg *common.Config) (*upload.Uploader, func(), error) {
	switch cfg.UploadBackend {
	case "gcs":
		backend, err := upload.NewGCSBackend(ctx, cfg.GcsBucket)
		if err != nil {
			return nil, nil, err
		}
		return upload.NewUploader(backend), func() { _ = backend.Close() }, nil
	default:
		backend, err := upload.NewLocalBackend(cfg.UploadDir)
		if err != nil {
			return nil, nil, err
		}
		return upload.NewUploader(backend), func() {}, nil
	}
}

func serveGrpc(cfg *common.Config, logifyCore *logify.Logify, logger *zap.Logger) {
	meterServer := logifyGrpc.MeterServer{
		Logify:           logifyCore,
		RateLimiterStore: logify.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst),
	}
	interceptor := meterServer.CreateRateLimitInterceptor([]string{
		logifyGrpc.MeterServiceAddReadingMethod,
	})
	s := grpc.NewServer(grpc.UnaryInterceptor(interceptor))
	logifyGrpc.RegisterMeterServiceServer(s, &meterServer)

	listener, err := net.Listen("tcp", cfg.GrpcHostPort)
	if err != nil {
		logger.Fatal("failed to listen", zap.String("addr", cfg.GrpcHostPort), zap.Error(err))
	}

	logger.Info("start gRPC server on " + cfg.GrpcHostPort)
	if err := s.Serve(listener); err != nil {
		logger.Fatal("grpc server failed to serve", zap.Error(err))
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := common.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.GetLogger()
	logifyCore := newLogifyCore(cfg)

	gate, err := auth.NewGate(logifyCore.Db.Conn)
	if err != nil {
		return fmt.Errorf("failed to build access gate: %w", err)
	}

	uploader, closeUploader, err := newUploader(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create %s upload backend: %w", cfg.UploadBackend, err)
	}
	defer closeUploader()

	if cfg.GrpcHostPort != "" {
		logger.Info("Starting gRPC server on port " + cfg.GrpcHostPort)
		go serveGrpc(cfg, logifyCore, logger)
	}

	if common.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rs := &logifyHttp.RestfulServer{
		Server:           gin.Default(),
		Logify:           logifyCore,
		RateLimiterStore: logify.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst),
		JWT:              auth.NewJWTService(cfg.JwtSecret, cfg.JwtTTL),
		Gate:             gate,
		Markdown:         markdown.NewRenderer(),
		Uploader:         uploader,
		SecureCookie:     common.IsProduction(),
	}
	if cfg.UploadBackend == "local" {
		rs.UploadDir = cfg.UploadDir
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", cfg.DefaultRate, cfg.DefaultBurst)),
		zap.String("upload_backend", cfg.UploadBackend))

	logger.Info("Starting HTTP server on: " + cfg.HttpHostPort)
	if err := rs.Server.Run(cfg.HttpHostPort); err != nil {
		return fmt.Errorf("http server failed to serve: %w", err)
	}
	return nil
}
