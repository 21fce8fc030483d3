package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cantina/config"
	"cantina/ledger"
	"cantina/logger"
	"cantina/router"
	"cantina/service"
	"cantina/storage"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

// @title Cantina Financeira API
// @version 1.0
// @description Controle financeiro de uma cantina: receitas, despesas, categorias, painel mensal e relatórios.
// @host localhost:8080
// @BasePath /

const version = "1.0.0"

const shutdownTimeout = 10 * time.Second

var (
	configFile  string
	port        string
	driver      string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.StringVar(&driver, "storage", "", "存储驱动: file, sqlite, mysql, memory")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Printf("Cantina Financeira v%s", version)
		return
	}

	// .env 可选
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("警告: 读取 .env 失败: %v", err)
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
	}
	if driver != "" {
		cfg.Storage.Driver = driver
		if err := cfg.Validate(); err != nil {
			log.Fatalf("%v", err)
		}
	}

	logr := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	adapter, cleanup, err := storage.Open(ctx, cfg.Storage, logr)
	if err != nil {
		logr.WithError(err).Fatal("存储初始化失败")
	}

	store := ledger.New(adapter, ledger.WithLogger(logr))
	store.Load(storage.LoadOrDefault(ctx, adapter, logr))

	mailer := service.NewReportMailer(&cfg.Email)
	if !mailer.Enabled() {
		logr.Info("邮件服务未启用")
	}

	r := router.SetupRouter(cfg, router.Deps{
		Store:  store,
		Mailer: mailer,
		Log:    logr,
		Now:    time.Now,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logr.WithField("addr", cfg.Server.Port).Info("Cantina Financeira 已启动")
		logr.Infof("Swagger: http://localhost%s/swagger/index.html", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logr.Info("正在关闭服务...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logr.WithError(err).Warn("HTTP 服务关闭超时")
		}
		if err := store.Flush(shutdownCtx); err != nil {
			logr.WithError(err).Error("退出前写入快照失败")
		}
		return cleanup()
	})

	if err := g.Wait(); err != nil {
		logr.WithError(err).Fatal("服务异常退出")
	}
	logr.Info("服务已停止")
}
