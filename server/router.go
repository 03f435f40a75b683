package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sat20-labs/ordinals/common"
	"github.com/sat20-labs/ordinals/config"
	"github.com/sat20-labs/ordinals/indexer/subsidy"
	"github.com/sat20-labs/ordinals/server/ordinals"
)

const (
	STRICT_TRANSPORT_SECURITY   = "strict-transport-security"
	CONTENT_SECURITY_POLICY     = "content-security-policy"
	VARY                        = "vary"
	ACCESS_CONTROL_ALLOW_ORIGIN = "access-control-allow-origin"
)

type Rpc struct {
	ordinalsService *ordinals.Service

	api          *config.API
	initApiConf  bool
	apiConfMutex sync.Mutex
	apiLimitMap  sync.Map

	srv *http.Server
}

func NewRpc(registry *subsidy.Registry, chain string, cacheSize int) *Rpc {
	return &Rpc{
		ordinalsService: ordinals.NewService(registry, chain, cacheSize),
	}
}

// NewEngine builds the gin engine with logging, CORS, API key checks and
// every route mounted under rpcProxy.
func (s *Rpc) NewEngine(rpcProxy, rpcLogFile string, apiConf *config.API) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	var writers []io.Writer
	if rpcLogFile != "" {
		exePath, _ := os.Executable()
		executableName := filepath.Base(exePath)
		if strings.Contains(executableName, "debug") {
			executableName = "debug"
		}
		executableName += ".rpc"
		fileHook, err := rotatelogs.New(
			filepath.Join(rpcLogFile, executableName+".%Y%m%d%H%M.log"),
			rotatelogs.WithLinkName(filepath.Join(rpcLogFile, executableName+".log")),
			rotatelogs.WithMaxAge(7*24*time.Hour),
			rotatelogs.WithRotationTime(24*time.Hour),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create RotateFile hook, error %s", err)
		}
		writers = append(writers, fileHook)
	}
	writers = append(writers, os.Stdout)
	r.Use(gin.LoggerWithWriter(io.MultiWriter(writers...)), gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Length", "Content-Type", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	corsConfig.OptionsResponseStatusCode = 200
	r.Use(cors.New(corsConfig))

	// api config
	err := s.InitApiConf(apiConf)
	if err != nil {
		return nil, err
	}
	err = s.applyApiConf(r, rpcProxy)
	if err != nil {
		return nil, err
	}

	// common header
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set(VARY, "Origin")
		c.Writer.Header().Add(VARY, "Access-Control-Request-Method")
		c.Writer.Header().Add(VARY, "Access-Control-Request-Headers")

		c.Writer.Header().Set(CONTENT_SECURITY_POLICY, "default-src 'self'")
		c.Writer.Header().Set(STRICT_TRANSPORT_SECURITY, "max-age=31536000; includeSubDomains; preload")
		c.Writer.Header().Set(ACCESS_CONTROL_ALLOW_ORIGIN, "*")

		c.Next()
	})

	r.Use(CompressionMiddleware())

	// router
	s.ordinalsService.InitRouter(r, rpcProxy)

	return r, nil
}

func (s *Rpc) Start(rpcUrl, rpcProxy, rpcLogFile string, apiConf *config.API) error {
	r, err := s.NewEngine(rpcProxy, rpcLogFile, apiConf)
	if err != nil {
		return err
	}

	parts := strings.Split(rpcUrl, ":")
	var port string
	if len(parts) < 2 {
		rpcUrl += ":80"
		port = "80"
	} else {
		port = parts[len(parts)-1]
	}

	// 先检查端口
	if err := checkPort(port); err != nil {
		return err
	}

	s.srv = &http.Server{Addr: rpcUrl, Handler: r}
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.Log.Errorf("rpc server stopped: %v", err)
		}
	}()
	return nil
}

func (s *Rpc) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func checkPort(port string) error {
	// 尝试监听该端口
	addr := fmt.Sprintf(":%s", port)
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %s is in use: %v", port, err)
	}
	l.Close()
	return nil
}
