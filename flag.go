package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/sat20-labs/ordinals/common"
	"github.com/sat20-labs/ordinals/config"
)

func ParseCmdParams() {
	init := flag.String("init", "", "generate config file in current dir")
	_ = flag.String("env", ".env", "env config file, default ./.env")
	help := flag.Bool("help", false, "show help.")
	flag.Parse()

	if *help {
		common.Log.Info("ordinals server help:")
		common.Log.Info("Usage: 'ordinals-server -init testnet' or 'ordinals-server -init mainnet'")
		common.Log.Info("Usage: 'ordinals-server -env default.yaml'")
		common.Log.Info("Usage: 'ordinals-server -env .env'")
		common.Log.Info("Options:")
		common.Log.Info("    -init: init config file in current dir")
		common.Log.Info("    -env: config file, default ./.env")
		os.Exit(0)
	}

	if *init != "" {
		err := generateDefaultCfg(*init)
		if err != nil {
			common.Log.Fatal(err)
		}
		os.Exit(0)
	}
}

func generateDefaultCfg(chain string) error {
	cfg, err := config.NewDefaultYamlConf(chain)
	if err != nil {
		return err
	}
	cfgPath, err := os.Getwd()
	if err != nil {
		return err
	}
	return config.SaveYamlConf(cfg, filepath.Join(cfgPath, "default.yaml"))
}
