package main

import (
	"context"
	"time"

	"github.com/sat20-labs/ordinals/common"
	"github.com/sat20-labs/ordinals/config"
	"github.com/sat20-labs/ordinals/indexer/subsidy"
	"github.com/sat20-labs/ordinals/server"
)

func init() {
	config.InitSigInt()
}

func main() {
	ParseCmdParams()

	yamlcfg, err := config.InitConfig("")
	if err != nil {
		common.Log.Fatal(err)
	}
	err = config.InitLog(yamlcfg)
	if err != nil {
		common.Log.Fatal(err)
	}

	common.Log.Info("Starting...")
	defer func() {
		config.ReleaseRes()
		common.Log.Info("shut down")
	}()

	registry := subsidy.NewRegistry(yamlcfg.Subsidy.Source)
	err = InitSubsidyTable(yamlcfg, registry)
	if err != nil {
		common.Log.Error(err)
		return
	}

	rpc, err := InitRpcService(yamlcfg, registry)
	if err != nil {
		common.Log.Error(err)
		return
	}
	config.RegistReleaseFunc(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rpc.Stop(ctx); err != nil {
			common.Log.Errorf("rpc stop failed: %v", err)
		}
	})

	stopChan := make(chan bool)
	cb := func() {
		common.Log.Info("handle SIGINT for close rpc server")
		stopChan <- true
	}
	config.RegistSigIntFunc(cb)
	<-stopChan

	common.Log.Info("prepare to release resource...")
}

// InitSubsidyTable materializes the configured chain's table so the first
// request doesn't pay for decompression, and checks it against the reward
// schedule when asked to.
func InitSubsidyTable(conf *config.YamlConf, registry *subsidy.Registry) error {
	table, err := registry.Table(conf.Chain)
	if err != nil {
		return err
	}
	common.Log.Infof("subsidy table loaded, last height %d, holes %d", table.LastHeight(), table.Holes())

	if !conf.Subsidy.Validate {
		return nil
	}
	_, err = subsidy.Validate(table, subsidy.NewSchedule(conf.Chain), 0, table.LastHeight())
	return err
}

func InitRpcService(conf *config.YamlConf, registry *subsidy.Registry) (*server.Rpc, error) {
	rpcService := conf.RPCService
	rpc := server.NewRpc(registry, conf.Chain, rpcService.CacheSize)
	err := rpc.Start(rpcService.Addr, rpcService.Proxy, rpcService.LogPath, &rpcService.API)
	if err != nil {
		return rpc, err
	}
	common.Log.Info("rpc started")
	return rpc, nil
}
