package config

import (
	"os"
	"os/signal"
	"sync"

	"github.com/sat20-labs/ordinals/common"
)

var (
	SigInt         chan os.Signal
	sigIntFuncList = []func(){}
	releaseFuncs   = []func(){}
	sigMutex       sync.Mutex
)

func InitSigInt() {
	count := 0
	SigInt = make(chan os.Signal, 100)
	signal.Notify(SigInt, os.Interrupt)
	go func() {
		for {
			<-SigInt
			count++
			common.Log.Infof("Received SIGINT (CTRL+C), count %d, 3 times will force exit", count)
			if count >= 3 {
				ReleaseRes()
				os.Exit(1)
			} else if count == 1 {
				sigMutex.Lock()
				funcs := append([]func(){}, sigIntFuncList...)
				sigMutex.Unlock()
				for index := range funcs {
					go funcs[index]()
				}
			}
		}
	}()
}

func RegistSigIntFunc(callback func()) {
	sigMutex.Lock()
	defer sigMutex.Unlock()
	sigIntFuncList = append(sigIntFuncList, callback)
}

// RegistReleaseFunc adds a cleanup run by ReleaseRes.
func RegistReleaseFunc(callback func()) {
	sigMutex.Lock()
	defer sigMutex.Unlock()
	releaseFuncs = append(releaseFuncs, callback)
}

func ReleaseRes() {
	sigMutex.Lock()
	funcs := append([]func(){}, releaseFuncs...)
	sigMutex.Unlock()
	for _, f := range funcs {
		f()
	}
}
