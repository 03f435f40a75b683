package ordinals

import (
	"github.com/gin-gonic/gin"
	"github.com/sat20-labs/ordinals/indexer/subsidy"
)

type Service struct {
	handle *Handle
}

func NewService(registry *subsidy.Registry, chain string, cacheSize int) *Service {
	return &Service{
		handle: NewHandle(registry, chain, cacheSize),
	}
}

func (s *Service) InitRouter(r *gin.Engine, proxy string) {
	r.GET(proxy+"/health", s.handle.getHealth)

	// 聪的所有特征, 支持整数/名字/小数/百分比格式
	r.GET(proxy+"/ordinals/sat/:sat", s.handle.getSatTraits)
	r.GET(proxy+"/ordinals/rarity/:sat", s.handle.getRarity)
	r.GET(proxy+"/ordinals/height/:height", s.handle.getHeightInfo)
	r.GET(proxy+"/ordinals/epoch/:epoch", s.handle.getEpochInfo)
}
