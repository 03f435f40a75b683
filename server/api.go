package server

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-gonic/gin"
	"github.com/sat20-labs/ordinals/common"
	"github.com/sat20-labs/ordinals/config"
	"gopkg.in/yaml.v2"
)

type RateLimit struct {
	limit    *limiter.Limiter
	day      string
	reqCount int
}

// InitApiConf keeps a private copy of the api section.
func (s *Rpc) InitApiConf(apiConf *config.API) error {
	if apiConf == nil {
		return nil
	}

	s.apiConfMutex.Lock()
	defer s.apiConfMutex.Unlock()

	raw, err := yaml.Marshal(apiConf)
	if err != nil {
		return err
	}
	s.api = &config.API{}
	err = yaml.Unmarshal(raw, s.api)
	if err != nil {
		return err
	}
	s.initApiConf = len(s.api.APIKeyList) > 0
	return nil
}

func localIpList() ([]string, error) {
	localIpList := make([]string, 0)
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil, err
	}
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if ok && ipNet.IP.To4() != nil {
			localIpList = append(localIpList, ipNet.IP.String())
		}
	}
	return append(localIpList, "localhost"), nil
}

func (s *Rpc) applyApiConf(r *gin.Engine, basePath string) error {
	localIps, err := localIpList()
	if err != nil {
		return err
	}

	r.Use(func(c *gin.Context) {
		if !s.initApiConf {
			c.Next()
			return
		}
		host := c.Request.Host
		if h, _, err := net.SplitHostPort(host); err == nil {
			host = h
		}
		for _, ip := range localIps {
			if host == ip {
				c.Next()
				return
			}
		}

		status := s.authorize(c, basePath)
		if status != http.StatusOK {
			if status == http.StatusUnauthorized {
				c.JSON(status, gin.H{"error": "Invalid API Key"})
			} else {
				c.JSON(status, gin.H{"error": "Rate limit exceeded"})
			}
			c.Abort()
			return
		}
		c.Next()
	})

	return nil
}

// authorize checks the caller's api key and rate limits, returning the
// http status to answer with.
func (s *Rpc) authorize(c *gin.Context, basePath string) int {
	s.apiConfMutex.Lock()
	defer s.apiConfMutex.Unlock()

	for _, apiUrl := range s.api.NoLimitApiList {
		if basePath+apiUrl == c.Request.URL.Path {
			return http.StatusOK
		}
	}

	clientIp := c.ClientIP()
	common.Log.Debugf("authorization client Ip: %s", clientIp)
	for _, host := range s.api.NoLimitHostList {
		if clientIp == host {
			return http.StatusOK
		}
	}

	authorization := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	apiKey := s.api.APIKeyList[authorization]
	if apiKey == nil {
		return http.StatusUnauthorized
	}
	if apiKey.RateLimit == nil || apiKey.RateLimit.PerSecond == 0 || apiKey.RateLimit.PerDay == 0 {
		return http.StatusOK
	}

	var rateLimit *RateLimit
	v, ok := s.apiLimitMap.Load(apiKey)
	if !ok {
		lmt := tollbooth.NewLimiter(float64(apiKey.RateLimit.PerSecond), &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
		lmt.SetMax(float64(apiKey.RateLimit.Max))
		lmt.SetBurst(apiKey.RateLimit.Burst)
		lmt.SetTokenBucketExpirationTTL(time.Minute)
		rateLimit = &RateLimit{limit: lmt}
		s.apiLimitMap.Store(apiKey, rateLimit)
	} else {
		rateLimit = v.(*RateLimit)
	}

	today := time.Now().Format("2006-01-02")
	if rateLimit.day != today {
		rateLimit.day = today
		rateLimit.reqCount = 0
	}
	rateLimit.reqCount++
	if rateLimit.reqCount > apiKey.RateLimit.PerDay {
		return http.StatusTooManyRequests
	}

	if httpError := tollbooth.LimitByRequest(rateLimit.limit, c.Writer, c.Request); httpError != nil {
		return http.StatusTooManyRequests
	}
	return http.StatusOK
}
