package ordinals

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/gin-gonic/gin"
	"github.com/sat20-labs/ordinals/common"
	"github.com/sat20-labs/ordinals/indexer/ordinals"
	"github.com/sat20-labs/ordinals/indexer/subsidy"
	"github.com/sat20-labs/ordinals/server/wire"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	CONTENT_TYPE_CBOR    = "application/cbor"
	CONTENT_TYPE_MSGPACK = "application/msgpack"
)

type Handle struct {
	model *Model
}

func NewHandle(registry *subsidy.Registry, chain string, cacheSize int) *Handle {
	return &Handle{
		model: NewModel(registry, chain, cacheSize),
	}
}

func setError(resp *wire.BaseResp, err error) {
	resp.Code = wire.CodeError
	if errors.Is(err, subsidy.ErrOutOfRange) {
		resp.Code = wire.CodeOutOfRange
	}
	resp.Msg = err.Error()
}

// render writes resp as CBOR or msgpack when the client asks for it,
// json otherwise.
func render(c *gin.Context, resp interface{}) {
	accept := c.GetHeader("Accept")
	switch {
	case strings.Contains(accept, CONTENT_TYPE_CBOR):
		data, err := cbor.Marshal(resp)
		if err != nil {
			common.Log.Errorf("cbor.Marshal failed: %v", err)
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, CONTENT_TYPE_CBOR, data)
	case strings.Contains(accept, CONTENT_TYPE_MSGPACK):
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(resp); err != nil {
			common.Log.Errorf("msgpack encode failed: %v", err)
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, CONTENT_TYPE_MSGPACK, buf.Bytes())
	default:
		c.JSON(http.StatusOK, resp)
	}
}

func (s *Handle) getHealth(c *gin.Context) {
	resp := &HealthResp{
		BaseResp: wire.OK(),
		Data: &HealthData{
			Version:    common.ORDINALS_VERSION,
			Chain:      s.model.chain,
			TableReady: s.model.TableReady(s.model.chain),
		},
	}
	render(c, resp)
}

func (s *Handle) getSatTraits(c *gin.Context) {
	resp := &SatTraitsResp{
		BaseResp: wire.OK(),
	}

	chain, err := s.model.resolveChain(c.Query("chain"))
	if err == nil {
		resp.Data, err = s.model.GetSatTraits(chain, c.Param("sat"))
	}
	if err != nil {
		setError(&resp.BaseResp, err)
	}
	render(c, resp)
}

func (s *Handle) getRarity(c *gin.Context) {
	resp := &RarityResp{
		BaseResp: wire.OK(),
	}

	chain, err := s.model.resolveChain(c.Query("chain"))
	if err == nil {
		resp.Data, err = s.model.GetRarity(chain, c.Param("sat"))
	}
	if err != nil {
		setError(&resp.BaseResp, err)
	}
	render(c, resp)
}

func (s *Handle) getHeightInfo(c *gin.Context) {
	resp := &HeightInfoResp{
		BaseResp: wire.OK(),
	}

	height, err := ordinals.ParseHeight(c.Param("height"))
	if err != nil {
		resp.Code = wire.CodeError
		resp.Msg = err.Error()
		render(c, resp)
		return
	}

	chain, err := s.model.resolveChain(c.Query("chain"))
	if err == nil {
		resp.Data, err = s.model.GetHeightInfo(chain, height)
	}
	if err != nil {
		setError(&resp.BaseResp, err)
	}
	render(c, resp)
}

func (s *Handle) getEpochInfo(c *gin.Context) {
	resp := &EpochInfoResp{
		BaseResp: wire.OK(),
	}

	epoch, err := strconv.ParseUint(c.Param("epoch"), 10, 32)
	if err != nil {
		resp.Code = wire.CodeError
		resp.Msg = err.Error()
		render(c, resp)
		return
	}

	resp.Data, err = s.model.GetEpochInfo(ordinals.Epoch(epoch))
	if err != nil {
		setError(&resp.BaseResp, err)
	}
	render(c, resp)
}
