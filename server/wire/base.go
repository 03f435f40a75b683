package wire

const (
	CodeOK         = 0
	CodeError      = -1
	CodeOutOfRange = -2
)

type BaseResp struct {
	Code int    `json:"code" example:"0"`
	Msg  string `json:"msg" example:"ok"`
}

func OK() BaseResp {
	return BaseResp{Code: CodeOK, Msg: "ok"}
}
