package serializer

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var log *zap.Logger = zap.NewNop()

// SetLogger installs the logger used for error responses.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// Response is the uniform envelope for every endpoint.
type Response struct {
	Code  int         `json:"code"`
	Data  interface{} `json:"data,omitempty"`
	Msg   string      `json:"msg"`
	Error string      `json:"error,omitempty"`
}

// Err builds an error response. Error detail is only exposed outside
// release mode.
func Err(errCode int, msg string, err error) Response {
	res := Response{
		Code: errCode,
		Msg:  msg,
	}
	if err != nil {
		log.Sugar().Errorw(msg, "code", errCode, "err", err)
	}
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Error = fmt.Sprintf("%+v", err)
	}
	return res
}

// DBErr reports a storage failure.
func DBErr(msg string, err error) Response {
	if msg == "" {
		msg = "database error"
	}
	return Err(http.StatusInternalServerError, msg, err)
}

// ParamErr reports a malformed request.
func ParamErr(msg string, err error) Response {
	if msg == "" {
		msg = "parameter error"
	}
	return Err(http.StatusBadRequest, msg, err)
}

// NotFoundErr reports a missing domain entity.
func NotFoundErr(msg string, err error) Response {
	if msg == "" {
		msg = "not found"
	}
	return Err(http.StatusNotFound, msg, err)
}

// ConflictErr reports a duplicate/conflicting write.
func ConflictErr(msg string, err error) Response {
	if msg == "" {
		msg = "conflict"
	}
	return Err(http.StatusConflict, msg, err)
}

// AuthErr reports an authentication failure.
func AuthErr(msg string) Response {
	if msg == "" {
		msg = "authentication error"
	}
	return Err(http.StatusUnauthorized, msg, nil)
}
