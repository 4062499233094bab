package shell

import "strconv"

/**
 * @Author: wanglei
 * @File: reply
 * @Version: 1.0.0
 * @Description: 命令执行结果, 每条回复占一行
 * @Date: 2023/08/03 15:10
 */

var (
	okBytes = []byte("OK\n")
	lf      = "\n"
)

type Reply interface {
	ToBytes() []byte
}

type ErrorReply interface {
	Error() string
	ToBytes() []byte
}

type OkReply struct{}

func (r *OkReply) ToBytes() []byte {
	return okBytes
}

var theOkReply = new(OkReply)

func MakeOkReply() *OkReply {
	return theOkReply
}

type BulkReply struct {
	Arg string
}

func MakeBulkReply(arg string) *BulkReply {
	return &BulkReply{Arg: arg}
}

func (r *BulkReply) ToBytes() []byte {
	return []byte(r.Arg + lf)
}

type IntReply struct {
	Code int64
}

func MakeIntReply(code int64) *IntReply {
	return &IntReply{Code: code}
}

func (r *IntReply) ToBytes() []byte {
	return []byte(strconv.FormatInt(r.Code, 10) + lf)
}

type StandardErrReply struct {
	Status string
}

func MakeErrReply(status string) *StandardErrReply {
	return &StandardErrReply{Status: status}
}

func (r *StandardErrReply) ToBytes() []byte {
	return []byte(r.Status + lf)
}

func (r *StandardErrReply) Error() string {
	return r.Status
}

// 参数数量不对
type ArgNumErrReply struct {
	Cmd string
}

func MakeArgNumErrReply(cmd string) *ArgNumErrReply {
	return &ArgNumErrReply{Cmd: cmd}
}

func (r *ArgNumErrReply) ToBytes() []byte {
	return []byte(r.Error() + lf)
}

func (r *ArgNumErrReply) Error() string {
	return "ERR wrong number of arguments for '" + r.Cmd + "' command"
}

func isErrorReply(reply Reply) bool {
	_, ok := reply.(ErrorReply)
	return ok
}
