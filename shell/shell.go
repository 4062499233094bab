package shell

import (
	"bufio"
	"context"
	"io"
	"strings"

	"gmr/go-indexlist/datastruct/list"
	"gmr/go-indexlist/lib/logger"

	"github.com/pkg/errors"
)

/**
 * @Author: wanglei
 * @File: shell
 * @Version: 1.0.0
 * @Description: 逐行读取命令并作用在一个线性表上
 * @Date: 2023/08/03 14:52
 */

type Options struct {
	// 每次读取前输出的提示符, 为空则不输出
	Prompt string
	// 执行前回显命令
	Echo bool
}

// Shell 非并发安全, 同一时刻只能有一个 Run
type Shell[E any] struct {
	list     list.IndexList[E]
	codec    Codec[E]
	cmdTable map[string]*command[E]
}

func MakeShell[E any](l list.IndexList[E], codec Codec[E]) *Shell[E] {
	s := &Shell[E]{
		list:     l,
		codec:    codec,
		cmdTable: make(map[string]*command[E]),
	}
	s.registerCommands()
	return s
}

func (s *Shell[E]) List() list.IndexList[E] {
	return s.list
}

// Exec 执行一行命令
func (s *Shell[E]) Exec(line string) Reply {
	cmdLine := strings.Fields(line)
	if len(cmdLine) == 0 {
		return MakeErrReply("ERR empty command")
	}
	name := strings.ToLower(cmdLine[0])
	cmd, ok := s.cmdTable[name]
	if !ok {
		logger.Warnf("unknown command %q", cmdLine[0])
		return MakeErrReply("ERR unknown command '" + cmdLine[0] + "'")
	}
	if !validateArity(cmd.arity, cmdLine) {
		return MakeArgNumErrReply(name)
	}
	reply := cmd.executor(s, cmdLine[1:])
	if isErrorReply(reply) {
		logger.Warnf("%s failed: %s", name, reply.(ErrorReply).Error())
	} else if !s.isReadOnlyCommand(name) {
		logger.Debugf("%s done, size=%d cap=%d", line, s.list.Len(), s.list.Cap())
	}
	return reply
}

// Run 执行直到 EOF 或 ctx 取消, 空行和 # 开头的行被忽略
func (s *Shell[E]) Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	scanner := bufio.NewScanner(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if opts.Prompt != "" {
			if _, err := io.WriteString(w, opts.Prompt); err != nil {
				return errors.Wrap(err, "write prompt")
			}
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if opts.Echo {
			if _, err := io.WriteString(w, line+lf); err != nil {
				return errors.Wrap(err, "echo command")
			}
		}
		reply := s.Exec(line)
		if _, err := w.Write(reply.ToBytes()); err != nil {
			return errors.Wrap(err, "write reply")
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read commands")
	}
	return nil
}
