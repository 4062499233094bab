package shell

import (
	"sort"
	"strings"
)

/**
 * @Author: wanglei
 * @File: router
 * @Version: 1.0.0
 * @Description: 命令表
 * @Date: 2023/08/03 15:30
 */

// ExecFunc args 不包含命令名
type ExecFunc[E any] func(s *Shell[E], args []string) Reply

const (
	flagWrite    = 0
	flagReadOnly = 1
)

type command[E any] struct {
	executor ExecFunc[E]
	// arity 包含命令名, 负数表示至少 -arity 个
	arity int
	flags int
}

func (s *Shell[E]) registerCommand(name string, executor ExecFunc[E], arity int, flags int) {
	name = strings.ToLower(name)
	s.cmdTable[name] = &command[E]{
		executor: executor,
		arity:    arity,
		flags:    flags,
	}
}

func (s *Shell[E]) isReadOnlyCommand(name string) bool {
	cmd := s.cmdTable[strings.ToLower(name)]
	if cmd == nil {
		return false
	}
	return cmd.flags&flagReadOnly > 0
}

func (s *Shell[E]) commandNames() []string {
	names := make([]string, 0, len(s.cmdTable))
	for name := range s.cmdTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validateArity(arity int, cmdArgs []string) bool {
	argNum := len(cmdArgs)
	if arity >= 0 {
		return argNum == arity
	}
	return argNum >= -arity
}
