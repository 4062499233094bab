package shell

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

/**
 * @Author: wanglei
 * @File: commands
 * @Version: 1.0.0
 * @Description: 线性表相关命令
 * @Date: 2023/08/04 10:13
 */

const notIntegerErr = "ERR value is not an integer or out of range"

func (s *Shell[E]) registerCommands() {
	s.registerCommand("add", execAdd[E], 2, flagWrite)
	s.registerCommand("append", execAdd[E], 2, flagWrite)
	s.registerCommand("insert", execInsert[E], 3, flagWrite)
	s.registerCommand("get", execGet[E], 2, flagReadOnly)
	s.registerCommand("set", execSet[E], 3, flagWrite)
	s.registerCommand("remove", execRemove[E], 2, flagWrite)
	s.registerCommand("size", execSize[E], 1, flagReadOnly)
	s.registerCommand("cap", execCap[E], 1, flagReadOnly)
	s.registerCommand("empty", execEmpty[E], 1, flagReadOnly)
	s.registerCommand("dump", execDump[E], 1, flagReadOnly)
	s.registerCommand("stats", execStats[E], 1, flagReadOnly)
	s.registerCommand("sum", execSum[E], 1, flagReadOnly)
	s.registerCommand("help", execHelp[E], 1, flagReadOnly)
}

func parseIndex(raw string) (int, Reply) {
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, MakeErrReply(notIntegerErr)
	}
	return index, nil
}

func (s *Shell[E]) parseValue(raw string) (E, Reply) {
	val, err := s.codec.Parse(raw)
	if err != nil {
		var zero E
		return zero, MakeErrReply("ERR invalid value: " + err.Error())
	}
	return val, nil
}

func errReply(err error) Reply {
	return MakeErrReply("ERR " + err.Error())
}

func execAdd[E any](s *Shell[E], args []string) Reply {
	val, reply := s.parseValue(args[0])
	if reply != nil {
		return reply
	}
	s.list.Add(val)
	return MakeOkReply()
}

func execInsert[E any](s *Shell[E], args []string) Reply {
	index, reply := parseIndex(args[0])
	if reply != nil {
		return reply
	}
	val, reply := s.parseValue(args[1])
	if reply != nil {
		return reply
	}
	if err := s.list.Insert(index, val); err != nil {
		return errReply(err)
	}
	return MakeOkReply()
}

func execGet[E any](s *Shell[E], args []string) Reply {
	index, reply := parseIndex(args[0])
	if reply != nil {
		return reply
	}
	val, err := s.list.Get(index)
	if err != nil {
		return errReply(err)
	}
	return MakeBulkReply(s.codec.Format(val))
}

func execSet[E any](s *Shell[E], args []string) Reply {
	index, reply := parseIndex(args[0])
	if reply != nil {
		return reply
	}
	val, reply := s.parseValue(args[1])
	if reply != nil {
		return reply
	}
	old, err := s.list.Set(index, val)
	if err != nil {
		return errReply(err)
	}
	return MakeBulkReply(s.codec.Format(old))
}

func execRemove[E any](s *Shell[E], args []string) Reply {
	index, reply := parseIndex(args[0])
	if reply != nil {
		return reply
	}
	val, err := s.list.Remove(index)
	if err != nil {
		return errReply(err)
	}
	return MakeBulkReply(s.codec.Format(val))
}

func execSize[E any](s *Shell[E], args []string) Reply {
	return MakeIntReply(int64(s.list.Len()))
}

func execCap[E any](s *Shell[E], args []string) Reply {
	return MakeIntReply(int64(s.list.Cap()))
}

func execEmpty[E any](s *Shell[E], args []string) Reply {
	return MakeBulkReply(strconv.FormatBool(s.list.IsEmpty()))
}

func execDump[E any](s *Shell[E], args []string) Reply {
	items := make([]string, 0, s.list.Len())
	for i := 0; i < s.list.Len(); i++ {
		val, err := s.list.Get(i)
		if err != nil {
			return errReply(err)
		}
		items = append(items, s.codec.Format(val))
	}
	return MakeBulkReply("[" + strings.Join(items, " ") + "]")
}

func execStats[E any](s *Shell[E], args []string) Reply {
	size := s.list.Len()
	capacity := s.list.Cap()
	fill := decimal.Zero
	if capacity > 0 {
		fill = decimal.NewFromInt(int64(size)).Div(decimal.NewFromInt(int64(capacity)))
	}
	return MakeBulkReply("size=" + strconv.Itoa(size) +
		" cap=" + strconv.Itoa(capacity) +
		" slack=" + strconv.Itoa(capacity-size) +
		" fill=" + fill.StringFixed(2))
}

func execSum[E any](s *Shell[E], args []string) Reply {
	if s.codec.Add == nil {
		return MakeErrReply("ERR sum is not supported for this element type")
	}
	var total E
	for i := 0; i < s.list.Len(); i++ {
		val, err := s.list.Get(i)
		if err != nil {
			return errReply(err)
		}
		if i == 0 {
			total = val
			continue
		}
		total = s.codec.Add(total, val)
	}
	if s.list.IsEmpty() {
		return MakeBulkReply("0")
	}
	return MakeBulkReply(s.codec.Format(total))
}

func execHelp[E any](s *Shell[E], args []string) Reply {
	return MakeBulkReply(strings.Join(s.commandNames(), " "))
}
