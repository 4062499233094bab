package list

import (
	"fmt"

	"github.com/pkg/errors"
)

/**
 * @Author: wanglei
 * @File: errors
 * @Version: 1.0.0
 * @Description: 下标越界错误
 * @Date: 2023/08/02 10:41
 */

// ErrIndexOutOfRange 所有越界错误都可以用errors.Is匹配到它
var ErrIndexOutOfRange = errors.New("index out of range")

type IndexOutOfRangeError struct {
	Op    string
	Index int
	Size  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: invalid index = %d (size %d)", e.Op, e.Index, e.Size)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

func makeIndexOutOfRange(op string, index int, size int) error {
	return errors.WithStack(&IndexOutOfRangeError{
		Op:    op,
		Index: index,
		Size:  size,
	})
}
