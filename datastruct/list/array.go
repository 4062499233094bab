package list

/**
 * @Author: wanglei
 * @File: array
 * @Version: 1.0.0
 * @Description: 基于定长数组的线性表, 容量每次只增减一个槽位
 * @Date: 2023/08/02 10:12
 */

const (
	initCapacity  = 1
	capacityStep  = 1
	maxEmptySlots = 2
)

// ArrayIndexList 非线程安全, 并发使用时由调用方加锁
type ArrayIndexList[E any] struct {
	element []E
	size    int
}

func NewArrayIndexList[E any]() *ArrayIndexList[E] {
	return &ArrayIndexList[E]{
		element: make([]E, initCapacity),
		size:    0,
	}
}

func (l *ArrayIndexList[E]) Len() int {
	return l.size
}

func (l *ArrayIndexList[E]) Cap() int {
	return len(l.element)
}

func (l *ArrayIndexList[E]) IsEmpty() bool {
	return l.size == 0
}

// Insert index == Len() 时等价于 Add
func (l *ArrayIndexList[E]) Insert(index int, val E) error {
	if index < 0 || index > l.size {
		return makeIndexOutOfRange("insert", index, l.size)
	}
	if l.size == len(l.element) {
		l.changeCapacity(capacityStep)
	}
	l.moveOnePositionRight(index, l.size-1)
	l.element[index] = val
	l.size++
	return nil
}

func (l *ArrayIndexList[E]) Add(val E) {
	if l.size == len(l.element) {
		l.changeCapacity(capacityStep)
	}
	l.element[l.size] = val
	l.size++
}

func (l *ArrayIndexList[E]) Get(index int) (E, error) {
	if index < 0 || index >= l.size {
		var zero E
		return zero, makeIndexOutOfRange("get", index, l.size)
	}
	return l.element[index], nil
}

// Set 返回被替换的旧值
func (l *ArrayIndexList[E]) Set(index int, val E) (E, error) {
	if index < 0 || index >= l.size {
		var zero E
		return zero, makeIndexOutOfRange("set", index, l.size)
	}
	old := l.element[index]
	l.element[index] = val
	return old, nil
}

func (l *ArrayIndexList[E]) Remove(index int) (E, error) {
	var zero E
	if index < 0 || index >= l.size {
		return zero, makeIndexOutOfRange("remove", index, l.size)
	}
	val := l.element[index]
	l.moveOnePositionLeft(index+1, l.size-1)
	l.element[l.size-1] = zero
	l.size--
	if len(l.element)-l.size > maxEmptySlots {
		l.changeCapacity(-capacityStep)
	}
	return val, nil
}

// changeCapacity 重新分配底层数组, 旧数组中的引用全部清空
func (l *ArrayIndexList[E]) changeCapacity(change int) {
	var zero E
	element := make([]E, len(l.element)+change)
	for i := 0; i < l.size; i++ {
		element[i] = l.element[i]
		l.element[i] = zero
	}
	l.element = element
}

// moveOnePositionRight [low, sup] 整体后移一位, 从高位开始避免覆盖
// 要求 sup < len(element)-1
func (l *ArrayIndexList[E]) moveOnePositionRight(low int, sup int) {
	for pos := sup; pos >= low; pos-- {
		l.element[pos+1] = l.element[pos]
	}
}

// moveOnePositionLeft [low, sup] 整体前移一位, 从低位开始避免覆盖
// 要求 0 < low
func (l *ArrayIndexList[E]) moveOnePositionLeft(low int, sup int) {
	for pos := low; pos <= sup; pos++ {
		l.element[pos-1] = l.element[pos]
	}
}
