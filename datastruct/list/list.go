package list

/**
 * @Author: wanglei
 * @File: list
 * @Version: 1.0.0
 * @Description:
 * @Date: 2023/07/11 18:16
 */

// IndexList 按位置寻址的有序容器
type IndexList[E any] interface {
	Len() int
	Cap() int
	IsEmpty() bool
	Add(val E)
	Get(index int) (E, error)
	Set(index int, val E) (E, error)
	Insert(index int, val E) error
	Remove(index int) (E, error)
}
