package utils

import "math/rand"

/**
 * @Author: wanglei
 * @File: rand_string
 * @Version: 1.0.0
 * @Description: 可复现的随机数据, 用于随机化测试
 * @Date: 2023/07/11 16:49
 */

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

type Rand struct {
	r *rand.Rand
}

// NewRand 相同的种子产生相同的序列
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// String 创建一个n个字符的随机字符串
func (r *Rand) String(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[r.r.Intn(len(letters))]
	}
	return string(b)
}

// Intn [0, n)
func (r *Rand) Intn(n int) int {
	return r.r.Intn(n)
}

// Between [low, high]
func (r *Rand) Between(low int, high int) int {
	return low + r.r.Intn(high-low+1)
}
