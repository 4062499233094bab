package shell

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Codec 元素与命令行文本之间的转换. Add 为 nil 时不支持 sum
type Codec[E any] struct {
	Parse  func(raw string) (E, error)
	Format func(val E) string
	Add    func(a, b E) E
}

func StringCodec() Codec[string] {
	return Codec[string]{
		Parse:  func(raw string) (string, error) { return raw, nil },
		Format: func(val string) string { return val },
	}
}

func DecimalCodec() Codec[decimal.Decimal] {
	return Codec[decimal.Decimal]{
		Parse: func(raw string) (decimal.Decimal, error) {
			d, err := decimal.NewFromString(raw)
			if err != nil {
				return decimal.Zero, errors.Wrapf(err, "parse %q", raw)
			}
			return d, nil
		},
		Format: func(val decimal.Decimal) string { return val.String() },
		Add:    func(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) },
	}
}
