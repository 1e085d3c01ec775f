package models

import "github.com/shopspring/decimal"

// Money 统一金额类型，单位为最小货币单位（centimes）。
// 所有金额运算都走整数，decimal 仅用于展示层格式化。
type Money int64

// Decimal 转换为以第纳尔为单位的 decimal
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// String 返回 2 位小数的第纳尔格式（如 1250.00）
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// Mul 按数量放大金额
func (m Money) Mul(quantity int) Money {
	return m * Money(quantity)
}
