package shared

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount 金额文本无法解析
var ErrInvalidAmount = errors.New("invalid money amount")

// currencySymbols 常用货币符号，未收录的货币以代码加空格显示
var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"CNY": "¥",
}

// Money 值对象 - 表示金额
// 金额以最小货币单位（分）存储，避免浮点误差
type Money struct {
	amount   int64  // 以最小货币单位存储（如分）
	currency string // 货币代码（如EUR, CNY）
}

// NewMoney 创建新的Money值对象
func NewMoney(amount int64, currency string) Money {
	return Money{
		amount:   amount,
		currency: currency,
	}
}

// ParseMoney 将 "12.99" / "12,99" 形式的文本解析为 Money
// 只接受普通十进制写法：可选符号、数字、至多一个小数点，不接受指数、十六进制和数字分隔符
// 小数部分超过两位时按远离零方向四舍五入到分
func ParseMoney(text, currency string) (Money, error) {
	text = strings.TrimSpace(strings.Replace(text, ",", ".", 1))
	plain, ok := plainDecimal(text)
	if !ok {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}

	value, err := decimal.NewFromString(plain)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}

	cents := value.Shift(2).Round(0)
	if cents.Abs().GreaterThan(maxMinorUnits) {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	return NewMoney(cents.IntPart(), currency), nil
}

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// plainDecimal 规范化为 [-]digits.digits 形式，".5" 补零，"5." 补零
func plainDecimal(text string) (string, bool) {
	sign := ""
	switch {
	case strings.HasPrefix(text, "-"):
		sign, text = "-", text[1:]
	case strings.HasPrefix(text, "+"):
		text = text[1:]
	}

	whole, frac, _ := strings.Cut(text, ".")
	if whole == "" && frac == "" {
		return "", false
	}
	if !allDigits(whole) || !allDigits(frac) {
		return "", false
	}
	if whole == "" {
		whole = "0"
	}
	if frac == "" {
		frac = "0"
	}
	return sign + whole + "." + frac, true
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Amount 获取金额数量（最小货币单位）
func (m Money) Amount() int64 {
	return m.amount
}

// Currency 获取货币类型
func (m Money) Currency() string {
	return m.currency
}

// Times 金额乘以数量
// 调用方负责保证 n 在业务上限之内（见 order.MaxQuantity）
func (m Money) Times(n int64) Money {
	return Money{
		amount:   m.amount * n,
		currency: m.currency,
	}
}

// Clamp 将金额限制在 [min, max] 区间（最小货币单位）
func (m Money) Clamp(min, max int64) Money {
	switch {
	case m.amount < min:
		return Money{amount: min, currency: m.currency}
	case m.amount > max:
		return Money{amount: max, currency: m.currency}
	default:
		return m
	}
}

// Equals 比较两个Money值对象是否相等
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// String 以货币符号加两位小数显示，如 €12.99
func (m Money) String() string {
	symbol, ok := currencySymbols[m.currency]
	if !ok {
		symbol = m.currency + " "
	}

	value := decimal.New(m.amount, -2)
	sign := ""
	if value.IsNegative() {
		sign = "-"
		value = value.Neg()
	}
	return sign + symbol + value.StringFixed(2)
}
