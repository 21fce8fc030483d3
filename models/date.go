package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout 交易日期格式（ISO-8601 日历日期）
const DateLayout = "2006-01-02"

// Date 日历日期，只保留年月日
type Date struct {
	time.Time
}

// NewDate 按年月日创建日期
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf 截取时间的日历日期部分（按时间自身的时区）
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate 解析 YYYY-MM-DD，也接受完整的 RFC 3339 时间（仅取日期部分）
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Date{}, fmt.Errorf("日期格式错误 %q: 应为 %s", s, DateLayout)
	}
	return DateOf(t), nil
}

// String 返回 YYYY-MM-DD
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON 序列化为 "YYYY-MM-DD"
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON 反序列化，空字符串和 null 视为零值
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Equal 按日历日期比较
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}
