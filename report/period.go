package report

import (
	"errors"
	"fmt"
	"time"

	"cantina/models"
)

var ErrInvalidPeriod = errors.New("invalid period")

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Period 统计周期：某年某月
type Period struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"` // 1-12
}

// PeriodOf 返回时间所在的月份
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// Validate 校验月份范围
func (p Period) Validate() error {
	if p.Month < time.January || p.Month > time.December {
		return fmt.Errorf("%w: month %d", ErrInvalidPeriod, p.Month)
	}
	if p.Year < 1 {
		return fmt.Errorf("%w: year %d", ErrInvalidPeriod, p.Year)
	}
	return nil
}

// Previous 上一个月，一月的上一个月是上一年十二月
func (p Period) Previous() Period {
	if p.Month == time.January {
		return Period{Year: p.Year - 1, Month: time.December}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

// Contains 日期的年和月都相同即属于该周期
func (p Period) Contains(d models.Date) bool {
	return d.Year() == p.Year && d.Month() == p.Month
}

// Label 葡萄牙语月份标签，如 "maio 2024"
func (p Period) Label() string {
	if p.Validate() != nil {
		return fmt.Sprintf("%d-%02d", p.Year, int(p.Month))
	}
	return fmt.Sprintf("%s %d", monthNames[p.Month-1], p.Year)
}
