package api

import (
	"fmt"
	"strconv"
	"time"

	"cantina/report"

	"github.com/gin-gonic/gin"
)

// periodParam 解析路径参数 :year/:month，月份 1-12
func periodParam(c *gin.Context) (report.Period, error) {
	return parsePeriod(c.Param("year"), c.Param("month"))
}

// periodQuery 解析查询参数 year、month；两者都为空时 ok 为 false
func periodQuery(c *gin.Context) (p report.Period, ok bool, err error) {
	year, month := c.Query("year"), c.Query("month")
	if year == "" && month == "" {
		return report.Period{}, false, nil
	}
	if year == "" || month == "" {
		return report.Period{}, false, fmt.Errorf("%w: year e month devem ser informados juntos", report.ErrInvalidPeriod)
	}
	p, err = parsePeriod(year, month)
	return p, err == nil, err
}

func parsePeriod(year, month string) (report.Period, error) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return report.Period{}, fmt.Errorf("%w: ano %q", report.ErrInvalidPeriod, year)
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return report.Period{}, fmt.Errorf("%w: mês %q", report.ErrInvalidPeriod, month)
	}
	p := report.Period{Year: y, Month: time.Month(m)}
	if err := p.Validate(); err != nil {
		return report.Period{}, err
	}
	return p, nil
}
