package slider

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
)

// CaptionFormatter 把值转换为标题文本
type CaptionFormatter func(value float64) string

// 格式化函数名称（配置文件中使用）
const (
	FormatPlain    = "plain"
	FormatFixed    = "fixed" // fixed:<小数位数>
	FormatComma    = "comma"
	FormatBytes    = "bytes"
	FormatDuration = "duration"
	FormatPercent  = "percent"
)

// shortUnits 时长标题使用的简写单位
var shortUnits durafmt.Units

func init() {
	units, err := durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")
	if err != nil {
		log.Fatalf("[Slider] 无法解析时长单位: %v", err)
	}
	shortUnits = units
}

// PlainFormatter 最短的十进制表示（50、2.5）
func PlainFormatter(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FixedFormatter 固定小数位数
func FixedFormatter(digits int) CaptionFormatter {
	if digits < 0 {
		digits = 0
	}
	return func(v float64) string {
		return strconv.FormatFloat(v, 'f', digits, 64)
	}
}

// CommaFormatter 千位分隔（1,234.5）
func CommaFormatter(v float64) string {
	return humanize.Commaf(v)
}

// BytesFormatter 把值当作字节数（1.0 MB），负值按 0 处理
func BytesFormatter(v float64) string {
	return humanize.Bytes(uint64(math.Max(v, 0)))
}

// DurationFormatter 把值当作秒数，最多显示两个单位（1 m 30 s）
func DurationFormatter(v float64) string {
	d := time.Duration(math.Max(v, 0) * float64(time.Second))
	if d < time.Second {
		return "0 s"
	}
	return durafmt.Parse(d.Truncate(time.Second)).LimitFirstN(2).Format(shortUnits)
}

// PercentFormatter 在值后追加百分号（50%）
func PercentFormatter(v float64) string {
	return humanize.Ftoa(v) + "%"
}

// ParseFormatter 按名称返回格式化函数，空名称返回 PlainFormatter
func ParseFormatter(name string) (CaptionFormatter, error) {
	kind, arg, hasArg := strings.Cut(strings.TrimSpace(name), ":")
	switch kind {
	case "", FormatPlain:
		return PlainFormatter, nil
	case FormatFixed:
		if !hasArg {
			return nil, fmt.Errorf("格式 %q 缺少小数位数（例如 fixed:2）", name)
		}
		digits, err := strconv.Atoi(arg)
		if err != nil || digits < 0 {
			return nil, fmt.Errorf("格式 %q 的小数位数无效: %q", name, arg)
		}
		return FixedFormatter(digits), nil
	case FormatComma:
		return CommaFormatter, nil
	case FormatBytes:
		return BytesFormatter, nil
	case FormatDuration:
		return DurationFormatter, nil
	case FormatPercent:
		return PercentFormatter, nil
	}
	return nil, fmt.Errorf("未知的标题格式: %q", name)
}
