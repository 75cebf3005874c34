// Package natsort 提供视点名称的自然排序，数字片段按数值比较。
package natsort

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Mode 排序模式
type Mode int

const (
	NaturalAsc Mode = iota
	NaturalDesc
	ByID
)

var folder = cases.Fold()

// Fold 返回用于比较的大小写折叠形式
func Fold(s string) string {
	return folder.String(s)
}

// ParseMode 解析配置或命令行中的排序模式
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nat_asc", "asc":
		return NaturalAsc, nil
	case "nat_desc", "desc":
		return NaturalDesc, nil
	case "guid", "id":
		return ByID, nil
	}
	return NaturalAsc, fmt.Errorf("unknown sort mode: %q", s)
}

func (m Mode) String() string {
	switch m {
	case NaturalDesc:
		return "nat_desc"
	case ByID:
		return "guid"
	default:
		return "nat_asc"
	}
}

// Segment 名称拆分后的片段，文本和数字交替出现
type Segment struct {
	Text  string
	IsNum bool
}

// Key 名称的自然排序键，总是以文本片段开头
type Key []Segment

// KeyOf 构建名称的排序键。"Zone-12b" 拆分为 "zone-", 12, "b"
func KeyOf(name string) Key {
	name = Fold(name)
	key := make(Key, 0, 4)
	start := 0
	inNum := false
	for i := 0; i < len(name); i++ {
		d := isDigit(name[i])
		if d == inNum {
			continue
		}
		key = append(key, Segment{Text: name[start:i], IsNum: inNum})
		start = i
		inNum = d
	}
	key = append(key, Segment{Text: name[start:], IsNum: inNum})
	// 以数字结尾时补一个空文本片段，与文本开头对称
	if inNum {
		key = append(key, Segment{})
	}
	return key
}

// Compare 按自然顺序比较两个名称
func Compare(a, b string) int {
	return CompareKeys(KeyOf(a), KeyOf(b))
}

// CompareKeys 逐片段比较，前缀相同时短的在前
func CompareKeys(a, b Key) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		var c int
		if a[i].IsNum && b[i].IsNum {
			c = compareDigits(a[i].Text, b[i].Text)
		} else {
			c = strings.Compare(a[i].Text, b[i].Text)
		}
		if c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// CompareID 比较两个 guid，忽略大小写
func CompareID(a, b string) int {
	return strings.Compare(Fold(a), Fold(b))
}

// compareDigits 比较任意长度的十进制数字串，"007" 与 "7" 相等
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
