package util

import "math"

// PtrString 用于将 string 转换为 *string
func PtrString(s string) *string {
	return &s
}

// PtrInt64 用于将 int64 转换为 *int64
func PtrInt64(i int64) *int64 {
	return &i
}

// TotalPages 向上取整计算总页数，size 非正数时视为 1
func TotalPages(total int64, size int) int {
	if size <= 0 {
		size = 1
	}
	return int((total + int64(size) - 1) / int64(size))
}

// PageInRange 页码从 1 开始，且偏移量 (page-1)*size 不超过 int 范围
func PageInRange(page, size int) bool {
	if size <= 0 {
		size = 1
	}
	return page >= 1 && page-1 <= math.MaxInt/size
}

// PageOffset 调用方需先用 PageInRange 过滤页码，越界时按第一页处理
func PageOffset(page, size int) int {
	if !PageInRange(page, size) {
		return 0
	}
	return (page - 1) * size
}
