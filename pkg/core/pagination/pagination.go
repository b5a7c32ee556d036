// Package pagination 计算分页窗口与导航链接。越界页码按边界截断而不是报错。
package pagination

import "fmt"

const DefaultPageSize = 10

// Window 一次分页请求的结果窗口
type Window struct {
	Page       int
	LastPage   int
	PageSize   int
	TotalCount int64
	Offset     int
}

// Paginate 计算 lastPage = max(ceil(total/size), 1)，并把请求页截断到 [1, lastPage]
func Paginate(requestedPage int, totalCount int64, pageSize int) Window {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if totalCount < 0 {
		totalCount = 0
	}

	lastPage := int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	if lastPage < 1 {
		lastPage = 1
	}

	page := requestedPage
	if page < 1 {
		page = 1
	}
	if page > lastPage {
		page = lastPage
	}

	return Window{
		Page:       page,
		LastPage:   lastPage,
		PageSize:   pageSize,
		TotalCount: totalCount,
		Offset:     (page - 1) * pageSize,
	}
}

// Links 生成相邻页的链接；只有一页时为空
func (w Window) Links(basePath string) map[string]string {
	links := map[string]string{}
	if w.Page < w.LastPage {
		links["nextPage"] = fmt.Sprintf("%s?page=%d", basePath, w.Page+1)
		links["lastPage"] = fmt.Sprintf("%s?page=%d", basePath, w.LastPage)
	}
	if w.Page > 1 {
		links["prevPage"] = fmt.Sprintf("%s?page=%d", basePath, w.Page-1)
		links["firstPage"] = fmt.Sprintf("%s?page=1", basePath)
	}
	return links
}
