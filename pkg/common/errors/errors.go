// Package errors 定义服务统一的错误分类。
//
// 存储层把驱动错误包装成 ErrStoreFailure，服务层用 fmt.Errorf("%w") 附加上下文，
// handler 通过 StatusCode 映射为 HTTP 状态码：
//
//	if errors.Is(err, apperrors.ErrNotFound) {
//	    // 走 404 兜底
//	}
package errors

import (
	"errors"
	"net/http"

	hzte "github.com/cloudwego/hertz/pkg/common/errors"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrConflict        = errors.New("resource already exists")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrStoreFailure    = errors.New("store failure")
)

// StatusCode 将错误分类映射到 HTTP 状态码，未知错误一律 500
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrConflict), errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Public 包装成 Hertz 错误类型，挂到请求上供访问日志输出。
// 客户端可见的错误为 ErrorTypePublic，存储错误为 ErrorTypePrivate。
func Public(err error, meta interface{}) *hzte.Error {
	if StatusCode(err) == http.StatusInternalServerError {
		return hzte.New(err, hzte.ErrorTypePrivate, meta)
	}
	return hzte.New(err, hzte.ErrorTypePublic, meta)
}

// Is 透传标准库，避免调用方同时导入两个 errors 包
func Is(err, target error) bool { return errors.Is(err, target) }
