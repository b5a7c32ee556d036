package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	apperrors "photo-share/pkg/common/errors"
	"photo-share/pkg/common/schema"
	"photo-share/pkg/web/model"
)

// messages 按状态码给出客户端可见的错误文案
type messages map[int]string

var defaultMessages = messages{
	http.StatusBadRequest:          "Request body is not valid.",
	http.StatusUnauthorized:        "Invalid credentials.",
	http.StatusForbidden:           "Unauthorized to access that resource",
	http.StatusInternalServerError: "Internal error.  Please try again later.",
}

// NotFound 统一的 404 响应，路由未命中与资源不存在共用
func NotFound(ctx context.Context, c *app.RequestContext) {
	c.JSON(http.StatusNotFound, model.ErrorRes{
		Error: fmt.Sprintf("Requested resource %s does not exist", c.Path()),
	})
}

// respondError 把错误分类映射为响应；ErrNotFound 走 404 兜底，存储错误只记录日志不外泄细节
func respondError(ctx context.Context, c *app.RequestContext, err error, msgs messages) {
	status := apperrors.StatusCode(err)
	_ = c.Error(apperrors.Public(err, string(c.Path())))

	if status == http.StatusNotFound {
		NotFound(ctx, c)
		return
	}
	if status == http.StatusInternalServerError {
		hlog.CtxErrorf(ctx, "%s %s failed: %v", c.Method(), c.Path(), err)
	}

	msg, ok := msgs[status]
	if !ok {
		msg = defaultMessages[status]
	}
	c.JSON(status, model.ErrorRes{Error: msg})
}

// parseRecord 请求体必须是 JSON 对象
func parseRecord(c *app.RequestContext) (schema.Record, error) {
	record, err := schema.Parse(c.Request.Body())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return record, nil
}

// parseID 非数字 id 视为资源不存在
func parseID(c *app.RequestContext, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", apperrors.ErrNotFound, name, c.Param(name))
	}
	return id, nil
}
