package auth

import (
	"fmt"

	apperrors "photo-share/pkg/common/errors"
)

// Authorize 已认证身份与路径中的资源所有者一致时放行
func Authorize(identity, owner string) error {
	if identity == "" || identity != owner {
		return fmt.Errorf("%w: %q may not access resources of %q", apperrors.ErrForbidden, identity, owner)
	}
	return nil
}
